package ports

import (
	"context"

	"github.com/salesdesk/customer-management/internal/core/domain"
)

// RegisterUserInput carries a validated registration request.
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
}

// UpdateUserInput carries a partial profile update. Nil fields are left
// unchanged.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	Role     *domain.Role
}

// UserService implements account management with the self-access rules
// applied per caller.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, caller domain.Principal, id uint) (*domain.User, error)
	Update(ctx context.Context, caller domain.Principal, id uint, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, caller domain.Principal, id uint) (*domain.User, error)
}
