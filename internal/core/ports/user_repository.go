package ports

import (
	"context"

	"github.com/salesdesk/customer-management/internal/core/domain"
)

// UserChanges carries the fields of a partial user update. Nil fields are
// left untouched; the store applies all supplied fields in one statement or
// none.
type UserChanges struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Role         *domain.Role
}

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Update applies changes with a single conditional statement keyed on id
	// and returns the updated row, or domain.ErrUserNotFound when no row
	// matched.
	Update(ctx context.Context, id uint, changes UserChanges) (*domain.User, error)
	// Delete removes the row with a single conditional statement and returns
	// the deleted record, or domain.ErrUserNotFound when no row matched.
	Delete(ctx context.Context, id uint) (*domain.User, error)
}
