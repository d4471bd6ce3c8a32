package ports

import (
	"context"

	"github.com/salesdesk/customer-management/internal/core/domain"
)

// CreateCustomerInput carries a validated customer creation request.
type CreateCustomerInput struct {
	Name      string
	Addresses []string
	Type      domain.CustomerType
}

// UpdateCustomerInput carries a partial customer update. Nil fields are left
// unchanged.
type UpdateCustomerInput struct {
	Name      *string
	Addresses *[]string
	Type      *domain.CustomerType
}

// CustomerService implements customer CRUD with the role-vs-type visibility
// rules applied per caller.
type CustomerService interface {
	Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	// List applies the caller's implicit type filter. A non-empty requested
	// filter that conflicts with the caller's role fails with
	// domain.ErrInvalidRequest.
	List(ctx context.Context, caller domain.Principal, requested domain.CustomerType) ([]domain.Customer, error)
	Get(ctx context.Context, caller domain.Principal, id uint) (*domain.Customer, error)
	Update(ctx context.Context, caller domain.Principal, id uint, input UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, caller domain.Principal, id uint) (*domain.Customer, error)
}
