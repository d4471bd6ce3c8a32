package ports

import (
	"context"

	"github.com/salesdesk/customer-management/internal/core/domain"
)

// CustomerChanges carries the fields of a partial customer update. Nil
// fields are left untouched.
type CustomerChanges struct {
	Name      *string
	Addresses *[]string
	Type      *domain.CustomerType
}

// CustomerRepository defines persistence for customer records.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	// FindAll returns customers of the given type, or every customer when
	// filter is empty.
	FindAll(ctx context.Context, filter domain.CustomerType) ([]domain.Customer, error)
	FindByID(ctx context.Context, id uint) (*domain.Customer, error)
	Update(ctx context.Context, id uint, changes CustomerChanges) (*domain.Customer, error)
	Delete(ctx context.Context, id uint) (*domain.Customer, error)
}
