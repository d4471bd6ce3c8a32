package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/salesdesk/customer-management/internal/core/domain"
	"github.com/salesdesk/customer-management/internal/core/ports"
)

// CustomerService implements customer CRUD. Listing and single-record access
// run through the role-vs-type policy; creation does not (any sales role may
// create a customer of either type).
type CustomerService struct {
	repo   ports.CustomerRepository
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

func (s *CustomerService) Create(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
	if !domain.ValidCustomerType(input.Type) {
		return nil, fmt.Errorf("%w: unknown customer type %q", domain.ErrInvalidRequest, input.Type)
	}
	if !domain.ValidAddresses(input.Addresses) {
		return nil, fmt.Errorf("%w: combined address length too short", domain.ErrInvalidRequest)
	}

	customer := &domain.Customer{
		Name:      input.Name,
		Addresses: input.Addresses,
		Type:      input.Type,
	}

	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		s.logger.Error().Err(err).Msg("customer create failed")
		return nil, domain.WrapInternal(err)
	}

	s.logger.Info().Uint("customer_id", created.ID).Str("type", string(created.Type)).Msg("customer created")
	return created, nil
}

// List returns customers visible to the caller. An explicit requested filter
// that conflicts with the caller's implicit type fails with
// ErrInvalidRequest; otherwise the implicit filter applies.
func (s *CustomerService) List(ctx context.Context, caller domain.Principal, requested domain.CustomerType) ([]domain.Customer, error) {
	if requested != "" && !domain.ValidCustomerType(requested) {
		return nil, fmt.Errorf("%w: unknown customer type %q", domain.ErrInvalidRequest, requested)
	}
	if err := domain.CheckListFilter(caller.Role, requested); err != nil {
		return nil, err
	}

	filter := requested
	if implicit, ok := domain.ImplicitCustomerType(caller.Role); ok {
		filter = implicit
	}

	customers, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("customer list failed")
		return nil, domain.WrapInternal(err)
	}
	return customers, nil
}

// Get fetches a single record. Not-found is reported before the type
// conflict check; admin bypasses the conflict check.
func (s *CustomerService) Get(ctx context.Context, caller domain.Principal, id uint) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrapLookup(err, "customer get failed")
	}
	if err := domain.CheckCustomerAccess(caller.Role, customer.Type); err != nil {
		return nil, err
	}
	return customer, nil
}

// Update applies a partial update after the same visibility rules as Get.
// The mutation itself is a single conditional statement keyed on id.
func (s *CustomerService) Update(ctx context.Context, caller domain.Principal, id uint, input ports.UpdateCustomerInput) (*domain.Customer, error) {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return nil, err
	}
	if input.Type != nil && !domain.ValidCustomerType(*input.Type) {
		return nil, fmt.Errorf("%w: unknown customer type %q", domain.ErrInvalidRequest, *input.Type)
	}
	if input.Addresses != nil && !domain.ValidAddresses(*input.Addresses) {
		return nil, fmt.Errorf("%w: combined address length too short", domain.ErrInvalidRequest)
	}

	updated, err := s.repo.Update(ctx, id, ports.CustomerChanges{
		Name:      input.Name,
		Addresses: input.Addresses,
		Type:      input.Type,
	})
	if err != nil {
		return nil, s.wrapLookup(err, "customer update failed")
	}

	s.logger.Info().Uint("customer_id", id).Msg("customer updated")
	return updated, nil
}

// Delete removes a record after the same visibility rules as Get and returns
// the deleted record.
func (s *CustomerService) Delete(ctx context.Context, caller domain.Principal, id uint) (*domain.Customer, error) {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, s.wrapLookup(err, "customer delete failed")
	}

	s.logger.Info().Uint("customer_id", id).Msg("customer deleted")
	return deleted, nil
}

func (s *CustomerService) wrapLookup(err error, msg string) error {
	if errors.Is(err, domain.ErrCustomerNotFound) {
		return err
	}
	s.logger.Error().Err(err).Msg(msg)
	return domain.WrapInternal(err)
}
