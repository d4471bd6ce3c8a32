package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/salesdesk/customer-management/internal/core/domain"
	"github.com/salesdesk/customer-management/internal/core/ports"
)

func seedCustomer(t *testing.T, repo *CustomerRepository, name string, typ domain.CustomerType, addresses ...string) *domain.Customer {
	t.Helper()
	customer, err := repo.Create(context.Background(), &domain.Customer{
		Name:      name,
		Addresses: addresses,
		Type:      typ,
	})
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return customer
}

func TestCustomerRepositoryCreateAndFind(t *testing.T) {
	repo := NewCustomerRepository(openTestDB(t))
	ctx := context.Background()

	created := seedCustomer(t, repo, "Customer A", domain.CustomerCompany, "IDMC Building, Hanoi")
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	found, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Name != "Customer A" || found.Type != domain.CustomerCompany {
		t.Fatalf("unexpected record: %+v", found)
	}
	// Addresses round-trip through the JSON column.
	if len(found.Addresses) != 1 || found.Addresses[0] != "IDMC Building, Hanoi" {
		t.Fatalf("addresses lost: %+v", found.Addresses)
	}
}

func TestCustomerRepositoryFindAllFilter(t *testing.T) {
	repo := NewCustomerRepository(openTestDB(t))
	ctx := context.Background()

	seedCustomer(t, repo, "Company One", domain.CustomerCompany, "1 Business Park")
	seedCustomer(t, repo, "Person One", domain.CustomerPersonal, "12 Side Street")
	seedCustomer(t, repo, "Company Two", domain.CustomerCompany, "2 Business Park")

	all, err := repo.FindAll(ctx, "")
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 customers, got %d", len(all))
	}

	companies, err := repo.FindAll(ctx, domain.CustomerCompany)
	if err != nil {
		t.Fatalf("FindAll(company): %v", err)
	}
	if len(companies) != 2 {
		t.Fatalf("expected 2 companies, got %d", len(companies))
	}
	for _, c := range companies {
		if c.Type != domain.CustomerCompany {
			t.Fatalf("filter leaked %q record", c.Type)
		}
	}
}

func TestCustomerRepositoryUpdateReturnsRow(t *testing.T) {
	repo := NewCustomerRepository(openTestDB(t))
	ctx := context.Background()

	created := seedCustomer(t, repo, "Customer A", domain.CustomerCompany, "IDMC Building, Hanoi")

	addresses := []string{"New HQ, Ho Chi Minh City", "Branch Office, Da Nang"}
	typ := domain.CustomerPersonal
	updated, err := repo.Update(ctx, created.ID, ports.CustomerChanges{
		Addresses: &addresses,
		Type:      &typ,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Type != domain.CustomerPersonal {
		t.Fatalf("type not updated: %+v", updated)
	}
	if len(updated.Addresses) != 2 || updated.Addresses[0] != "New HQ, Ho Chi Minh City" {
		t.Fatalf("addresses not updated: %+v", updated.Addresses)
	}
	if updated.Name != "Customer A" {
		t.Fatalf("untouched field changed: %+v", updated)
	}

	same, err := repo.Update(ctx, created.ID, ports.CustomerChanges{})
	if err != nil {
		t.Fatalf("empty Update: %v", err)
	}
	if same.Type != domain.CustomerPersonal {
		t.Fatalf("expected current row, got %+v", same)
	}
}

func TestCustomerRepositoryDeleteReturnsRow(t *testing.T) {
	repo := NewCustomerRepository(openTestDB(t))
	ctx := context.Background()

	created := seedCustomer(t, repo, "Customer A", domain.CustomerCompany, "IDMC Building, Hanoi")

	deleted, err := repo.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.Name != "Customer A" {
		t.Fatalf("expected removed record, got %+v", deleted)
	}

	if _, err := repo.FindByID(ctx, created.ID); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("row still present after delete: %v", err)
	}
}

func TestCustomerRepositoryNotFound(t *testing.T) {
	repo := NewCustomerRepository(openTestDB(t))
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, 99); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("FindByID: expected ErrCustomerNotFound, got %v", err)
	}
	name := "x"
	if _, err := repo.Update(ctx, 99, ports.CustomerChanges{Name: &name}); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("Update: expected ErrCustomerNotFound, got %v", err)
	}
	if _, err := repo.Delete(ctx, 99); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("Delete: expected ErrCustomerNotFound, got %v", err)
	}
}
