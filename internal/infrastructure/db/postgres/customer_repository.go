package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/salesdesk/customer-management/internal/core/domain"
	"github.com/salesdesk/customer-management/internal/core/ports"
)

// CustomerRepository implements ports.CustomerRepository on GORM.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerRecord struct {
	ID        uint     `gorm:"primaryKey"`
	Name      string   `gorm:"size:50;not null"`
	Addresses []string `gorm:"serializer:json"`
	Type      string   `gorm:"size:20;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (customerRecord) TableName() string { return "customers" }

func (rec *customerRecord) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:        rec.ID,
		Name:      rec.Name,
		Addresses: rec.Addresses,
		Type:      domain.CustomerType(rec.Type),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	rec := customerRecord{
		Name:      customer.Name,
		Addresses: customer.Addresses,
		Type:      string(customer.Type),
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert customer: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *CustomerRepository) FindAll(ctx context.Context, filter domain.CustomerType) ([]domain.Customer, error) {
	q := r.db.WithContext(ctx).Order("id")
	if filter != "" {
		q = q.Where("type = ?", string(filter))
	}

	var recs []customerRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	customers := make([]domain.Customer, 0, len(recs))
	for i := range recs {
		customers = append(customers, *recs[i].toDomain())
	}
	return customers, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (*domain.Customer, error) {
	var rec customerRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return rec.toDomain(), nil
}

// Update applies all supplied fields in a single conditional UPDATE with a
// RETURNING clause, as in UserRepository.Update.
func (r *CustomerRepository) Update(ctx context.Context, id uint, changes ports.CustomerChanges) (*domain.Customer, error) {
	// Struct update with an explicit column list so the JSON serializer on
	// addresses applies.
	var values customerRecord
	var columns []string
	if changes.Name != nil {
		values.Name = *changes.Name
		columns = append(columns, "name")
	}
	if changes.Addresses != nil {
		values.Addresses = *changes.Addresses
		columns = append(columns, "addresses")
	}
	if changes.Type != nil {
		values.Type = string(*changes.Type)
		columns = append(columns, "type")
	}
	if len(columns) == 0 {
		return r.FindByID(ctx, id)
	}

	var rec customerRecord
	res := r.db.WithContext(ctx).
		Model(&rec).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Select(columns).
		Updates(values)
	if res.Error != nil {
		return nil, fmt.Errorf("update customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrCustomerNotFound
	}
	return rec.toDomain(), nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uint) (*domain.Customer, error) {
	var rec customerRecord
	res := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&rec)
	if res.Error != nil {
		return nil, fmt.Errorf("delete customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrCustomerNotFound
	}
	return rec.toDomain(), nil
}
