package repository

import (
	"context"
	"strings"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCustomerRepository struct {
	DB *gorm.DB
}

func NewDefaultCustomerRepository(db *gorm.DB) *DefaultCustomerRepository {
	return &DefaultCustomerRepository{DB: db}
}

func (r *DefaultCustomerRepository) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := r.DB.WithContext(ctx).Create(mappers.ToGORMCustomer(customer)).Error; err != nil {
		return wrapErr("create customer", err)
	}
	return nil
}

func (r *DefaultCustomerRepository) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	var model models.CustomerModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", customerID).Error; err != nil {
		return nil, wrapErr("get customer", err)
	}
	return mappers.ToDomainCustomer(&model), nil
}

// SearchCustomers matches query case-insensitively against phone, national
// id and full name within one store.
func (r *DefaultCustomerRepository) SearchCustomers(ctx context.Context, storeID, query string, limit int) ([]*domain.Customer, error) {
	db := r.DB.WithContext(ctx).Where("store_id = ?", storeID)
	if q := strings.TrimSpace(query); q != "" {
		like := containsPattern(q)
		db = db.Where(`(LOWER(phone_number) LIKE ? ESCAPE '\' OR LOWER(id_number) LIKE ? ESCAPE '\' OR LOWER(full_name) LIKE ? ESCAPE '\')`, like, like, like)
	}
	if limit <= 0 || limit > MaxListLimit {
		limit = DefaultListLimit
	}

	var rows []models.CustomerModel
	if err := db.Order("full_name ASC").Order("id ASC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, wrapErr("search customers", err)
	}
	customers := make([]*domain.Customer, len(rows))
	for i := range rows {
		customers[i] = mappers.ToDomainCustomer(&rows[i])
	}
	return customers, nil
}

func (r *DefaultCustomerRepository) UpdateCustomerContact(ctx context.Context, customerID string, contact domain.CustomerContact, updatedAt time.Time) error {
	updates := map[string]interface{}{
		"updated_at": updatedAt.UTC(),
	}
	if contact.PhoneNumber != nil {
		updates["phone_number"] = *contact.PhoneNumber
	}
	if contact.Address != nil {
		address := mappers.ToGORMAddress(*contact.Address)
		updates["address_street"] = address.Street
		updates["address_sub_district"] = address.SubDistrict
		updates["address_district"] = address.District
		updates["address_province"] = address.Province
		updates["address_postcode"] = address.Postcode
	}

	res := r.DB.WithContext(ctx).Model(&models.CustomerModel{}).Where("id = ?", customerID).Updates(updates)
	if res.Error != nil {
		return wrapErr("update customer contact", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrapErr("update customer contact", gorm.ErrRecordNotFound)
	}
	return nil
}
