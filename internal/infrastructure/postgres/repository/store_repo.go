package repository

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultStoreRepository struct {
	DB *gorm.DB
}

func NewDefaultStoreRepository(db *gorm.DB) *DefaultStoreRepository {
	return &DefaultStoreRepository{DB: db}
}

func (r *DefaultStoreRepository) CreateStore(ctx context.Context, store *domain.Store) error {
	if err := r.DB.WithContext(ctx).Create(mappers.ToGORMStore(store)).Error; err != nil {
		return wrapErr("create store", err)
	}
	return nil
}

func (r *DefaultStoreRepository) GetStoreByID(ctx context.Context, storeID string) (*domain.Store, error) {
	var model models.StoreModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", storeID).Error; err != nil {
		return nil, wrapErr("get store", err)
	}
	return mappers.ToDomainStore(&model), nil
}

// UpdateStore overwrites the editable profile fields. Ownership, activity
// and creation time are left untouched.
func (r *DefaultStoreRepository) UpdateStore(ctx context.Context, store *domain.Store) error {
	model := mappers.ToGORMStore(store)
	res := r.DB.WithContext(ctx).
		Model(&models.StoreModel{}).
		Where("id = ?", store.ID).
		Select("name", "phone", "tax_id", "address_street", "address_sub_district",
			"address_district", "address_province", "address_postcode", "interest_presets", "updated_at").
		Updates(model)
	if res.Error != nil {
		return wrapErr("update store", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrapErr("update store", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *DefaultStoreRepository) SetStoreActive(ctx context.Context, storeID string, active bool, updatedAt time.Time) error {
	res := r.DB.WithContext(ctx).
		Model(&models.StoreModel{}).
		Where("id = ?", storeID).
		Updates(map[string]interface{}{"active": active, "updated_at": updatedAt.UTC()})
	if res.Error != nil {
		return wrapErr("set store active", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrapErr("set store active", gorm.ErrRecordNotFound)
	}
	return nil
}
