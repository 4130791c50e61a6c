package models

import (
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"gorm.io/datatypes"
)

type StoreModel struct {
	ID              string         `gorm:"primaryKey;type:uuid"`
	Name            string         `gorm:"size:256;not null"`
	Phone           string         `gorm:"size:32"`
	TaxID           string         `gorm:"size:32"`
	Address         AddressColumns `gorm:"embedded;embeddedPrefix:address_"`
	InterestPresets datatypes.JSONSlice[domain.InterestPreset]
	OwnerUserID     string    `gorm:"size:64;index"`
	Active          bool      `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

func (StoreModel) TableName() string {
	return "stores"
}

// All returns every model managed by the service, in dependency order.
func All() []interface{} {
	return []interface{}{
		&StoreModel{},
		&CustomerModel{},
		&ContractModel{},
		&ContractTransactionModel{},
	}
}
