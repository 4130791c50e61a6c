package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type ItemColumns struct {
	Brand            string `gorm:"size:128"`
	Model            string `gorm:"size:128"`
	Type             string `gorm:"size:64;index"`
	SerialNo         string `gorm:"size:128"`
	Accessories      string
	ConditionPercent int `gorm:"not null;default:0"`
	Defects          string
	Note             string
	Images           datatypes.JSONSlice[string]
}

type ContractModel struct {
	ID                  string          `gorm:"primaryKey;type:uuid"`
	ContractNumber      string          `gorm:"size:32;not null;uniqueIndex:idx_contracts_number"`
	StoreID             string          `gorm:"type:uuid;not null;index:idx_contracts_store_status,priority:1;index:idx_contracts_store_due,priority:1"`
	CustomerID          string          `gorm:"type:uuid;not null;index"`
	Item                ItemColumns     `gorm:"embedded;embeddedPrefix:item_"`
	EstimatedPrice      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PawnedPrice         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	InterestRatePercent decimal.Decimal `gorm:"type:numeric(6,3);not null"`
	PeriodDays          int             `gorm:"not null"`
	StartDate           time.Time       `gorm:"not null"`
	DueDate             time.Time       `gorm:"not null;index:idx_contracts_store_due,priority:2"`
	RedeemDate          *time.Time
	SuspendedDate       *time.Time
	Status              string `gorm:"size:16;not null;index:idx_contracts_store_status,priority:2"`
	Remarks             string
	TotalInterest       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	InterestPaid        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	RemainingAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	SnapshotAt          time.Time       `gorm:"not null"`
	Version             int64           `gorm:"not null"`
	CreatedAt           time.Time       `gorm:"not null;index"`
	UpdatedAt           time.Time       `gorm:"not null"`
}

func (ContractModel) TableName() string {
	return "contracts"
}
