package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrLedgerImmutable = errors.New("contract transactions are append-only")

// ContractTransactionModel is one ledger row. Rows are only ever inserted.
type ContractTransactionModel struct {
	ID            string          `gorm:"primaryKey;type:uuid"`
	ContractID    string          `gorm:"type:uuid;not null;uniqueIndex:idx_contract_tx_sequence,priority:1"`
	StoreID       string          `gorm:"type:uuid;not null;index:idx_contract_tx_store_created,priority:1"`
	Sequence      int             `gorm:"not null;uniqueIndex:idx_contract_tx_sequence,priority:2"`
	Type          string          `gorm:"size:32;not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PaymentMethod string          `gorm:"size:32"`
	BeforeBalance decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	AfterBalance  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ActorID       string          `gorm:"size:64"`
	Note          string
	CreatedAt     time.Time `gorm:"not null;index:idx_contract_tx_store_created,priority:2"`
}

func (ContractTransactionModel) TableName() string {
	return "contract_transactions"
}

func (m *ContractTransactionModel) BeforeUpdate(tx *gorm.DB) error {
	return ErrLedgerImmutable
}

func (m *ContractTransactionModel) BeforeDelete(tx *gorm.DB) error {
	return ErrLedgerImmutable
}
