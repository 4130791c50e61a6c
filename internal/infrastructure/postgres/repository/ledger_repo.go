package repository

import (
	"context"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultLedgerRepository struct {
	DB *gorm.DB
}

func NewDefaultLedgerRepository(db *gorm.DB) *DefaultLedgerRepository {
	return &DefaultLedgerRepository{DB: db}
}

// History returns the ledger of a contract oldest first.
func (r *DefaultLedgerRepository) History(ctx context.Context, contractID string) ([]domain.Transaction, error) {
	history, err := loadHistory(r.DB.WithContext(ctx), contractID)
	if err != nil {
		return nil, wrapErr("load history", err)
	}
	return history, nil
}

func loadHistory(db *gorm.DB, contractID string) ([]domain.Transaction, error) {
	var rows []models.ContractTransactionModel
	if err := db.Where("contract_id = ?", contractID).Order("sequence ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	history := make([]domain.Transaction, len(rows))
	for i := range rows {
		history[i] = mappers.ToDomainTransaction(&rows[i])
	}
	return history, nil
}

// appendTransaction is the only write path into contract_transactions and
// must run inside the transaction that changes the owning contract.
func appendTransaction(tx *gorm.DB, t *domain.Transaction) error {
	return tx.Create(mappers.ToGORMTransaction(t)).Error
}
