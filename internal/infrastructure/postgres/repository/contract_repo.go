package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

type DefaultContractRepository struct {
	DB *gorm.DB
}

func NewDefaultContractRepository(db *gorm.DB) *DefaultContractRepository {
	return &DefaultContractRepository{DB: db}
}

// CreateContract inserts the contract together with its initial ledger.
func (r *DefaultContractRepository) CreateContract(ctx context.Context, contract *domain.Contract) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mappers.ToGORMContract(contract)).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("create contract %s: %w: %w", contract.ContractNumber, domain.ErrStorageFailure, domain.ErrDuplicateContractNumber)
			}
			return wrapErr("create contract", err)
		}
		for i := range contract.History {
			if err := appendTransaction(tx, &contract.History[i]); err != nil {
				return wrapErr("append pledge", err)
			}
		}
		return nil
	})
}

func (r *DefaultContractRepository) GetContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	contract, err := loadContract(r.DB.WithContext(ctx), contractID, false)
	if err != nil {
		return nil, wrapErr("get contract", err)
	}
	return contract, nil
}

func loadContract(db *gorm.DB, contractID string, forUpdate bool) (*domain.Contract, error) {
	var model models.ContractModel
	query := db
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := query.First(&model, "id = ?", contractID).Error; err != nil {
		return nil, err
	}
	history, err := loadHistory(db, contractID)
	if err != nil {
		return nil, err
	}
	contract := mappers.ToDomainContract(&model)
	contract.History = history
	return contract, nil
}

// ProcessContractOperation locks the contract row, lets decide pick an
// operation against the locked state and applies it together with its
// ledger entry in one database transaction. Errors returned by decide are
// passed through unchanged.
func (r *DefaultContractRepository) ProcessContractOperation(ctx context.Context, contractID string, decide domain.DecideFunc) (*domain.Contract, error) {
	var result *domain.Contract
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := loadContract(tx, contractID, true)
		if err != nil {
			return wrapErr("lock contract", err)
		}

		op, err := decide(current)
		if err != nil {
			return err
		}
		if op == nil {
			result = current
			return nil
		}

		if err := applyOperation(tx, op); err != nil {
			return err
		}
		if op.Transaction != nil {
			if err := appendTransaction(tx, op.Transaction); err != nil {
				return wrapErr("append transaction", err)
			}
		}

		result, err = loadContract(tx, contractID, false)
		if err != nil {
			return wrapErr("reload contract", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func applyOperation(tx *gorm.DB, op *domain.ContractOperation) error {
	updates := map[string]interface{}{
		"status":     string(op.NewStatus),
		"version":    op.OldVersion + 1,
		"updated_at": op.UpdatedAt.UTC(),
	}
	patch := op.Patch
	if patch.PawnedPrice != nil {
		updates["pawned_price"] = *patch.PawnedPrice
	}
	if patch.RedeemDate != nil {
		updates["redeem_date"] = patch.RedeemDate.UTC()
	}
	if patch.SuspendedDate != nil {
		updates["suspended_date"] = patch.SuspendedDate.UTC()
	}
	if patch.ClearSuspendedDate {
		updates["suspended_date"] = nil
	}
	if patch.Remarks != nil {
		updates["remarks"] = *patch.Remarks
	}
	if patch.Snapshot != nil {
		updates["total_interest"] = patch.Snapshot.TotalInterest
		updates["interest_paid"] = patch.Snapshot.InterestPaid
		updates["remaining_amount"] = patch.Snapshot.RemainingAmount
		updates["snapshot_at"] = patch.Snapshot.ComputedAt.UTC()
	}

	res := tx.Model(&models.ContractModel{}).
		Where("id = ? AND version = ?", op.ContractID, op.OldVersion).
		Updates(updates)
	if res.Error != nil {
		return wrapErr("update contract", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update contract %s at version %d: %w: %w", op.ContractID, op.OldVersion, domain.ErrStorageFailure, domain.ErrConcurrentUpdate)
	}
	return nil
}

func (r *DefaultContractRepository) ListContracts(ctx context.Context, storeID string, filter domain.ContractFilter) ([]*domain.Contract, int64, error) {
	db := r.DB.WithContext(ctx)
	query := db.Model(&models.ContractModel{}).Where("store_id = ?", storeID)

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.CustomerID != "" {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := containsPattern(search)
		query = query.Where(
			`(LOWER(contract_number) LIKE ? ESCAPE '\' OR LOWER(item_brand) LIKE ? ESCAPE '\' OR LOWER(item_model) LIKE ? ESCAPE '\')`,
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapErr("count contracts", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	var rows []models.ContractModel
	if err := query.
		Order(contractOrder(filter.SortBy, filter.SortOrder)).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, wrapErr("list contracts", err)
	}

	contracts := make([]*domain.Contract, len(rows))
	ids := make([]string, len(rows))
	for i := range rows {
		contracts[i] = mappers.ToDomainContract(&rows[i])
		ids[i] = rows[i].ID
	}
	if len(ids) == 0 {
		return contracts, total, nil
	}

	var txRows []models.ContractTransactionModel
	if err := db.Where("contract_id IN ?", ids).Order("contract_id, sequence ASC").Find(&txRows).Error; err != nil {
		return nil, 0, wrapErr("list contract history", err)
	}
	byContract := make(map[string][]domain.Transaction, len(ids))
	for i := range txRows {
		t := mappers.ToDomainTransaction(&txRows[i])
		byContract[t.ContractID] = append(byContract[t.ContractID], t)
	}
	for _, c := range contracts {
		c.History = byContract[c.ID]
	}

	return contracts, total, nil
}

var contractSortFields = map[string]string{
	"created_at":      "created_at",
	"due_date":        "due_date",
	"pawned_price":    "pawned_price",
	"contract_number": "contract_number",
}

// contractOrder builds an ORDER BY from whitelisted input only.
func contractOrder(sortBy, sortOrder string) string {
	column, ok := contractSortFields[strings.ToLower(sortBy)]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}
	return fmt.Sprintf("%s %s", column, direction)
}

// FindOverdueCandidates lists active contracts due strictly before dueBefore,
// oldest due date first, leaving out the ids in exclude.
func (r *DefaultContractRepository) FindOverdueCandidates(ctx context.Context, dueBefore time.Time, exclude []string, limit int) ([]string, error) {
	var ids []string
	query := r.DB.WithContext(ctx).
		Model(&models.ContractModel{}).
		Where("status = ? AND due_date < ?", string(domain.StatusActive), dueBefore.UTC())
	if len(exclude) > 0 {
		query = query.Where("id NOT IN ?", exclude)
	}
	query = query.Order("due_date ASC").Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Pluck("id", &ids).Error; err != nil {
		return nil, wrapErr("find overdue candidates", err)
	}
	return ids, nil
}
