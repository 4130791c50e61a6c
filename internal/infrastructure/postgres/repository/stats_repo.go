package repository

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultStatsRepository runs the read-only per-store aggregates.
type DefaultStatsRepository struct {
	DB *gorm.DB
}

func NewDefaultStatsRepository(db *gorm.DB) *DefaultStatsRepository {
	return &DefaultStatsRepository{DB: db}
}

func withinRange(query *gorm.DB, column string, period domain.DateRange) *gorm.DB {
	if !period.From.IsZero() {
		query = query.Where(column+" >= ?", period.From.UTC())
	}
	if !period.To.IsZero() {
		query = query.Where(column+" < ?", period.To.UTC())
	}
	return query
}

func (r *DefaultStatsRepository) contracts(ctx context.Context, storeID string) *gorm.DB {
	return r.DB.WithContext(ctx).Model(&models.ContractModel{}).Where("store_id = ?", storeID)
}

func (r *DefaultStatsRepository) CountByStatus(ctx context.Context, storeID string, period domain.DateRange) (map[domain.ContractStatus]int64, error) {
	var rows []struct {
		Status    string
		Contracts int64
	}
	query := withinRange(r.contracts(ctx, storeID), "created_at", period)
	if err := query.Select("status, COUNT(*) AS contracts").Group("status").Scan(&rows).Error; err != nil {
		return nil, wrapErr("count contracts by status", err)
	}

	counts := make(map[domain.ContractStatus]int64, len(domain.AllStatuses))
	for _, status := range domain.AllStatuses {
		counts[status] = 0
	}
	for _, row := range rows {
		counts[domain.ContractStatus(row.Status)] = row.Contracts
	}
	return counts, nil
}

func (r *DefaultStatsRepository) SumPawnedPrice(ctx context.Context, storeID string, statuses []domain.ContractStatus) (decimal.Decimal, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}

	var agg struct {
		Total decimal.Decimal
	}
	query := r.contracts(ctx, storeID)
	if len(names) > 0 {
		query = query.Where("status IN ?", names)
	}
	if err := query.Select("COALESCE(SUM(pawned_price), 0) AS total").Scan(&agg).Error; err != nil {
		return decimal.Zero, wrapErr("sum pawned price", err)
	}
	return agg.Total, nil
}

func (r *DefaultStatsRepository) SumOriginations(ctx context.Context, storeID string, period domain.DateRange) (decimal.Decimal, int64, error) {
	var agg struct {
		Total     decimal.Decimal
		Contracts int64
	}
	query := withinRange(r.contracts(ctx, storeID), "created_at", period)
	if err := query.Select("COALESCE(SUM(pawned_price), 0) AS total, COUNT(*) AS contracts").Scan(&agg).Error; err != nil {
		return decimal.Zero, 0, wrapErr("sum originations", err)
	}
	return agg.Total, agg.Contracts, nil
}

// CountDue counts active contracts whose due date falls within period.
func (r *DefaultStatsRepository) CountDue(ctx context.Context, storeID string, period domain.DateRange) (int64, error) {
	var count int64
	query := withinRange(r.contracts(ctx, storeID), "due_date", period).
		Where("status = ?", string(domain.StatusActive))
	if err := query.Count(&count).Error; err != nil {
		return 0, wrapErr("count due contracts", err)
	}
	return count, nil
}

func (r *DefaultStatsRepository) CategoryBreakdown(ctx context.Context, storeID string, period domain.DateRange) ([]domain.CategoryStat, error) {
	var rows []struct {
		Category   string
		Contracts  int64
		TotalValue decimal.Decimal
	}
	query := withinRange(r.contracts(ctx, storeID), "created_at", period)
	if err := query.
		Select("item_type AS category, COUNT(*) AS contracts, COALESCE(SUM(pawned_price), 0) AS total_value").
		Group("item_type").
		Order("contracts DESC").
		Order("category ASC").
		Scan(&rows).Error; err != nil {
		return nil, wrapErr("category breakdown", err)
	}

	stats := make([]domain.CategoryStat, len(rows))
	for i, row := range rows {
		stats[i] = domain.CategoryStat{
			Category:   row.Category,
			Count:      row.Contracts,
			TotalValue: row.TotalValue,
		}
	}
	return stats, nil
}

func (r *DefaultStatsRepository) CountCustomers(ctx context.Context, storeID string) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.CustomerModel{}).Where("store_id = ?", storeID).Count(&count).Error; err != nil {
		return 0, wrapErr("count customers", err)
	}
	return count, nil
}

func (r *DefaultStatsRepository) ListTransactionsSince(ctx context.Context, storeID string, since time.Time) ([]domain.Transaction, error) {
	var rows []models.ContractTransactionModel
	if err := r.DB.WithContext(ctx).
		Where("store_id = ? AND created_at >= ?", storeID, since.UTC()).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, wrapErr("list transactions", err)
	}
	txs := make([]domain.Transaction, len(rows))
	for i := range rows {
		txs[i] = mappers.ToDomainTransaction(&rows[i])
	}
	return txs, nil
}
