package usecase

import (
	"context"
	"fmt"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase/scope"
	"github.com/shopspring/decimal"
)

const MaxActivityDays = 90

// DefaultValueStatuses are the statuses whose principal is still lent out.
var DefaultValueStatuses = []domain.ContractStatus{domain.StatusActive, domain.StatusOverdue}

type StatsUsecase interface {
	DashboardStats(ctx context.Context, s scope.Scope) (*domain.DashboardStats, error)
	CountsByStatus(ctx context.Context, s scope.Scope, period domain.DateRange) (map[domain.ContractStatus]int64, error)
	TotalValue(ctx context.Context, s scope.Scope, statuses []domain.ContractStatus) (decimal.Decimal, error)
	CategoryBreakdown(ctx context.Context, s scope.Scope, period domain.DateRange) ([]domain.CategoryStat, error)
	TransactionActivity(ctx context.Context, s scope.Scope, days int) ([]domain.DailyActivity, error)
}

type DefaultStatsUsecase struct {
	statsRepo domain.StatsRepository
	clock     domain.Clock
}

func NewDefaultStatsUsecase(statsRepo domain.StatsRepository, clock domain.Clock) *DefaultStatsUsecase {
	return &DefaultStatsUsecase{
		statsRepo: statsRepo,
		clock:     clock,
	}
}

// DashboardStats bundles the store rollups shown on the dashboard. "Today"
// is the current day of the deployment clock.
func (uc *DefaultStatsUsecase) DashboardStats(ctx context.Context, s scope.Scope) (*domain.DashboardStats, error) {
	if err := validateID("store", s.StoreID); err != nil {
		return nil, err
	}
	today := uc.todayRange()

	counts, err := uc.statsRepo.CountByStatus(ctx, s.StoreID, domain.DateRange{})
	if err != nil {
		return nil, err
	}
	totalValue, err := uc.statsRepo.SumPawnedPrice(ctx, s.StoreID, DefaultValueStatuses)
	if err != nil {
		return nil, err
	}
	originations, originated, err := uc.statsRepo.SumOriginations(ctx, s.StoreID, today)
	if err != nil {
		return nil, err
	}
	dueToday, err := uc.statsRepo.CountDue(ctx, s.StoreID, today)
	if err != nil {
		return nil, err
	}
	customers, err := uc.statsRepo.CountCustomers(ctx, s.StoreID)
	if err != nil {
		return nil, err
	}
	categories, err := uc.statsRepo.CategoryBreakdown(ctx, s.StoreID, domain.DateRange{})
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	return &domain.DashboardStats{
		CountsByStatus:    counts,
		TotalContracts:    total,
		TotalValue:        totalValue,
		TodayOriginations: originations,
		TodayCount:        originated,
		DueToday:          dueToday,
		TotalCustomers:    customers,
		Categories:        categories,
	}, nil
}

func (uc *DefaultStatsUsecase) CountsByStatus(ctx context.Context, s scope.Scope, period domain.DateRange) (map[domain.ContractStatus]int64, error) {
	if err := validateStatsQuery(s, period); err != nil {
		return nil, err
	}
	return uc.statsRepo.CountByStatus(ctx, s.StoreID, period)
}

// TotalValue sums the principal of contracts in statuses, active and
// overdue when none are given.
func (uc *DefaultStatsUsecase) TotalValue(ctx context.Context, s scope.Scope, statuses []domain.ContractStatus) (decimal.Decimal, error) {
	if err := validateID("store", s.StoreID); err != nil {
		return decimal.Zero, err
	}
	if len(statuses) == 0 {
		statuses = DefaultValueStatuses
	}
	for _, status := range statuses {
		if !status.Valid() {
			return decimal.Zero, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidArgument, status)
		}
	}
	return uc.statsRepo.SumPawnedPrice(ctx, s.StoreID, statuses)
}

func (uc *DefaultStatsUsecase) CategoryBreakdown(ctx context.Context, s scope.Scope, period domain.DateRange) ([]domain.CategoryStat, error) {
	if err := validateStatsQuery(s, period); err != nil {
		return nil, err
	}
	return uc.statsRepo.CategoryBreakdown(ctx, s.StoreID, period)
}

// TransactionActivity returns one bucket per calendar day for the last days
// days including today, oldest first. Days without ledger entries are zero.
func (uc *DefaultStatsUsecase) TransactionActivity(ctx context.Context, s scope.Scope, days int) ([]domain.DailyActivity, error) {
	if err := validateID("store", s.StoreID); err != nil {
		return nil, err
	}
	if days <= 0 || days > MaxActivityDays {
		return nil, fmt.Errorf("%w: days must be within 1..%d", domain.ErrInvalidArgument, MaxActivityDays)
	}

	loc := uc.clock.Location()
	first := uc.clock.Today().AddDate(0, 0, -(days - 1))

	buckets := make([]domain.DailyActivity, days)
	index := make(map[string]int, days)
	for i := range buckets {
		day := first.AddDate(0, 0, i)
		buckets[i] = domain.DailyActivity{Day: day, TotalAmount: decimal.Zero}
		index[day.Format("2006-01-02")] = i
	}

	txs, err := uc.statsRepo.ListTransactionsSince(ctx, s.StoreID, first)
	if err != nil {
		return nil, err
	}
	for _, tx := range txs {
		i, ok := index[tx.CreatedAt.In(loc).Format("2006-01-02")]
		if !ok {
			continue
		}
		buckets[i].Count++
		buckets[i].TotalAmount = buckets[i].TotalAmount.Add(tx.Amount)
	}
	return buckets, nil
}

func (uc *DefaultStatsUsecase) todayRange() domain.DateRange {
	today := uc.clock.Today()
	return domain.DateRange{From: today, To: today.AddDate(0, 0, 1)}
}

func validateStatsQuery(s scope.Scope, period domain.DateRange) error {
	if err := validateID("store", s.StoreID); err != nil {
		return err
	}
	if !period.From.IsZero() && !period.To.IsZero() && !period.From.Before(period.To) {
		return fmt.Errorf("%w: empty date range", domain.ErrInvalidArgument)
	}
	return nil
}
