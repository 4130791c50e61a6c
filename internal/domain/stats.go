package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange is a half-open [From, To) interval. Zero bounds are open.
type DateRange struct {
	From time.Time
	To   time.Time
}

type CategoryStat struct {
	Category   string
	Count      int64
	TotalValue decimal.Decimal
}

type DailyActivity struct {
	Day         time.Time
	Count       int64
	TotalAmount decimal.Decimal
}

type DashboardStats struct {
	CountsByStatus    map[ContractStatus]int64
	TotalContracts    int64
	TotalValue        decimal.Decimal
	TodayOriginations decimal.Decimal
	TodayCount        int64
	DueToday          int64
	TotalCustomers    int64
	Categories        []CategoryStat
}
