package response

import (
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
)

type CategoryResponse struct {
	Category   string `json:"category"`
	Count      int64  `json:"count"`
	TotalValue string `json:"total_value"`
}

type DashboardResponse struct {
	CountsByStatus    map[string]int64   `json:"counts_by_status"`
	TotalContracts    int64              `json:"total_contracts"`
	TotalValue        string             `json:"total_value"`
	TodayOriginations string             `json:"today_originations"`
	TodayCount        int64              `json:"today_count"`
	DueToday          int64              `json:"due_today"`
	TotalCustomers    int64              `json:"total_customers"`
	Categories        []CategoryResponse `json:"categories"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type ActivityResponse struct {
	Day         string `json:"day"`
	Count       int64  `json:"count"`
	TotalAmount string `json:"total_amount"`
}

type ActivityListResponse struct {
	Days []ActivityResponse `json:"days"`
}

func FromDashboard(s *domain.DashboardStats) DashboardResponse {
	counts := make(map[string]int64, len(s.CountsByStatus))
	for status, n := range s.CountsByStatus {
		counts[string(status)] = n
	}
	return DashboardResponse{
		CountsByStatus:    counts,
		TotalContracts:    s.TotalContracts,
		TotalValue:        s.TotalValue.StringFixed(2),
		TodayOriginations: s.TodayOriginations.StringFixed(2),
		TodayCount:        s.TodayCount,
		DueToday:          s.DueToday,
		TotalCustomers:    s.TotalCustomers,
		Categories:        FromCategories(s.Categories),
	}
}

func FromCategories(stats []domain.CategoryStat) []CategoryResponse {
	out := make([]CategoryResponse, len(stats))
	for i, s := range stats {
		out[i] = CategoryResponse{
			Category:   s.Category,
			Count:      s.Count,
			TotalValue: s.TotalValue.StringFixed(2),
		}
	}
	return out
}

func FromActivity(days []domain.DailyActivity, loc *time.Location) []ActivityResponse {
	out := make([]ActivityResponse, len(days))
	for i, d := range days {
		out[i] = ActivityResponse{
			Day:         formatDate(d.Day, loc),
			Count:       d.Count,
			TotalAmount: d.TotalAmount.StringFixed(2),
		}
	}
	return out
}
