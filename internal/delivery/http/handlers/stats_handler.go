package handlers

import (
	"net/http"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase/scope"
	"github.com/gorilla/mux"
)

const defaultActivityDays = 7

type StatsHandler struct {
	statsUc usecase.StatsUsecase
	loc     *time.Location
}

func NewStatsHandler(statsUc usecase.StatsUsecase, loc *time.Location) *StatsHandler {
	return &StatsHandler{
		statsUc: statsUc,
		loc:     loc,
	}
}

func (h *StatsHandler) Register(r *mux.Router) {
	r.HandleFunc("/dashboard/stats", h.DashboardStats).Methods(http.MethodGet)
	r.HandleFunc("/dashboard/categories", h.CategoryBreakdown).Methods(http.MethodGet)
	r.HandleFunc("/dashboard/activity", h.TransactionActivity).Methods(http.MethodGet)
}

func (h *StatsHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	s, err := scope.Require(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	stats, err := h.statsUc.DashboardStats(r.Context(), s)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.FromDashboard(stats))
}

// CategoryBreakdown accepts optional from/to dates; to is inclusive.
func (h *StatsHandler) CategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	s, err := scope.Require(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	from, err := parseDate(q.Get("from"), "from", h.loc)
	if err != nil {
		writeError(w, r, err)
		return
	}
	to, err := parseDate(q.Get("to"), "to", h.loc)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !to.IsZero() {
		to = to.AddDate(0, 0, 1)
	}

	categories, err := h.statsUc.CategoryBreakdown(r.Context(), s, domain.DateRange{From: from, To: to})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.CategoryListResponse{Categories: response.FromCategories(categories)})
}

func (h *StatsHandler) TransactionActivity(w http.ResponseWriter, r *http.Request) {
	s, err := scope.Require(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	days, err := queryInt(r, "days", defaultActivityDays)
	if err != nil {
		writeError(w, r, err)
		return
	}
	activity, err := h.statsUc.TransactionActivity(r.Context(), s, days)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.ActivityListResponse{Days: response.FromActivity(activity, h.loc)})
}
