package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-pawn-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	contractuc "github.com/LavaJover/shvark-pawn-service/internal/usecase/contract"
	contractdto "github.com/LavaJover/shvark-pawn-service/internal/usecase/dto/contract"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase/scope"
	"github.com/gorilla/mux"
)

type ContractHandler struct {
	contractUc contractuc.ContractUsecase
	loc        *time.Location
}

func NewContractHandler(contractUc contractuc.ContractUsecase, loc *time.Location) *ContractHandler {
	return &ContractHandler{
		contractUc: contractUc,
		loc:        loc,
	}
}

func (h *ContractHandler) Register(r *mux.Router) {
	r.HandleFunc("/contracts", h.CreateContract).Methods(http.MethodPost)
	r.HandleFunc("/contracts", h.ListContracts).Methods(http.MethodGet)
	r.HandleFunc("/contracts/{id}", h.GetContract).Methods(http.MethodGet)
	r.HandleFunc("/contracts/{id}", h.UpdateContract).Methods(http.MethodPatch)
	r.HandleFunc("/contracts/{id}/transactions", h.History).Methods(http.MethodGet)
	r.HandleFunc("/contracts/{id}/transactions", h.RecordTransaction).Methods(http.MethodPost)
}

func (h *ContractHandler) CreateContract(w http.ResponseWriter, r *http.Request) {
	s, err := scope.Require(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req request.CreateContractRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	startDate, err := parseDate(req.StartDate, "start_date", h.loc)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contract, err := h.contractUc.CreateContract(r.Context(), s, &contractdto.CreateContractInput{
		CustomerID: req.CustomerID,
		Item: domain.Item{
			Brand:            req.Item.Brand,
			Model:            req.Item.Model,
			Type:             req.Item.Type,
			SerialNo:         req.Item.SerialNo,
			Accessories:      req.Item.Accessories,
			ConditionPercent: req.Item.ConditionPercent,
			Defects:          req.Item.Defects,
			Note:             req.Item.Note,
			Images:           req.Item.Images,
		},
		PawnDetails: contractdto.PawnTermsInput{
			EstimatedPrice:      req.PawnDetails.EstimatedPrice,
			PawnedPrice:         req.PawnDetails.PawnedPrice,
			InterestRatePercent: req.PawnDetails.InterestRatePercent,
			PeriodDays:          req.PawnDetails.PeriodDays,
		},
		StartDate:     startDate,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Remarks:       req.Remarks,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response.FromContract(contract, h.loc))
}

func (h *ContractHandler) ListContracts(w http.ResponseWriter, r *http.Request) {
	s, err := scope.Require(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	filter := domain.ContractFilter{
		Status:     domain.ContractStatus(q.Get("status")),
		Search:     q.Get("q"),
		CustomerID: q.Get("customer_id"),
		SortBy:     q.Get("sort_by"),
		SortOrder:  q.Get("sort_order"),
		Limit:      limit,
		Offset:     offset,
	}
	contracts, total, err := h.contractUc.ListContracts(r.Context(), s, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.ContractListResponse{
		Contracts: response.FromContracts(contracts, h.loc),
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	})
}

func (h *ContractHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	s, err := scope.Require(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	contract, err := h.contractUc.GetContract(r.Context(), s, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.FromContract(contract, h.loc))
}

// UpdateContract only edits remarks. Every other change goes through a
// ledger transaction.
func (h *ContractHandler) UpdateContract(w http.ResponseWriter, r *http.Request) {
	s, err := scope.Require(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req request.UpdateContractRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Remarks == nil {
		writeError(w, r, fmt.Errorf("%w: remarks is required", domain.ErrInvalidArgument))
		return
	}
	contract, err := h.contractUc.UpdateRemarks(r.Context(), s, mux.Vars(r)["id"], *req.Remarks)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.FromContract(contract, h.loc))
}

func (h *ContractHandler) History(w http.ResponseWriter, r *http.Request) {
	s, err := scope.Require(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	history, err := h.contractUc.History(r.Context(), s, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.TransactionListResponse{Transactions: response.FromTransactions(history)})
}

func (h *ContractHandler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	s, err := scope.Require(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req request.RecordTransactionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	tx, err := h.contractUc.RecordTransaction(r.Context(), s, &contractdto.RecordTransactionInput{
		ContractID:    mux.Vars(r)["id"],
		Type:          domain.TransactionType(req.Type),
		Amount:        req.Amount,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Reason:        req.Reason,
		Note:          req.Note,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response.FromTransaction(tx))
}
