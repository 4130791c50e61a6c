package handlers

import (
	"fmt"
	"net/http"

	"github.com/LavaJover/shvark-pawn-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-pawn-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase"
	storedto "github.com/LavaJover/shvark-pawn-service/internal/usecase/dto/store"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase/scope"
	"github.com/gorilla/mux"
)

type StoreHandler struct {
	storeUc usecase.StoreUsecase
}

func NewStoreHandler(storeUc usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{storeUc: storeUc}
}

func (h *StoreHandler) Register(r *mux.Router) {
	r.HandleFunc("/stores", h.CreateStore).Methods(http.MethodPost)
	r.HandleFunc("/stores/current", h.GetStore).Methods(http.MethodGet)
	r.HandleFunc("/stores/current", h.UpdateStore).Methods(http.MethodPut)
	r.HandleFunc("/stores/current/deactivate", h.DeactivateStore).Methods(http.MethodPost)
}

func toStoreInput(req request.StoreRequest) *storedto.StoreInput {
	presets := make([]domain.InterestPreset, len(req.InterestPresets))
	for i, p := range req.InterestPresets {
		presets[i] = domain.InterestPreset{Days: p.Days, RatePercent: p.RatePercent}
	}
	return &storedto.StoreInput{
		Name:            req.Name,
		Phone:           req.Phone,
		TaxID:           req.TaxID,
		Address:         toDomainAddress(req.Address),
		InterestPresets: presets,
	}
}

// CreateStore onboards a shop. Only the user header is needed because the
// store does not exist yet.
func (h *StoreHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	s, _ := scope.FromContext(r.Context())
	userID := s.UserID
	if userID == "" {
		writeError(w, r, fmt.Errorf("%w: missing %s header", domain.ErrInvalidArgument, HeaderUserID))
		return
	}
	var req request.StoreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	store, err := h.storeUc.CreateStore(r.Context(), userID, toStoreInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response.FromStore(store))
}

func (h *StoreHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	s, err := scope.Require(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	store, err := h.storeUc.GetStore(r.Context(), s)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.FromStore(store))
}

func (h *StoreHandler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	s, err := scope.Require(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req request.StoreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	store, err := h.storeUc.UpdateStore(r.Context(), s, toStoreInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.FromStore(store))
}

func (h *StoreHandler) DeactivateStore(w http.ResponseWriter, r *http.Request) {
	s, err := scope.Require(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.storeUc.DeactivateStore(r.Context(), s); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
