package handlers

import (
	"net/http"

	"github.com/LavaJover/shvark-pawn-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-pawn-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase"
	customerdto "github.com/LavaJover/shvark-pawn-service/internal/usecase/dto/customer"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase/scope"
	"github.com/gorilla/mux"
)

type CustomerHandler struct {
	customerUc usecase.CustomerUsecase
}

func NewCustomerHandler(customerUc usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{customerUc: customerUc}
}

func (h *CustomerHandler) Register(r *mux.Router) {
	r.HandleFunc("/customers", h.CreateCustomer).Methods(http.MethodPost)
	r.HandleFunc("/customers/search", h.SearchCustomers).Methods(http.MethodGet)
	r.HandleFunc("/customers/{id}", h.GetCustomer).Methods(http.MethodGet)
	r.HandleFunc("/customers/{id}", h.UpdateCustomer).Methods(http.MethodPatch)
}

func toDomainAddress(a request.AddressRequest) domain.Address {
	return domain.Address{
		Street:      a.Street,
		SubDistrict: a.SubDistrict,
		District:    a.District,
		Province:    a.Province,
		Postcode:    a.Postcode,
	}
}

func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	s, err := scope.Require(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req request.CreateCustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	customer, err := h.customerUc.CreateCustomer(r.Context(), s, &customerdto.CreateCustomerInput{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		IDNumber:    req.IDNumber,
		Address:     toDomainAddress(req.Address),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, response.FromCustomer(customer))
}

func (h *CustomerHandler) SearchCustomers(w http.ResponseWriter, r *http.Request) {
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
	customers, err := h.customerUc.SearchCustomers(r.Context(), s, r.URL.Query().Get("q"), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.CustomerListResponse{Customers: response.FromCustomers(customers)})
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	s, err := scope.Require(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	customer, err := h.customerUc.GetCustomer(r.Context(), s, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	s, err := scope.Require(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req request.UpdateCustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	input := &customerdto.UpdateContactInput{
		CustomerID:  mux.Vars(r)["id"],
		PhoneNumber: req.PhoneNumber,
	}
	if req.Address != nil {
		address := toDomainAddress(*req.Address)
		input.Address = &address
	}
	customer, err := h.customerUc.UpdateCustomerContact(r.Context(), s, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response.FromCustomer(customer))
}
