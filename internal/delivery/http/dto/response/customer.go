package response

import "github.com/LavaJover/shvark-pawn-service/internal/domain"

type AddressResponse struct {
	Street      string `json:"street"`
	SubDistrict string `json:"sub_district"`
	District    string `json:"district"`
	Province    string `json:"province"`
	Postcode    string `json:"postcode"`
}

type CustomerResponse struct {
	ID          string          `json:"id"`
	StoreID     string          `json:"store_id"`
	FullName    string          `json:"full_name"`
	PhoneNumber string          `json:"phone_number"`
	IDNumber    string          `json:"id_number"`
	Address     AddressResponse `json:"address"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

type InterestPresetResponse struct {
	Days        int    `json:"days"`
	RatePercent string `json:"rate"`
}

type StoreResponse struct {
	ID              string                   `json:"id"`
	Name            string                   `json:"name"`
	Phone           string                   `json:"phone"`
	TaxID           string                   `json:"tax_id"`
	Address         AddressResponse          `json:"address"`
	InterestPresets []InterestPresetResponse `json:"interest_presets"`
	OwnerUserID     string                   `json:"owner_user_id"`
	Active          bool                     `json:"active"`
	CreatedAt       string                   `json:"created_at"`
	UpdatedAt       string                   `json:"updated_at"`
}

func fromAddress(a domain.Address) AddressResponse {
	return AddressResponse{
		Street:      a.Street,
		SubDistrict: a.SubDistrict,
		District:    a.District,
		Province:    a.Province,
		Postcode:    a.Postcode,
	}
}

func FromCustomer(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		StoreID:     c.StoreID,
		FullName:    c.FullName,
		PhoneNumber: c.PhoneNumber,
		IDNumber:    c.IDNumber,
		Address:     fromAddress(c.Address),
		CreatedAt:   formatInstant(c.CreatedAt),
		UpdatedAt:   formatInstant(c.UpdatedAt),
	}
}

func FromCustomers(customers []*domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = FromCustomer(c)
	}
	return out
}

func FromStore(s *domain.Store) StoreResponse {
	presets := make([]InterestPresetResponse, len(s.InterestPresets))
	for i, p := range s.InterestPresets {
		presets[i] = InterestPresetResponse{Days: p.Days, RatePercent: p.RatePercent.String()}
	}
	return StoreResponse{
		ID:              s.ID,
		Name:            s.Name,
		Phone:           s.Phone,
		TaxID:           s.TaxID,
		Address:         fromAddress(s.Address),
		InterestPresets: presets,
		OwnerUserID:     s.OwnerUserID,
		Active:          s.Active,
		CreatedAt:       formatInstant(s.CreatedAt),
		UpdatedAt:       formatInstant(s.UpdatedAt),
	}
}
