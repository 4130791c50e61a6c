package request

import "github.com/shopspring/decimal"

type AddressRequest struct {
	Street      string `json:"street,omitempty"`
	SubDistrict string `json:"sub_district,omitempty"`
	District    string `json:"district,omitempty"`
	Province    string `json:"province,omitempty"`
	Postcode    string `json:"postcode,omitempty"`
}

type CreateCustomerRequest struct {
	FullName    string         `json:"full_name"`
	PhoneNumber string         `json:"phone_number"`
	IDNumber    string         `json:"id_number,omitempty"`
	Address     AddressRequest `json:"address"`
}

type UpdateCustomerRequest struct {
	PhoneNumber *string         `json:"phone_number,omitempty"`
	Address     *AddressRequest `json:"address,omitempty"`
}

type InterestPresetRequest struct {
	Days        int             `json:"days"`
	RatePercent decimal.Decimal `json:"rate"`
}

type StoreRequest struct {
	Name            string                  `json:"name"`
	Phone           string                  `json:"phone,omitempty"`
	TaxID           string                  `json:"tax_id,omitempty"`
	Address         AddressRequest          `json:"address"`
	InterestPresets []InterestPresetRequest `json:"interest_presets"`
}
