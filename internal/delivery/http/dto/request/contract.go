package request

import "github.com/shopspring/decimal"

type CreateContractRequest struct {
	CustomerID    string             `json:"customer_id"`
	Item          ItemRequest        `json:"item"`
	PawnDetails   PawnDetailsRequest `json:"pawn_details"`
	StartDate     string             `json:"start_date,omitempty"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	Remarks       string             `json:"remarks,omitempty"`
}

type ItemRequest struct {
	Brand            string   `json:"brand"`
	Model            string   `json:"model"`
	Type             string   `json:"type"`
	SerialNo         string   `json:"serial_no,omitempty"`
	Accessories      string   `json:"accessories,omitempty"`
	ConditionPercent int      `json:"condition_percent"`
	Defects          string   `json:"defects,omitempty"`
	Note             string   `json:"note,omitempty"`
	Images           []string `json:"images,omitempty"`
}

// PawnDetailsRequest omits interest_rate_percent to use the store preset.
type PawnDetailsRequest struct {
	EstimatedPrice      decimal.Decimal `json:"estimated_price"`
	PawnedPrice         decimal.Decimal `json:"pawned_price"`
	InterestRatePercent decimal.Decimal `json:"interest_rate_percent"`
	PeriodDays          int             `json:"period_days"`
}

type RecordTransactionRequest struct {
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Reason        string          `json:"reason,omitempty"`
	Note          string          `json:"note,omitempty"`
}

type UpdateContractRequest struct {
	Remarks *string `json:"remarks"`
}
