package response

import (
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
)

const dateLayout = "2006-01-02"

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type ItemResponse struct {
	Brand            string   `json:"brand"`
	Model            string   `json:"model"`
	Type             string   `json:"type"`
	SerialNo         string   `json:"serial_no,omitempty"`
	Accessories      string   `json:"accessories,omitempty"`
	ConditionPercent int      `json:"condition_percent"`
	Defects          string   `json:"defects,omitempty"`
	Note             string   `json:"note,omitempty"`
	Images           []string `json:"images"`
}

type PawnDetailsResponse struct {
	EstimatedPrice      string `json:"estimated_price"`
	PawnedPrice         string `json:"pawned_price"`
	InterestRatePercent string `json:"interest_rate_percent"`
	PeriodDays          int    `json:"period_days"`
}

type DatesResponse struct {
	StartDate     string  `json:"start_date"`
	DueDate       string  `json:"due_date"`
	RedeemDate    *string `json:"redeem_date,omitempty"`
	SuspendedDate *string `json:"suspended_date,omitempty"`
}

type SnapshotResponse struct {
	TotalInterest   string `json:"total_interest"`
	InterestPaid    string `json:"interest_paid"`
	RemainingAmount string `json:"remaining_amount"`
	ComputedAt      string `json:"computed_at"`
}

type TransactionResponse struct {
	ID            string `json:"id"`
	ContractID    string `json:"contract_id"`
	Sequence      int    `json:"sequence"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"payment_method,omitempty"`
	BeforeBalance string `json:"before_balance"`
	AfterBalance  string `json:"after_balance"`
	ActorID       string `json:"actor_id,omitempty"`
	Note          string `json:"note,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type ContractResponse struct {
	ID             string                `json:"id"`
	ContractNumber string                `json:"contract_number"`
	StoreID        string                `json:"store_id"`
	CustomerID     string                `json:"customer_id"`
	Item           ItemResponse          `json:"item"`
	PawnDetails    PawnDetailsResponse   `json:"pawn_details"`
	Dates          DatesResponse         `json:"dates"`
	Status         string                `json:"status"`
	Remarks        string                `json:"remarks,omitempty"`
	Snapshot       SnapshotResponse      `json:"snapshot"`
	Version        int64                 `json:"version"`
	History        []TransactionResponse `json:"transaction_history"`
	CreatedAt      string                `json:"created_at"`
	UpdatedAt      string                `json:"updated_at"`
}

type ContractListResponse struct {
	Contracts []ContractResponse `json:"contracts"`
	Total     int64              `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// FromContract renders calendar dates in loc and instants in UTC.
func FromContract(c *domain.Contract, loc *time.Location) ContractResponse {
	images := c.Item.Images
	if images == nil {
		images = []string{}
	}
	return ContractResponse{
		ID:             c.ID,
		ContractNumber: c.ContractNumber,
		StoreID:        c.StoreID,
		CustomerID:     c.CustomerID,
		Item: ItemResponse{
			Brand:            c.Item.Brand,
			Model:            c.Item.Model,
			Type:             c.Item.Type,
			SerialNo:         c.Item.SerialNo,
			Accessories:      c.Item.Accessories,
			ConditionPercent: c.Item.ConditionPercent,
			Defects:          c.Item.Defects,
			Note:             c.Item.Note,
			Images:           images,
		},
		PawnDetails: PawnDetailsResponse{
			EstimatedPrice:      c.PawnDetails.EstimatedPrice.StringFixed(2),
			PawnedPrice:         c.PawnDetails.PawnedPrice.StringFixed(2),
			InterestRatePercent: c.PawnDetails.InterestRatePercent.String(),
			PeriodDays:          c.PawnDetails.PeriodDays,
		},
		Dates: DatesResponse{
			StartDate:     formatDate(c.Dates.StartDate, loc),
			DueDate:       formatDate(c.Dates.DueDate, loc),
			RedeemDate:    formatDatePtr(c.Dates.RedeemDate, loc),
			SuspendedDate: formatDatePtr(c.Dates.SuspendedDate, loc),
		},
		Status:  string(c.Status),
		Remarks: c.Remarks,
		Snapshot: SnapshotResponse{
			TotalInterest:   c.Snapshot.TotalInterest.StringFixed(2),
			InterestPaid:    c.Snapshot.InterestPaid.StringFixed(2),
			RemainingAmount: c.Snapshot.RemainingAmount.StringFixed(2),
			ComputedAt:      formatInstant(c.Snapshot.ComputedAt),
		},
		Version:   c.Version,
		History:   FromTransactions(c.History),
		CreatedAt: formatInstant(c.CreatedAt),
		UpdatedAt: formatInstant(c.UpdatedAt),
	}
}

func FromContracts(contracts []*domain.Contract, loc *time.Location) []ContractResponse {
	out := make([]ContractResponse, len(contracts))
	for i, c := range contracts {
		out[i] = FromContract(c, loc)
	}
	return out
}

func FromTransaction(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		ContractID:    t.ContractID,
		Sequence:      t.Sequence,
		Type:          string(t.Type),
		Amount:        t.Amount.StringFixed(2),
		PaymentMethod: string(t.PaymentMethod),
		BeforeBalance: t.BeforeBalance.StringFixed(2),
		AfterBalance:  t.AfterBalance.StringFixed(2),
		ActorID:       t.ActorID,
		Note:          t.Note,
		CreatedAt:     formatInstant(t.CreatedAt),
	}
}

func FromTransactions(txs []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txs))
	for i := range txs {
		out[i] = FromTransaction(&txs[i])
	}
	return out
}

func formatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dateLayout)
}

func formatDatePtr(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t, loc)
	return &s
}

func formatInstant(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
