package contractdto

import (
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateContractInput struct {
	CustomerID    string
	Item          domain.Item
	PawnDetails   PawnTermsInput
	StartDate     time.Time
	PaymentMethod domain.PaymentMethod
	Remarks       string
}

// PawnTermsInput leaves InterestRatePercent zero to take the store preset
// for PeriodDays.
type PawnTermsInput struct {
	EstimatedPrice      decimal.Decimal
	PawnedPrice         decimal.Decimal
	InterestRatePercent decimal.Decimal
	PeriodDays          int
}

type RecordTransactionInput struct {
	ContractID    string
	Type          domain.TransactionType
	Amount        decimal.Decimal
	PaymentMethod domain.PaymentMethod
	Reason        string
	Note          string
}
