package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/calculator"
	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/shopspring/decimal"
)

type NewContractInput struct {
	ContractID     string
	ContractNumber string
	PledgeID       string
	StoreID        string
	CustomerID     string
	ActorID        string
	Item           domain.Item
	PawnDetails    domain.PawnDetails
	StartDate      time.Time
	PaymentMethod  domain.PaymentMethod
	Remarks        string
}

// NewContract validates the loan terms and builds an active contract whose
// ledger holds the initial pledge.
func NewContract(in NewContractInput, now time.Time) (*domain.Contract, error) {
	if err := validateNewContract(in); err != nil {
		return nil, err
	}

	start := in.StartDate
	if start.IsZero() {
		start = now
	}
	start = startOfDay(start.In(now.Location()))

	due, err := calculator.DueDate(start, in.PawnDetails.PeriodDays)
	if err != nil {
		return nil, err
	}

	terms := in.PawnDetails
	snapshot, err := calculator.Snapshot(terms.PawnedPrice, terms.InterestRatePercent, start, now, decimal.Zero)
	if err != nil {
		return nil, err
	}

	pledge := domain.Transaction{
		ID:            in.PledgeID,
		ContractID:    in.ContractID,
		StoreID:       in.StoreID,
		Sequence:      1,
		Type:          domain.TxPledge,
		Amount:        terms.PawnedPrice,
		PaymentMethod: in.PaymentMethod,
		BeforeBalance: decimal.Zero,
		AfterBalance:  snapshot.RemainingAmount,
		ActorID:       in.ActorID,
		CreatedAt:     now,
	}

	return &domain.Contract{
		ID:             in.ContractID,
		ContractNumber: in.ContractNumber,
		StoreID:        in.StoreID,
		CustomerID:     in.CustomerID,
		Item:           in.Item,
		PawnDetails:    terms,
		Dates: domain.ContractDates{
			StartDate: start,
			DueDate:   due,
		},
		Status:    domain.StatusActive,
		Remarks:   in.Remarks,
		Snapshot:  snapshot,
		Version:   1,
		History:   []domain.Transaction{pledge},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func validateNewContract(in NewContractInput) error {
	switch {
	case in.StoreID == "":
		return fmt.Errorf("%w: store id is required", domain.ErrInvalidArgument)
	case in.CustomerID == "":
		return fmt.Errorf("%w: customer id is required", domain.ErrInvalidArgument)
	case strings.TrimSpace(in.Item.Brand) == "" && strings.TrimSpace(in.Item.Model) == "":
		return fmt.Errorf("%w: item brand or model is required", domain.ErrInvalidArgument)
	case in.Item.ConditionPercent < 0 || in.Item.ConditionPercent > 100:
		return fmt.Errorf("%w: condition must be within 0..100, got %d", domain.ErrInvalidArgument, in.Item.ConditionPercent)
	case !in.PawnDetails.EstimatedPrice.IsPositive():
		return fmt.Errorf("%w: estimated price must be positive", domain.ErrInvalidArgument)
	case !in.PawnDetails.PawnedPrice.IsPositive():
		return fmt.Errorf("%w: pawned price must be positive", domain.ErrInvalidArgument)
	case !in.PawnDetails.InterestRatePercent.IsPositive():
		return fmt.Errorf("%w: interest rate must be positive", domain.ErrInvalidArgument)
	case in.PawnDetails.PeriodDays <= 0:
		return fmt.Errorf("%w: period must be positive", domain.ErrInvalidArgument)
	case !in.PaymentMethod.Valid():
		return fmt.Errorf("%w: unknown payment method %q", domain.ErrInvalidArgument, in.PaymentMethod)
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
