package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/calculator"
	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	OperationRecordTransaction = "record_transaction"
	OperationMarkOverdue       = "mark_overdue"
	OperationUpdateRemarks     = "update_remarks"
)

// Command asks for one ledger entry to be appended to a contract.
type Command struct {
	TransactionID string
	Type          domain.TransactionType
	Amount        decimal.Decimal
	PaymentMethod domain.PaymentMethod
	ActorID       string
	Reason        string
	Note          string
}

// Plan decides the effect of cmd on the current state of a contract.
// It returns domain.ErrIllegalTransition when the contract status does not
// permit the transaction and domain.ErrInvalidArgument for bad amounts.
func Plan(current *domain.Contract, cmd Command, now time.Time) (*domain.ContractOperation, error) {
	if !cmd.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", domain.ErrInvalidArgument, cmd.Type)
	}
	if !cmd.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", domain.ErrInvalidArgument, cmd.PaymentMethod)
	}
	if cmd.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", domain.ErrInvalidArgument)
	}
	if !Allowed(current.Status, cmd.Type) {
		return nil, fmt.Errorf("%w: %s is not allowed for a %s contract", domain.ErrIllegalTransition, cmd.Type, current.Status)
	}

	terms := current.PawnDetails
	principal := terms.PawnedPrice
	paid := current.Snapshot.InterestPaid
	today := startOfDay(now)

	before, err := calculator.Snapshot(principal, terms.InterestRatePercent, current.Dates.StartDate, now, paid)
	if err != nil {
		return nil, err
	}

	op := &domain.ContractOperation{
		ContractID: current.ID,
		Operation:  OperationRecordTransaction,
		OldStatus:  current.Status,
		NewStatus:  TargetStatus(current.Status, cmd.Type),
		OldVersion: current.Version,
		UpdatedAt:  now,
	}
	note := cmd.Note

	switch cmd.Type {
	case domain.TxInterestPayment:
		if err := requirePositive(cmd.Amount); err != nil {
			return nil, err
		}
		paid = paid.Add(cmd.Amount)

	case domain.TxPrincipalIncrease:
		if err := requirePositive(cmd.Amount); err != nil {
			return nil, err
		}
		principal = principal.Add(cmd.Amount)
		op.Patch.PawnedPrice = &principal

	case domain.TxPrincipalDecrease:
		if err := requirePositive(cmd.Amount); err != nil {
			return nil, err
		}
		principal = principal.Sub(cmd.Amount)
		if !principal.IsPositive() {
			return nil, fmt.Errorf("%w: decrease of %s would leave no principal", domain.ErrInvalidArgument, cmd.Amount)
		}
		op.Patch.PawnedPrice = &principal

	case domain.TxRedeem:
		elapsed := calculator.ElapsedDays(current.Dates.StartDate, now)
		due, err := calculator.RedemptionAmount(principal, terms.InterestRatePercent, elapsed, paid)
		if err != nil {
			return nil, err
		}
		if cmd.Amount.LessThan(due) {
			return nil, fmt.Errorf("%w: redemption requires at least %s, got %s", domain.ErrInvalidArgument, due.StringFixed(2), cmd.Amount.StringFixed(2))
		}
		op.Patch.RedeemDate = &today

	case domain.TxSuspend:
		op.Patch.SuspendedDate = &today
		if cmd.Reason != "" {
			note = fmt.Sprintf("%s: %s", cmd.Reason, cmd.Note)
		}

	case domain.TxResume:
		op.Patch.ClearSuspendedDate = true

	case domain.TxSell:
		if err := requirePositive(cmd.Amount); err != nil {
			return nil, err
		}
	}

	after, err := calculator.Snapshot(principal, terms.InterestRatePercent, current.Dates.StartDate, now, paid)
	if err != nil {
		return nil, err
	}
	if op.NewStatus.Terminal() {
		after.RemainingAmount = decimal.Zero
	}
	op.Patch.Snapshot = &after

	op.Transaction = &domain.Transaction{
		ID:            cmd.TransactionID,
		ContractID:    current.ID,
		StoreID:       current.StoreID,
		Sequence:      current.NextSequence(),
		Type:          cmd.Type,
		Amount:        cmd.Amount,
		PaymentMethod: cmd.PaymentMethod,
		BeforeBalance: before.RemainingAmount,
		AfterBalance:  after.RemainingAmount,
		ActorID:       cmd.ActorID,
		Note:          strings.TrimSpace(note),
		CreatedAt:     now,
	}
	return op, nil
}

// PlanOverdue moves an active contract past its due date to overdue.
// Any other state yields a nil operation so that repeated sweeps are no-ops.
func PlanOverdue(current *domain.Contract, now time.Time) *domain.ContractOperation {
	if !IsOverdue(current, now) {
		return nil
	}
	return &domain.ContractOperation{
		ContractID: current.ID,
		Operation:  OperationMarkOverdue,
		OldStatus:  current.Status,
		NewStatus:  domain.StatusOverdue,
		OldVersion: current.Version,
		UpdatedAt:  now,
	}
}

// IsOverdue reports whether an active contract's due date lies before today.
func IsOverdue(c *domain.Contract, now time.Time) bool {
	if c.Status != domain.StatusActive {
		return false
	}
	today := startOfDay(now)
	due := startOfDay(c.Dates.DueDate.In(now.Location()))
	return today.After(due)
}

// PlanRemarks replaces the free-text remarks. Remarks stay editable in
// every status.
func PlanRemarks(current *domain.Contract, remarks string, now time.Time) *domain.ContractOperation {
	remarks = strings.TrimSpace(remarks)
	if remarks == current.Remarks {
		return nil
	}
	return &domain.ContractOperation{
		ContractID: current.ID,
		Operation:  OperationUpdateRemarks,
		OldStatus:  current.Status,
		NewStatus:  current.Status,
		OldVersion: current.Version,
		Patch:      domain.ContractPatch{Remarks: &remarks},
		UpdatedAt:  now,
	}
}

func requirePositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidArgument)
	}
	return nil
}
