// Package calculator holds the money arithmetic of a pawn contract. Every
// function is pure and works on decimal amounts rounded to two places.
package calculator

import (
	"fmt"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// MonthDays is the proration baseline for monthly interest rates.
	MonthDays = 30
	scale     = 2
)

var (
	hundred   = decimal.NewFromInt(100)
	monthDays = decimal.NewFromInt(MonthDays)
)

func validate(principal, ratePercent decimal.Decimal, elapsedDays int) error {
	if !principal.IsPositive() {
		return fmt.Errorf("%w: principal must be positive, got %s", domain.ErrInvalidArgument, principal)
	}
	if !ratePercent.IsPositive() {
		return fmt.Errorf("%w: interest rate must be positive, got %s", domain.ErrInvalidArgument, ratePercent)
	}
	if elapsedDays < 0 {
		return fmt.Errorf("%w: elapsed days must not be negative, got %d", domain.ErrInvalidArgument, elapsedDays)
	}
	return nil
}

// Interest accrues linearly on a 30-day month:
// principal * rate/100 * elapsed/30, rounded half-up to cents.
func Interest(principal, ratePercent decimal.Decimal, elapsedDays int) (decimal.Decimal, error) {
	if err := validate(principal, ratePercent, elapsedDays); err != nil {
		return decimal.Zero, err
	}
	amount := principal.
		Mul(ratePercent).
		Mul(decimal.NewFromInt(int64(elapsedDays))).
		Div(hundred.Mul(monthDays))
	return amount.Round(scale), nil
}

func TotalDue(principal, ratePercent decimal.Decimal, elapsedDays int) (decimal.Decimal, error) {
	interest, err := Interest(principal, ratePercent, elapsedDays)
	if err != nil {
		return decimal.Zero, err
	}
	return principal.Add(interest), nil
}

// RedemptionAmount is what the customer must pay to take the item back:
// the principal plus accrued interest not yet covered by interest payments.
func RedemptionAmount(principal, ratePercent decimal.Decimal, elapsedDays int, interestPaid decimal.Decimal) (decimal.Decimal, error) {
	interest, err := Interest(principal, ratePercent, elapsedDays)
	if err != nil {
		return decimal.Zero, err
	}
	outstanding := decimal.Max(decimal.Zero, interest.Sub(interestPaid))
	return principal.Add(outstanding), nil
}

func DueDate(start time.Time, periodDays int) (time.Time, error) {
	if periodDays <= 0 {
		return time.Time{}, fmt.Errorf("%w: period must be positive, got %d days", domain.ErrInvalidArgument, periodDays)
	}
	return start.AddDate(0, 0, periodDays), nil
}

// ElapsedDays counts whole calendar days from start to asOf in asOf's
// location. Dates before start count as zero.
func ElapsedDays(start, asOf time.Time) int {
	from := civilDay(start.In(asOf.Location()))
	to := civilDay(asOf)
	if !to.After(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}

// civilDay maps the calendar date of t onto UTC midnight so that day
// differences are not skewed by DST shifts.
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Snapshot recomputes the derived money fields of a contract as of asOf.
func Snapshot(principal, ratePercent decimal.Decimal, start, asOf time.Time, interestPaid decimal.Decimal) (domain.Snapshot, error) {
	elapsed := ElapsedDays(start, asOf)
	interest, err := Interest(principal, ratePercent, elapsed)
	if err != nil {
		return domain.Snapshot{}, err
	}
	remaining := decimal.Max(decimal.Zero, principal.Add(interest).Sub(interestPaid))
	return domain.Snapshot{
		TotalInterest:   interest,
		InterestPaid:    interestPaid,
		RemainingAmount: remaining,
		ComputedAt:      asOf,
	}, nil
}
