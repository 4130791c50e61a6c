package lifecycle

import (
	"testing"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bangkok = time.FixedZone("ICT", 7*3600)

func day(n int) time.Time {
	return time.Date(2024, time.March, 1, 10, 0, 0, 0, bangkok).AddDate(0, 0, n)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestContract(t *testing.T) *domain.Contract {
	t.Helper()
	c, err := NewContract(NewContractInput{
		ContractID:     "contract-1",
		ContractNumber: "SCL240301ABC123",
		PledgeID:       "tx-1",
		StoreID:        "store-1",
		CustomerID:     "customer-1",
		ActorID:        "user-1",
		Item: domain.Item{
			Brand:            "Apple",
			Model:            "iPhone 13",
			Type:             "phone",
			ConditionPercent: 90,
		},
		PawnDetails: domain.PawnDetails{
			EstimatedPrice:      amount("30000"),
			PawnedPrice:         amount("25000"),
			InterestRatePercent: amount("3.0"),
			PeriodDays:          30,
		},
		PaymentMethod: domain.PaymentCash,
	}, day(0))
	require.NoError(t, err)
	return c
}

// apply mimics the repository: it folds an operation into the contract.
func apply(c *domain.Contract, op *domain.ContractOperation) {
	if op == nil {
		return
	}
	c.Status = op.NewStatus
	c.Version++
	c.UpdatedAt = op.UpdatedAt
	if op.Patch.PawnedPrice != nil {
		c.PawnDetails.PawnedPrice = *op.Patch.PawnedPrice
	}
	if op.Patch.RedeemDate != nil {
		c.Dates.RedeemDate = op.Patch.RedeemDate
	}
	if op.Patch.SuspendedDate != nil {
		c.Dates.SuspendedDate = op.Patch.SuspendedDate
	}
	if op.Patch.ClearSuspendedDate {
		c.Dates.SuspendedDate = nil
	}
	if op.Patch.Remarks != nil {
		c.Remarks = *op.Patch.Remarks
	}
	if op.Patch.Snapshot != nil {
		c.Snapshot = *op.Patch.Snapshot
	}
	if op.Transaction != nil {
		c.History = append(c.History, *op.Transaction)
	}
}

func TestNewContract(t *testing.T) {
	c := newTestContract(t)

	assert.Equal(t, domain.StatusActive, c.Status)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, bangkok), c.Dates.StartDate)
	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, bangkok), c.Dates.DueDate)
	assert.Nil(t, c.Dates.RedeemDate)
	assert.Equal(t, int64(1), c.Version)

	require.Len(t, c.History, 1)
	pledge := c.History[0]
	assert.Equal(t, domain.TxPledge, pledge.Type)
	assert.Equal(t, 1, pledge.Sequence)
	assert.True(t, amount("25000").Equal(pledge.Amount))
	assert.True(t, amount("25000").Equal(c.Snapshot.RemainingAmount))
}

func TestNewContract_KeepsPawnedAboveEstimate(t *testing.T) {
	c, err := NewContract(NewContractInput{
		ContractID: "c", StoreID: "s", CustomerID: "cu",
		Item: domain.Item{Brand: "Rolex"},
		PawnDetails: domain.PawnDetails{
			EstimatedPrice:      amount("1000"),
			PawnedPrice:         amount("1500"),
			InterestRatePercent: amount("2"),
			PeriodDays:          60,
		},
	}, day(0))
	require.NoError(t, err)
	assert.True(t, amount("1000").Equal(c.PawnDetails.EstimatedPrice))
	assert.True(t, amount("1500").Equal(c.PawnDetails.PawnedPrice))
}

func TestNewContract_InvalidArgument(t *testing.T) {
	valid := func() NewContractInput {
		return NewContractInput{
			StoreID:    "store-1",
			CustomerID: "customer-1",
			Item:       domain.Item{Brand: "Apple", ConditionPercent: 50},
			PawnDetails: domain.PawnDetails{
				EstimatedPrice:      amount("100"),
				PawnedPrice:         amount("80"),
				InterestRatePercent: amount("3"),
				PeriodDays:          30,
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(in *NewContractInput)
	}{
		{"missing store", func(in *NewContractInput) { in.StoreID = "" }},
		{"missing customer", func(in *NewContractInput) { in.CustomerID = "" }},
		{"missing item", func(in *NewContractInput) { in.Item.Brand = "" }},
		{"condition above 100", func(in *NewContractInput) { in.Item.ConditionPercent = 101 }},
		{"negative condition", func(in *NewContractInput) { in.Item.ConditionPercent = -1 }},
		{"zero estimate", func(in *NewContractInput) { in.PawnDetails.EstimatedPrice = decimal.Zero }},
		{"negative principal", func(in *NewContractInput) { in.PawnDetails.PawnedPrice = amount("-1") }},
		{"zero rate", func(in *NewContractInput) { in.PawnDetails.InterestRatePercent = decimal.Zero }},
		{"zero period", func(in *NewContractInput) { in.PawnDetails.PeriodDays = 0 }},
		{"bad payment method", func(in *NewContractInput) { in.PaymentMethod = "barter" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)
			_, err := NewContract(in, day(0))
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed(domain.StatusActive, domain.TxRedeem))
	assert.True(t, Allowed(domain.StatusOverdue, domain.TxRedeem))
	assert.False(t, Allowed(domain.StatusSuspended, domain.TxRedeem))
	assert.True(t, Allowed(domain.StatusSuspended, domain.TxResume))
	assert.False(t, Allowed(domain.StatusActive, domain.TxResume))
	assert.True(t, Allowed(domain.StatusSuspended, domain.TxSell))
	assert.True(t, Allowed(domain.StatusSuspended, domain.TxInterestPayment))

	for _, status := range domain.AllStatuses {
		assert.False(t, Allowed(status, domain.TxPledge), status)
	}
	for txType := range transitions {
		assert.False(t, Allowed(domain.StatusRedeemed, txType), txType)
		assert.False(t, Allowed(domain.StatusSold, txType), txType)
	}
}

func TestPlan_RedeemThenRedeemAgain(t *testing.T) {
	c := newTestContract(t)

	op, err := Plan(c, Command{
		TransactionID: "tx-2",
		Type:          domain.TxRedeem,
		Amount:        amount("25375.00"),
		PaymentMethod: domain.PaymentCash,
	}, day(15))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, op.OldStatus)
	assert.Equal(t, domain.StatusRedeemed, op.NewStatus)
	assert.Equal(t, int64(1), op.OldVersion)
	require.NotNil(t, op.Patch.RedeemDate)
	assert.Equal(t, time.Date(2024, time.March, 16, 0, 0, 0, 0, bangkok), *op.Patch.RedeemDate)

	require.NotNil(t, op.Transaction)
	assert.Equal(t, 2, op.Transaction.Sequence)
	assert.True(t, amount("25375").Equal(op.Transaction.Amount))
	assert.True(t, amount("25375").Equal(op.Transaction.BeforeBalance))
	assert.True(t, op.Transaction.AfterBalance.IsZero())

	apply(c, op)
	_, err = Plan(c, Command{Type: domain.TxRedeem, Amount: amount("25375")}, day(16))
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
	assert.Len(t, c.History, 2)
}

func TestPlan_RedeemUnderpaid(t *testing.T) {
	c := newTestContract(t)

	_, err := Plan(c, Command{Type: domain.TxRedeem, Amount: amount("25374.99")}, day(15))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestPlan_RedeemCreditsInterestPaid(t *testing.T) {
	c := newTestContract(t)

	op, err := Plan(c, Command{Type: domain.TxInterestPayment, Amount: amount("375")}, day(15))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, op.NewStatus)
	assert.True(t, amount("375").Equal(op.Patch.Snapshot.InterestPaid))
	assert.True(t, amount("25000").Equal(op.Transaction.AfterBalance))
	apply(c, op)

	op, err = Plan(c, Command{Type: domain.TxRedeem, Amount: amount("25000")}, day(15))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRedeemed, op.NewStatus)
}

func TestPlan_PrincipalChanges(t *testing.T) {
	c := newTestContract(t)

	op, err := Plan(c, Command{Type: domain.TxPrincipalIncrease, Amount: amount("5000")}, day(0))
	require.NoError(t, err)
	require.NotNil(t, op.Patch.PawnedPrice)
	assert.True(t, amount("30000").Equal(*op.Patch.PawnedPrice))
	apply(c, op)

	op, err = Plan(c, Command{Type: domain.TxPrincipalDecrease, Amount: amount("10000")}, day(30))
	require.NoError(t, err)
	assert.True(t, amount("20000").Equal(*op.Patch.PawnedPrice))
	assert.True(t, amount("600").Equal(op.Patch.Snapshot.TotalInterest))
	apply(c, op)

	_, err = Plan(c, Command{Type: domain.TxPrincipalDecrease, Amount: amount("20000")}, day(30))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = Plan(c, Command{Type: domain.TxPrincipalIncrease}, day(30))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestPlan_SuspendResume(t *testing.T) {
	c := newTestContract(t)

	op, err := Plan(c, Command{
		Type:   domain.TxSuspend,
		Reason: "customer abroad",
		Note:   "called on Monday",
	}, day(5))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuspended, op.NewStatus)
	require.NotNil(t, op.Patch.SuspendedDate)
	assert.Equal(t, "customer abroad: called on Monday", op.Transaction.Note)
	assert.True(t, op.Transaction.Amount.IsZero())
	apply(c, op)

	_, err = Plan(c, Command{Type: domain.TxRedeem, Amount: amount("99999")}, day(6))
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)

	op, err = Plan(c, Command{Type: domain.TxInterestPayment, Amount: amount("100")}, day(6))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuspended, op.NewStatus)
	apply(c, op)

	op, err = Plan(c, Command{Type: domain.TxResume}, day(7))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, op.NewStatus)
	assert.True(t, op.Patch.ClearSuspendedDate)
	apply(c, op)
	assert.Nil(t, c.Dates.SuspendedDate)
	assert.Len(t, c.History, 4)
}

func TestPlan_Sell(t *testing.T) {
	c := newTestContract(t)
	apply(c, PlanOverdue(c, day(31)))
	require.Equal(t, domain.StatusOverdue, c.Status)

	_, err := Plan(c, Command{Type: domain.TxSell}, day(40))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	op, err := Plan(c, Command{Type: domain.TxSell, Amount: amount("27000")}, day(40))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSold, op.NewStatus)
	assert.True(t, op.Patch.Snapshot.RemainingAmount.IsZero())
	apply(c, op)

	for txType := range transitions {
		_, err := Plan(c, Command{Type: txType, Amount: amount("1")}, day(41))
		assert.ErrorIs(t, err, domain.ErrIllegalTransition, txType)
	}
}

func TestPlan_RejectsBadCommands(t *testing.T) {
	c := newTestContract(t)

	_, err := Plan(c, Command{Type: "refund", Amount: amount("1")}, day(1))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = Plan(c, Command{Type: domain.TxInterestPayment, Amount: amount("-5")}, day(1))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = Plan(c, Command{Type: domain.TxInterestPayment, Amount: amount("5"), PaymentMethod: "gold"}, day(1))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = Plan(c, Command{Type: domain.TxPledge, Amount: amount("5")}, day(1))
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestPlanOverdue(t *testing.T) {
	c := newTestContract(t)

	assert.Nil(t, PlanOverdue(c, day(29)))
	assert.Nil(t, PlanOverdue(c, day(30)), "due date itself is not overdue")

	op := PlanOverdue(c, day(31))
	require.NotNil(t, op)
	assert.Equal(t, domain.StatusOverdue, op.NewStatus)
	assert.Nil(t, op.Transaction)
	apply(c, op)

	versionAfterFirst := c.Version
	assert.Nil(t, PlanOverdue(c, day(32)))
	assert.Equal(t, domain.StatusOverdue, c.Status)
	assert.Equal(t, versionAfterFirst, c.Version)
	assert.Len(t, c.History, 1)
}

func TestPlanOverdue_IgnoresNonActive(t *testing.T) {
	c := newTestContract(t)
	op, err := Plan(c, Command{Type: domain.TxSuspend}, day(1))
	require.NoError(t, err)
	apply(c, op)

	assert.Nil(t, PlanOverdue(c, day(90)))
}

func TestPlanRemarks(t *testing.T) {
	c := newTestContract(t)

	op := PlanRemarks(c, "  scratched screen  ", day(1))
	require.NotNil(t, op)
	assert.Equal(t, "scratched screen", *op.Patch.Remarks)
	assert.Nil(t, op.Transaction)
	apply(c, op)

	assert.Nil(t, PlanRemarks(c, "scratched screen", day(2)))
}
