package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractStatus string

const (
	StatusActive    ContractStatus = "active"
	StatusOverdue   ContractStatus = "overdue"
	StatusRedeemed  ContractStatus = "redeemed"
	StatusSuspended ContractStatus = "suspended"
	StatusSold      ContractStatus = "sold"
)

// AllStatuses lists every contract status in lifecycle order.
var AllStatuses = []ContractStatus{
	StatusActive,
	StatusOverdue,
	StatusRedeemed,
	StatusSuspended,
	StatusSold,
}

func (s ContractStatus) Valid() bool {
	for _, status := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition can leave the status.
func (s ContractStatus) Terminal() bool {
	return s == StatusRedeemed || s == StatusSold
}

// Pledged reports whether the store still holds the collateral.
func (s ContractStatus) Pledged() bool {
	return s == StatusActive || s == StatusOverdue
}

type Item struct {
	Brand            string
	Model            string
	Type             string
	SerialNo         string
	Accessories      string
	ConditionPercent int
	Defects          string
	Note             string
	Images           []string
}

type PawnDetails struct {
	EstimatedPrice      decimal.Decimal
	PawnedPrice         decimal.Decimal
	InterestRatePercent decimal.Decimal
	PeriodDays          int
}

type ContractDates struct {
	StartDate     time.Time
	DueDate       time.Time
	RedeemDate    *time.Time
	SuspendedDate *time.Time
}

// Snapshot holds the derived money fields as of ComputedAt.
type Snapshot struct {
	TotalInterest   decimal.Decimal
	InterestPaid    decimal.Decimal
	RemainingAmount decimal.Decimal
	ComputedAt      time.Time
}

type Contract struct {
	ID             string
	ContractNumber string
	StoreID        string
	CustomerID     string
	Item           Item
	PawnDetails    PawnDetails
	Dates          ContractDates
	Status         ContractStatus
	Remarks        string
	Snapshot       Snapshot
	Version        int64
	History        []Transaction
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NextSequence returns the ledger sequence number for the next append.
func (c *Contract) NextSequence() int {
	return len(c.History) + 1
}

type ContractFilter struct {
	Status     ContractStatus
	Search     string
	CustomerID string
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
}

// ContractOperation is a decided, not yet applied, change to one contract.
// Repositories apply it atomically: the version-guarded update and the
// optional ledger append either both land or neither does.
type ContractOperation struct {
	ContractID  string
	Operation   string
	OldStatus   ContractStatus
	NewStatus   ContractStatus
	OldVersion  int64
	Transaction *Transaction
	Patch       ContractPatch
	UpdatedAt   time.Time
}

type ContractPatch struct {
	PawnedPrice        *decimal.Decimal
	RedeemDate         *time.Time
	SuspendedDate      *time.Time
	ClearSuspendedDate bool
	Remarks            *string
	Snapshot           *Snapshot
}
