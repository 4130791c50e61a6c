// Package lifecycle decides how a pawn contract moves between statuses.
// It never touches storage: every decision is returned as a
// domain.ContractOperation that the repository applies atomically.
package lifecycle

import "github.com/LavaJover/shvark-pawn-service/internal/domain"

var transitions = map[domain.TransactionType][]domain.ContractStatus{
	domain.TxInterestPayment:   {domain.StatusActive, domain.StatusOverdue, domain.StatusSuspended},
	domain.TxPrincipalIncrease: {domain.StatusActive, domain.StatusOverdue, domain.StatusSuspended},
	domain.TxPrincipalDecrease: {domain.StatusActive, domain.StatusOverdue, domain.StatusSuspended},
	domain.TxRedeem:            {domain.StatusActive, domain.StatusOverdue},
	domain.TxSuspend:           {domain.StatusActive, domain.StatusOverdue},
	domain.TxResume:            {domain.StatusSuspended},
	domain.TxSell:              {domain.StatusActive, domain.StatusOverdue, domain.StatusSuspended},
}

// Allowed reports whether a transaction of type txType may be appended to a
// contract in the given status. Pledge is only ever written at creation.
func Allowed(status domain.ContractStatus, txType domain.TransactionType) bool {
	for _, from := range transitions[txType] {
		if from == status {
			return true
		}
	}
	return false
}

// TargetStatus returns the status a contract ends up in after txType.
func TargetStatus(current domain.ContractStatus, txType domain.TransactionType) domain.ContractStatus {
	switch txType {
	case domain.TxRedeem:
		return domain.StatusRedeemed
	case domain.TxSuspend:
		return domain.StatusSuspended
	case domain.TxResume:
		return domain.StatusActive
	case domain.TxSell:
		return domain.StatusSold
	default:
		return current
	}
}
