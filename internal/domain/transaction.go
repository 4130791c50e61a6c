package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TxPledge            TransactionType = "pledge"
	TxInterestPayment   TransactionType = "interest_payment"
	TxPrincipalIncrease TransactionType = "principal_increase"
	TxPrincipalDecrease TransactionType = "principal_decrease"
	TxRedeem            TransactionType = "redeem"
	TxSuspend           TransactionType = "suspend"
	TxResume            TransactionType = "resume"
	TxSell              TransactionType = "sell"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TxPledge, TxInterestPayment, TxPrincipalIncrease, TxPrincipalDecrease,
		TxRedeem, TxSuspend, TxResume, TxSell:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentPromptPay    PaymentMethod = "promptpay"
	PaymentCreditCard   PaymentMethod = "credit_card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case "", PaymentCash, PaymentBankTransfer, PaymentPromptPay, PaymentCreditCard:
		return true
	}
	return false
}

// Transaction is one immutable ledger entry of a contract.
type Transaction struct {
	ID            string
	ContractID    string
	StoreID       string
	Sequence      int
	Type          TransactionType
	Amount        decimal.Decimal
	PaymentMethod PaymentMethod
	BeforeBalance decimal.Decimal
	AfterBalance  decimal.Decimal
	ActorID       string
	Note          string
	CreatedAt     time.Time
}
