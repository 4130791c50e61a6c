package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DecideFunc inspects the freshly locked contract and returns the operation
// to apply, or nil when there is nothing to do.
type DecideFunc func(current *Contract) (*ContractOperation, error)

type ContractRepository interface {
	CreateContract(ctx context.Context, contract *Contract) error
	GetContractByID(ctx context.Context, contractID string) (*Contract, error)
	ListContracts(ctx context.Context, storeID string, filter ContractFilter) ([]*Contract, int64, error)
	ProcessContractOperation(ctx context.Context, contractID string, decide DecideFunc) (*Contract, error)
	FindOverdueCandidates(ctx context.Context, dueBefore time.Time, exclude []string, limit int) ([]string, error)
}

// LedgerRepository reads the append-only transaction history. Appends only
// happen inside ContractRepository.CreateContract and ProcessContractOperation.
type LedgerRepository interface {
	History(ctx context.Context, contractID string) ([]Transaction, error)
}

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *Customer) error
	GetCustomerByID(ctx context.Context, customerID string) (*Customer, error)
	SearchCustomers(ctx context.Context, storeID, query string, limit int) ([]*Customer, error)
	UpdateCustomerContact(ctx context.Context, customerID string, contact CustomerContact, updatedAt time.Time) error
}

type StoreRepository interface {
	CreateStore(ctx context.Context, store *Store) error
	GetStoreByID(ctx context.Context, storeID string) (*Store, error)
	UpdateStore(ctx context.Context, store *Store) error
	SetStoreActive(ctx context.Context, storeID string, active bool, updatedAt time.Time) error
}

type StatsRepository interface {
	CountByStatus(ctx context.Context, storeID string, period DateRange) (map[ContractStatus]int64, error)
	SumPawnedPrice(ctx context.Context, storeID string, statuses []ContractStatus) (decimal.Decimal, error)
	SumOriginations(ctx context.Context, storeID string, period DateRange) (decimal.Decimal, int64, error)
	CountDue(ctx context.Context, storeID string, period DateRange) (int64, error)
	CategoryBreakdown(ctx context.Context, storeID string, period DateRange) ([]CategoryStat, error)
	CountCustomers(ctx context.Context, storeID string) (int64, error)
	ListTransactionsSince(ctx context.Context, storeID string, since time.Time) ([]Transaction, error)
}
