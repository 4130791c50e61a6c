package contract

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/clock"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/models"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/repository"
	contractdto "github.com/LavaJover/shvark-pawn-service/internal/usecase/dto/contract"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase/scope"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var bangkok = mustLocation("Asia/Bangkok")

// day0 is the start date used by the lifecycle scenarios.
var day0 = time.Date(2024, time.March, 1, 10, 0, 0, 0, bangkok)

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.ContractEvent
	err    error
}

func (p *recordingPublisher) PublishContractEvent(_ context.Context, event domain.ContractEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) snapshot() []domain.ContractEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.ContractEvent(nil), p.events...)
}

// sequenceNumbers hands out the given numbers in order and then repeats
// the last one.
type sequenceNumbers struct {
	mu      sync.Mutex
	numbers []string
}

func (s *sequenceNumbers) Next(time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.numbers[0]
	if len(s.numbers) > 1 {
		s.numbers = s.numbers[1:]
	}
	return next
}

type fixture struct {
	uc        *DefaultContractUsecase
	clock     *clock.Fixed
	stores    *repository.DefaultStoreRepository
	customers *repository.DefaultCustomerRepository
	publisher *recordingPublisher
	registry  *prometheus.Registry
	scope     scope.Scope
	customer  *domain.Customer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.All()...))

	numbers, err := NewRandomNumbers("SCL")
	require.NoError(t, err)

	f := &fixture{
		clock:     clock.NewFixed(day0),
		stores:    repository.NewDefaultStoreRepository(db),
		customers: repository.NewDefaultCustomerRepository(db),
		publisher: &recordingPublisher{},
		registry:  prometheus.NewRegistry(),
	}
	f.uc = NewDefaultContractUsecase(
		repository.NewDefaultContractRepository(db),
		repository.NewDefaultLedgerRepository(db),
		f.customers,
		f.stores,
		f.clock,
		numbers,
		f.publisher,
		metrics.NewContractMetrics(f.registry),
		Config{NumberRetries: 3, SweepBatch: 100},
	)

	f.scope, f.customer = f.newStore(t)
	return f
}

// newStore onboards a store with one customer and returns the scope of
// its owner.
func (f *fixture) newStore(t *testing.T) (scope.Scope, *domain.Customer) {
	t.Helper()
	ctx := context.Background()
	now := f.clock.Now()

	store := &domain.Store{
		ID:          uuid.NewString(),
		Name:        "Siam Cash",
		OwnerUserID: uuid.NewString(),
		Active:      true,
		InterestPresets: []domain.InterestPreset{
			{Days: 30, RatePercent: money("3")},
			{Days: 60, RatePercent: money("2.5")},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.stores.CreateStore(ctx, store))

	customer := &domain.Customer{
		ID:          uuid.NewString(),
		StoreID:     store.ID,
		FullName:    "Somchai Jaidee",
		PhoneNumber: "0812345678",
		IDNumber:    "1100700000001",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, f.customers.CreateCustomer(ctx, customer))

	return scope.Scope{UserID: store.OwnerUserID, StoreID: store.ID}, customer
}

func (f *fixture) contractInput(customerID, principal string) *contractdto.CreateContractInput {
	return &contractdto.CreateContractInput{
		CustomerID: customerID,
		Item: domain.Item{
			Brand:            "Apple",
			Model:            "iPhone 13",
			Type:             "phone",
			ConditionPercent: 90,
		},
		PawnDetails: contractdto.PawnTermsInput{
			EstimatedPrice:      money(principal).Mul(money("1.2")),
			PawnedPrice:         money(principal),
			InterestRatePercent: money("3"),
			PeriodDays:          30,
		},
		PaymentMethod: domain.PaymentCash,
	}
}

func (f *fixture) create(t *testing.T, principal string) *domain.Contract {
	t.Helper()
	c, err := f.uc.CreateContract(context.Background(), f.scope, f.contractInput(f.customer.ID, principal))
	require.NoError(t, err)
	return c
}

func (f *fixture) record(t *testing.T, contractID string, txType domain.TransactionType, amount string) (*domain.Transaction, error) {
	t.Helper()
	return f.uc.RecordTransaction(context.Background(), f.scope, &contractdto.RecordTransactionInput{
		ContractID:    contractID,
		Type:          txType,
		Amount:        money(amount),
		PaymentMethod: domain.PaymentCash,
	})
}

// waitForEvents polls because events are published from goroutines.
func (f *fixture) waitForEvents(t *testing.T, n int) []domain.ContractEvent {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(f.publisher.snapshot()) >= n
	}, time.Second, 5*time.Millisecond)
	return f.publisher.snapshot()
}
