package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/clock"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/models"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase/contract"
	contractdto "github.com/LavaJover/shvark-pawn-service/internal/usecase/dto/contract"
	storedto "github.com/LavaJover/shvark-pawn-service/internal/usecase/dto/store"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase/scope"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var bangkok = mustLocation("Asia/Bangkok")

var testNow = time.Date(2024, time.June, 10, 14, 30, 0, 0, bangkok)

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

type env struct {
	clock     *clock.Fixed
	customers *DefaultCustomerUsecase
	stores    *DefaultStoreUsecase
	stats     *DefaultStatsUsecase
	contracts *contract.DefaultContractUsecase
}

func newEnv(t *testing.T) *env {
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

	fixed := clock.NewFixed(testNow)
	customerRepo := repository.NewDefaultCustomerRepository(db)
	storeRepo := repository.NewDefaultStoreRepository(db)

	numbers, err := contract.NewRandomNumbers("SCL")
	require.NoError(t, err)

	return &env{
		clock:     fixed,
		customers: NewDefaultCustomerUsecase(customerRepo, fixed),
		stores:    NewDefaultStoreUsecase(storeRepo, fixed),
		stats:     NewDefaultStatsUsecase(repository.NewDefaultStatsRepository(db), fixed),
		contracts: contract.NewDefaultContractUsecase(
			repository.NewDefaultContractRepository(db),
			repository.NewDefaultLedgerRepository(db),
			customerRepo,
			storeRepo,
			fixed,
			numbers,
			nil,
			nil,
			contract.Config{},
		),
	}
}

// onboard creates a store and returns its owner's scope.
func (e *env) onboard(t *testing.T) scope.Scope {
	t.Helper()
	owner := uuid.NewString()
	store, err := e.stores.CreateStore(context.Background(), owner, &storedto.StoreInput{
		Name:            "Siam Cash",
		InterestPresets: []domain.InterestPreset{{Days: 30, RatePercent: money("3")}},
	})
	require.NoError(t, err)
	return scope.Scope{UserID: owner, StoreID: store.ID}
}

func (e *env) pawn(t *testing.T, s scope.Scope, customerID, itemType, principal string) *domain.Contract {
	t.Helper()
	c, err := e.contracts.CreateContract(context.Background(), s, &contractdto.CreateContractInput{
		CustomerID: customerID,
		Item:       domain.Item{Brand: "Generic", Type: itemType, ConditionPercent: 80},
		PawnDetails: contractdto.PawnTermsInput{
			EstimatedPrice: money(principal).Add(money("1000")),
			PawnedPrice:    money(principal),
			PeriodDays:     30,
		},
		PaymentMethod: domain.PaymentCash,
	})
	require.NoError(t, err)
	return c
}
