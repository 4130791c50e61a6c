package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/models"
	"github.com/LavaJover/shvark-pawn-service/internal/lifecycle"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testNow = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func buildContract(t *testing.T, storeID string, mutate ...func(in *lifecycle.NewContractInput)) *domain.Contract {
	t.Helper()

	in := lifecycle.NewContractInput{
		ContractID:     uuid.NewString(),
		ContractNumber: "SCL240301" + uuid.NewString()[:6],
		PledgeID:       uuid.NewString(),
		StoreID:        storeID,
		CustomerID:     uuid.NewString(),
		ActorID:        "user-1",
		Item: domain.Item{
			Brand:            "Apple",
			Model:            "iPhone 13",
			Type:             "phone",
			ConditionPercent: 90,
			Images:           []string{"img/1.jpg", "img/2.jpg"},
		},
		PawnDetails: domain.PawnDetails{
			EstimatedPrice:      money("30000"),
			PawnedPrice:         money("25000"),
			InterestRatePercent: money("3"),
			PeriodDays:          30,
		},
		PaymentMethod: domain.PaymentCash,
	}
	for _, m := range mutate {
		m(&in)
	}

	c, err := lifecycle.NewContract(in, testNow)
	require.NoError(t, err)
	return c
}
