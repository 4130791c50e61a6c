package postgres

import (
	"log"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/config"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func MustInitDB(cfg *config.PawnConfig) *gorm.DB {
	db, err := Open(cfg.PawnDB)
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}
	return db
}

// Open connects to Postgres. Schema changes go through migrations unless
// AutoMigrate is set, which is meant for local development only.
func Open(cfg config.PawnDB) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Silent)
	if cfg.LogQueries {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(cfg.Dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(models.All()...); err != nil {
			return nil, err
		}
	}

	return db, nil
}
