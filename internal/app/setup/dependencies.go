package setup

import (
	"context"
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-pawn-service/internal/config"
	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/clock"
	publisher "github.com/LavaJover/shvark-pawn-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config         *config.PawnConfig
	DB             *gorm.DB
	Clock          *clock.ZonedClock
	KafkaPublisher *publisher.DefaultKafkaPublisher
	Registry       *prometheus.Registry
	Metrics        *metrics.ContractMetrics
	Repositories   *Repositories
}

type Repositories struct {
	ContractRepo domain.ContractRepository
	LedgerRepo   domain.LedgerRepository
	CustomerRepo domain.CustomerRepository
	StoreRepo    domain.StoreRepository
	StatsRepo    domain.StatsRepository
}

func InitializeDependencies(cfg *config.PawnConfig) (*Dependencies, error) {
	zonedClock, err := clock.New(cfg.Clock.Timezone)
	if err != nil {
		return nil, fmt.Errorf("clock: %w", err)
	}

	db := postgres.MustInitDB(cfg)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps := &Dependencies{
		Config:   cfg,
		DB:       db,
		Clock:    zonedClock,
		Registry: registry,
		Metrics:  metrics.NewContractMetrics(registry),
		Repositories: &Repositories{
			ContractRepo: repository.NewDefaultContractRepository(db),
			LedgerRepo:   repository.NewDefaultLedgerRepository(db),
			CustomerRepo: repository.NewDefaultCustomerRepository(db),
			StoreRepo:    repository.NewDefaultStoreRepository(db),
			StatsRepo:    repository.NewDefaultStatsRepository(db),
		},
	}

	if cfg.KafkaService.Enabled {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
		deps.KafkaPublisher = publisher.NewDefaultKafkaPublisher(brokers, cfg.KafkaService.Topic)
	}

	return deps, nil
}

// EventPublisher returns nil when Kafka is disabled so that the usecase
// skips publishing.
func (d *Dependencies) EventPublisher() domain.ContractEventPublisher {
	if d.KafkaPublisher == nil {
		return nil
	}
	return d.KafkaPublisher
}

// Ping checks that the database answers.
func (d *Dependencies) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Dependencies) Close() error {
	var errs []error
	if d.KafkaPublisher != nil {
		errs = append(errs, d.KafkaPublisher.Close())
	}
	if sqlDB, err := d.DB.DB(); err == nil {
		errs = append(errs, sqlDB.Close())
	}
	return errors.Join(errs...)
}
