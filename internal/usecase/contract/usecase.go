package contract

import (
	"context"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/metrics"
	contractdto "github.com/LavaJover/shvark-pawn-service/internal/usecase/dto/contract"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase/scope"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/LavaJover/shvark-pawn-service/internal/usecase/contract"

type ContractUsecase interface {
	CreateContract(ctx context.Context, s scope.Scope, input *contractdto.CreateContractInput) (*domain.Contract, error)
	RecordTransaction(ctx context.Context, s scope.Scope, input *contractdto.RecordTransactionInput) (*domain.Transaction, error)
	UpdateRemarks(ctx context.Context, s scope.Scope, contractID, remarks string) (*domain.Contract, error)

	GetContract(ctx context.Context, s scope.Scope, contractID string) (*domain.Contract, error)
	ListContracts(ctx context.Context, s scope.Scope, filter domain.ContractFilter) ([]*domain.Contract, int64, error)
	History(ctx context.Context, s scope.Scope, contractID string) ([]domain.Transaction, error)

	MarkOverdue(ctx context.Context, contractID string) (bool, error)
	SweepOverdue(ctx context.Context) (int, error)
}

type Config struct {
	NumberRetries int
	SweepBatch    int
}

type DefaultContractUsecase struct {
	ContractRepo domain.ContractRepository
	LedgerRepo   domain.LedgerRepository
	CustomerRepo domain.CustomerRepository
	StoreRepo    domain.StoreRepository
	Clock        domain.Clock
	Numbers      NumberGenerator
	Publisher    domain.ContractEventPublisher
	Metrics      *metrics.ContractMetrics
	Config       Config

	locks  *keyedLocks
	tracer trace.Tracer
}

func NewDefaultContractUsecase(
	contractRepo domain.ContractRepository,
	ledgerRepo domain.LedgerRepository,
	customerRepo domain.CustomerRepository,
	storeRepo domain.StoreRepository,
	clock domain.Clock,
	numbers NumberGenerator,
	publisher domain.ContractEventPublisher,
	contractMetrics *metrics.ContractMetrics,
	cfg Config) *DefaultContractUsecase {

	if cfg.NumberRetries <= 0 {
		cfg.NumberRetries = 5
	}
	if cfg.SweepBatch <= 0 {
		cfg.SweepBatch = 500
	}

	return &DefaultContractUsecase{
		ContractRepo: contractRepo,
		LedgerRepo:   ledgerRepo,
		CustomerRepo: customerRepo,
		StoreRepo:    storeRepo,
		Clock:        clock,
		Numbers:      numbers,
		Publisher:    publisher,
		Metrics:      contractMetrics,
		Config:       cfg,
		locks:        newKeyedLocks(),
		tracer:       otel.Tracer(tracerName),
	}
}
