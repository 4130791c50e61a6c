package setup

import (
	"fmt"

	"github.com/LavaJover/shvark-pawn-service/internal/usecase"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase/contract"
)

type UseCases struct {
	ContractUsecase contract.ContractUsecase
	CustomerUsecase usecase.CustomerUsecase
	StoreUsecase    usecase.StoreUsecase
	StatsUsecase    usecase.StatsUsecase
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
	cfg := deps.Config.Contracts
	repos := deps.Repositories

	numbers, err := contract.NewRandomNumbers(cfg.NumberPrefix)
	if err != nil {
		return nil, fmt.Errorf("contract numbers: %w", err)
	}

	contractUsecase := contract.NewDefaultContractUsecase(
		repos.ContractRepo,
		repos.LedgerRepo,
		repos.CustomerRepo,
		repos.StoreRepo,
		deps.Clock,
		numbers,
		deps.EventPublisher(),
		deps.Metrics,
		contract.Config{
			NumberRetries: cfg.NumberRetries,
			SweepBatch:    cfg.SweepBatch,
		},
	)

	return &UseCases{
		ContractUsecase: contractUsecase,
		CustomerUsecase: usecase.NewDefaultCustomerUsecase(repos.CustomerRepo, deps.Clock),
		StoreUsecase:    usecase.NewDefaultStoreUsecase(repos.StoreRepo, deps.Clock),
		StatsUsecase:    usecase.NewDefaultStatsUsecase(repos.StatsRepo, deps.Clock),
	}, nil
}
