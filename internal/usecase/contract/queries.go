package contract

import (
	"context"
	"fmt"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase/scope"
)

func (uc *DefaultContractUsecase) GetContract(ctx context.Context, s scope.Scope, contractID string) (*domain.Contract, error) {
	if err := validateID("contract", contractID); err != nil {
		return nil, err
	}
	contract, err := uc.ContractRepo.GetContractByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if err := scope.Guard(s, contract.StoreID, "contract", contract.ID); err != nil {
		return nil, err
	}
	return contract, nil
}

// ListContracts returns one page of the caller's contracts and the total
// number matching the filter.
func (uc *DefaultContractUsecase) ListContracts(ctx context.Context, s scope.Scope, filter domain.ContractFilter) ([]*domain.Contract, int64, error) {
	if err := validateID("store", s.StoreID); err != nil {
		return nil, 0, err
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidArgument, filter.Status)
	}
	if filter.CustomerID != "" {
		if err := validateID("customer", filter.CustomerID); err != nil {
			return nil, 0, err
		}
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, 0, fmt.Errorf("%w: limit and offset must not be negative", domain.ErrInvalidArgument)
	}
	return uc.ContractRepo.ListContracts(ctx, s.StoreID, filter)
}

// History returns the ledger of a contract, oldest entry first.
func (uc *DefaultContractUsecase) History(ctx context.Context, s scope.Scope, contractID string) ([]domain.Transaction, error) {
	if _, err := uc.GetContract(ctx, s, contractID); err != nil {
		return nil, err
	}
	return uc.LedgerRepo.History(ctx, contractID)
}
