package contract

import (
	"errors"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
)

func (uc *DefaultContractUsecase) recordContractCreatedMetrics(contract *domain.Contract) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordContractCreated(
		contract.StoreID,
		contract.Item.Type,
		contract.PawnDetails.PawnedPrice.InexactFloat64(),
	)
}

func (uc *DefaultContractUsecase) recordNumberRetryMetrics() {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordContractNumberRetry()
}

func (uc *DefaultContractUsecase) recordOperationMetrics(op *domain.ContractOperation, storeID string) {
	if uc.Metrics == nil || op == nil {
		return
	}
	if tx := op.Transaction; tx != nil {
		uc.Metrics.RecordTransaction(storeID, string(tx.Type), tx.Amount.InexactFloat64())
	}
	uc.Metrics.RecordStatusTransition(string(op.OldStatus), string(op.NewStatus))
}

func (uc *DefaultContractUsecase) recordSweepMetrics(marked int, started time.Time) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordSweep(marked, time.Since(started).Seconds())
}

// recordCallMetrics runs deferred at the end of every public operation.
func (uc *DefaultContractUsecase) recordCallMetrics(operation string, started time.Time, err error) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordOperationDuration(operation, time.Since(started).Seconds())
	if err != nil {
		uc.Metrics.RecordError(operation, errorType(err))
	}
}

func errorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, domain.ErrIllegalTransition):
		return "illegal_transition"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrStorageFailure):
		return "storage_failure"
	}
	return "unknown"
}
