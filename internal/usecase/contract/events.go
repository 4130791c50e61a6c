package contract

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
)

const publishTimeout = 10 * time.Second

// publishEvent emits the event after commit. A failed publish is logged and
// never affects the committed operation.
func (uc *DefaultContractUsecase) publishEvent(contract *domain.Contract, operation string, oldStatus domain.ContractStatus, tx *domain.Transaction) {
	if uc.Publisher == nil {
		return
	}

	event := domain.ContractEvent{
		ContractID:     contract.ID,
		ContractNumber: contract.ContractNumber,
		StoreID:        contract.StoreID,
		Operation:      operation,
		OldStatus:      string(oldStatus),
		NewStatus:      string(contract.Status),
		OccurredAt:     contract.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if tx != nil {
		event.TransactionID = tx.ID
		event.Amount = tx.Amount.StringFixed(2)
	}

	go func(event domain.ContractEvent) {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := uc.Publisher.PublishContractEvent(ctx, event); err != nil {
			slog.Error("failed to publish contract event",
				"contract_id", event.ContractID,
				"operation", event.Operation,
				"error", err.Error(),
			)
		}
	}(event)
}
