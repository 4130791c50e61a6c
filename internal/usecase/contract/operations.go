package contract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/lifecycle"
	contractdto "github.com/LavaJover/shvark-pawn-service/internal/usecase/dto/contract"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase/scope"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// RecordTransaction appends one ledger entry and applies its status effect.
// Operations on the same contract run one at a time.
func (uc *DefaultContractUsecase) RecordTransaction(ctx context.Context, s scope.Scope, input *contractdto.RecordTransactionInput) (recorded *domain.Transaction, err error) {
	if input == nil {
		return nil, fmt.Errorf("%w: empty transaction input", domain.ErrInvalidArgument)
	}
	ctx, span := uc.startSpan(ctx, "RecordTransaction",
		attribute.String("contract.id", input.ContractID),
		attribute.String("transaction.type", string(input.Type)),
	)
	started := time.Now()
	defer func() {
		uc.recordCallMetrics(lifecycle.OperationRecordTransaction, started, err)
		endSpan(span, err)
	}()

	if err := validateID("contract", input.ContractID); err != nil {
		return nil, err
	}

	unlock, err := uc.locks.Lock(ctx, input.ContractID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var applied *domain.ContractOperation
	updated, err := uc.ContractRepo.ProcessContractOperation(ctx, input.ContractID, func(current *domain.Contract) (*domain.ContractOperation, error) {
		if err := scope.Guard(s, current.StoreID, "contract", current.ID); err != nil {
			return nil, err
		}
		op, err := lifecycle.Plan(current, lifecycle.Command{
			TransactionID: uuid.NewString(),
			Type:          input.Type,
			Amount:        input.Amount,
			PaymentMethod: input.PaymentMethod,
			ActorID:       s.UserID,
			Reason:        input.Reason,
			Note:          input.Note,
		}, uc.Clock.Now())
		if err != nil {
			return nil, err
		}
		applied = op
		return op, nil
	})
	if err != nil {
		return nil, err
	}

	tx := updated.History[len(updated.History)-1]
	slog.Info("contract transaction recorded",
		"contract_id", updated.ID,
		"type", string(tx.Type),
		"amount", tx.Amount.StringFixed(2),
		"status", string(updated.Status),
	)
	uc.recordOperationMetrics(applied, updated.StoreID)
	uc.publishEvent(updated, lifecycle.OperationRecordTransaction, applied.OldStatus, &tx)
	return &tx, nil
}

// UpdateRemarks replaces the contract remarks without touching the ledger.
func (uc *DefaultContractUsecase) UpdateRemarks(ctx context.Context, s scope.Scope, contractID, remarks string) (updated *domain.Contract, err error) {
	ctx, span := uc.startSpan(ctx, "UpdateRemarks", attribute.String("contract.id", contractID))
	started := time.Now()
	defer func() {
		uc.recordCallMetrics(lifecycle.OperationUpdateRemarks, started, err)
		endSpan(span, err)
	}()

	if err := validateID("contract", contractID); err != nil {
		return nil, err
	}

	unlock, err := uc.locks.Lock(ctx, contractID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return uc.ContractRepo.ProcessContractOperation(ctx, contractID, func(current *domain.Contract) (*domain.ContractOperation, error) {
		if err := scope.Guard(s, current.StoreID, "contract", current.ID); err != nil {
			return nil, err
		}
		return lifecycle.PlanRemarks(current, remarks, uc.Clock.Now()), nil
	})
}

// MarkOverdue moves an active contract past its due date to overdue and
// reports whether it did. Calling it again is a no-op.
func (uc *DefaultContractUsecase) MarkOverdue(ctx context.Context, contractID string) (marked bool, err error) {
	ctx, span := uc.startSpan(ctx, "MarkOverdue", attribute.String("contract.id", contractID))
	started := time.Now()
	defer func() {
		uc.recordCallMetrics(lifecycle.OperationMarkOverdue, started, err)
		endSpan(span, err)
	}()

	if err := validateID("contract", contractID); err != nil {
		return false, err
	}

	unlock, err := uc.locks.Lock(ctx, contractID)
	if err != nil {
		return false, err
	}
	defer unlock()

	var applied *domain.ContractOperation
	updated, err := uc.ContractRepo.ProcessContractOperation(ctx, contractID, func(current *domain.Contract) (*domain.ContractOperation, error) {
		applied = lifecycle.PlanOverdue(current, uc.Clock.Now())
		return applied, nil
	})
	if err != nil {
		return false, err
	}
	if applied == nil {
		return false, nil
	}

	uc.recordOperationMetrics(applied, updated.StoreID)
	uc.publishEvent(updated, lifecycle.OperationMarkOverdue, applied.OldStatus, nil)
	return true, nil
}
