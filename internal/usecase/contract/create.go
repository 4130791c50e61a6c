package contract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/lifecycle"
	contractdto "github.com/LavaJover/shvark-pawn-service/internal/usecase/dto/contract"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase/scope"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

const operationCreateContract = "create_contract"

// CreateContract opens a new pawn contract for a customer of the caller's
// store and records the pledge as the first ledger entry.
func (uc *DefaultContractUsecase) CreateContract(ctx context.Context, s scope.Scope, input *contractdto.CreateContractInput) (created *domain.Contract, err error) {
	ctx, span := uc.startSpan(ctx, "CreateContract", attribute.String("store.id", s.StoreID))
	started := time.Now()
	defer func() {
		uc.recordCallMetrics(operationCreateContract, started, err)
		endSpan(span, err)
	}()

	if input == nil {
		return nil, fmt.Errorf("%w: empty contract input", domain.ErrInvalidArgument)
	}
	if err := validateID("store", s.StoreID); err != nil {
		return nil, err
	}
	if err := validateID("customer", input.CustomerID); err != nil {
		return nil, err
	}

	customer, err := uc.CustomerRepo.GetCustomerByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if err := scope.Guard(s, customer.StoreID, "customer", customer.ID); err != nil {
		return nil, err
	}

	store, err := uc.StoreRepo.GetStoreByID(ctx, s.StoreID)
	if err != nil {
		return nil, err
	}
	if !store.Active {
		return nil, fmt.Errorf("%w: store %s is deactivated", domain.ErrIllegalTransition, store.ID)
	}

	terms, err := resolveTerms(store, input.PawnDetails)
	if err != nil {
		return nil, err
	}

	now := uc.Clock.Now()
	for attempt := 1; ; attempt++ {
		contract, err := lifecycle.NewContract(lifecycle.NewContractInput{
			ContractID:     uuid.NewString(),
			ContractNumber: uc.Numbers.Next(now),
			PledgeID:       uuid.NewString(),
			StoreID:        store.ID,
			CustomerID:     customer.ID,
			ActorID:        s.UserID,
			Item:           input.Item,
			PawnDetails:    terms,
			StartDate:      input.StartDate,
			PaymentMethod:  input.PaymentMethod,
			Remarks:        input.Remarks,
		}, now)
		if err != nil {
			return nil, err
		}

		err = uc.ContractRepo.CreateContract(ctx, contract)
		if err == nil {
			slog.Info("contract created",
				"contract_id", contract.ID,
				"contract_number", contract.ContractNumber,
				"store_id", contract.StoreID,
			)
			uc.recordContractCreatedMetrics(contract)
			uc.publishEvent(contract, operationCreateContract, "", &contract.History[0])
			return contract, nil
		}
		if !errors.Is(err, domain.ErrDuplicateContractNumber) || attempt >= uc.Config.NumberRetries {
			return nil, err
		}
		uc.recordNumberRetryMetrics()
		slog.Warn("contract number collision, retrying",
			"contract_number", contract.ContractNumber,
			"attempt", attempt,
		)
	}
}

// resolveTerms fills a missing interest rate from the store preset for the
// requested period.
func resolveTerms(store *domain.Store, in contractdto.PawnTermsInput) (domain.PawnDetails, error) {
	terms := domain.PawnDetails{
		EstimatedPrice:      in.EstimatedPrice,
		PawnedPrice:         in.PawnedPrice,
		InterestRatePercent: in.InterestRatePercent,
		PeriodDays:          in.PeriodDays,
	}
	if !terms.InterestRatePercent.Equal(decimal.Zero) {
		return terms, nil
	}
	rate, ok := store.PresetRate(in.PeriodDays)
	if !ok {
		return domain.PawnDetails{}, fmt.Errorf("%w: no interest rate given and no preset for %d days", domain.ErrInvalidArgument, in.PeriodDays)
	}
	terms.InterestRatePercent = rate
	return terms, nil
}
