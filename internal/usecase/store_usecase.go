package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	storedto "github.com/LavaJover/shvark-pawn-service/internal/usecase/dto/store"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase/scope"
	"github.com/google/uuid"
)

type StoreUsecase interface {
	CreateStore(ctx context.Context, ownerUserID string, input *storedto.StoreInput) (*domain.Store, error)
	GetStore(ctx context.Context, s scope.Scope) (*domain.Store, error)
	UpdateStore(ctx context.Context, s scope.Scope, input *storedto.StoreInput) (*domain.Store, error)
	DeactivateStore(ctx context.Context, s scope.Scope) error
}

type DefaultStoreUsecase struct {
	storeRepo domain.StoreRepository
	clock     domain.Clock
}

func NewDefaultStoreUsecase(storeRepo domain.StoreRepository, clock domain.Clock) *DefaultStoreUsecase {
	return &DefaultStoreUsecase{
		storeRepo: storeRepo,
		clock:     clock,
	}
}

// CreateStore onboards a new shop owned by ownerUserID.
func (uc *DefaultStoreUsecase) CreateStore(ctx context.Context, ownerUserID string, input *storedto.StoreInput) (*domain.Store, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return nil, fmt.Errorf("%w: owner user id is required", domain.ErrInvalidArgument)
	}
	presets, err := validateStoreInput(input)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	store := &domain.Store{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(input.Name),
		Phone:           strings.TrimSpace(input.Phone),
		TaxID:           strings.TrimSpace(input.TaxID),
		Address:         input.Address,
		InterestPresets: presets,
		OwnerUserID:     ownerUserID,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.storeRepo.CreateStore(ctx, store); err != nil {
		return nil, err
	}
	slog.Info("store created", "store_id", store.ID, "owner", ownerUserID)
	return store, nil
}

func (uc *DefaultStoreUsecase) GetStore(ctx context.Context, s scope.Scope) (*domain.Store, error) {
	if err := validateID("store", s.StoreID); err != nil {
		return nil, err
	}
	return uc.storeRepo.GetStoreByID(ctx, s.StoreID)
}

func (uc *DefaultStoreUsecase) UpdateStore(ctx context.Context, s scope.Scope, input *storedto.StoreInput) (*domain.Store, error) {
	presets, err := validateStoreInput(input)
	if err != nil {
		return nil, err
	}
	store, err := uc.GetStore(ctx, s)
	if err != nil {
		return nil, err
	}

	store.Name = strings.TrimSpace(input.Name)
	store.Phone = strings.TrimSpace(input.Phone)
	store.TaxID = strings.TrimSpace(input.TaxID)
	store.Address = input.Address
	store.InterestPresets = presets
	store.UpdatedAt = uc.clock.Now()

	if err := uc.storeRepo.UpdateStore(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// DeactivateStore stops the store from opening new contracts. Stores are
// never deleted.
func (uc *DefaultStoreUsecase) DeactivateStore(ctx context.Context, s scope.Scope) error {
	if err := validateID("store", s.StoreID); err != nil {
		return err
	}
	if err := uc.storeRepo.SetStoreActive(ctx, s.StoreID, false, uc.clock.Now()); err != nil {
		return err
	}
	slog.Info("store deactivated", "store_id", s.StoreID, "user_id", s.UserID)
	return nil
}

// validateStoreInput returns the presets ordered by period.
func validateStoreInput(input *storedto.StoreInput) ([]domain.InterestPreset, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: empty store input", domain.ErrInvalidArgument)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: store name is required", domain.ErrInvalidArgument)
	}

	presets := append([]domain.InterestPreset(nil), input.InterestPresets...)
	seen := make(map[int]struct{}, len(presets))
	for _, p := range presets {
		if p.Days <= 0 || !p.RatePercent.IsPositive() {
			return nil, fmt.Errorf("%w: preset %d days at %s%% is invalid", domain.ErrInvalidArgument, p.Days, p.RatePercent)
		}
		if _, dup := seen[p.Days]; dup {
			return nil, fmt.Errorf("%w: duplicate preset for %d days", domain.ErrInvalidArgument, p.Days)
		}
		seen[p.Days] = struct{}{}
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].Days < presets[j].Days })
	return presets, nil
}
