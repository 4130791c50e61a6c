package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	customerdto "github.com/LavaJover/shvark-pawn-service/internal/usecase/dto/customer"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase/scope"
	"github.com/google/uuid"
)

const (
	DefaultCustomerSearchLimit = 20
	MaxCustomerSearchLimit     = 100
)

type CustomerUsecase interface {
	CreateCustomer(ctx context.Context, s scope.Scope, input *customerdto.CreateCustomerInput) (*domain.Customer, error)
	GetCustomer(ctx context.Context, s scope.Scope, customerID string) (*domain.Customer, error)
	SearchCustomers(ctx context.Context, s scope.Scope, query string, limit int) ([]*domain.Customer, error)
	UpdateCustomerContact(ctx context.Context, s scope.Scope, input *customerdto.UpdateContactInput) (*domain.Customer, error)
}

type DefaultCustomerUsecase struct {
	customerRepo domain.CustomerRepository
	clock        domain.Clock
}

func NewDefaultCustomerUsecase(customerRepo domain.CustomerRepository, clock domain.Clock) *DefaultCustomerUsecase {
	return &DefaultCustomerUsecase{
		customerRepo: customerRepo,
		clock:        clock,
	}
}

func (uc *DefaultCustomerUsecase) CreateCustomer(ctx context.Context, s scope.Scope, input *customerdto.CreateCustomerInput) (*domain.Customer, error) {
	if err := validateID("store", s.StoreID); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, fmt.Errorf("%w: empty customer input", domain.ErrInvalidArgument)
	}
	fullName := strings.TrimSpace(input.FullName)
	phone := strings.TrimSpace(input.PhoneNumber)
	if fullName == "" {
		return nil, fmt.Errorf("%w: full name is required", domain.ErrInvalidArgument)
	}
	if phone == "" {
		return nil, fmt.Errorf("%w: phone number is required", domain.ErrInvalidArgument)
	}

	now := uc.clock.Now()
	customer := &domain.Customer{
		ID:          uuid.NewString(),
		StoreID:     s.StoreID,
		FullName:    fullName,
		PhoneNumber: phone,
		IDNumber:    strings.TrimSpace(input.IDNumber),
		Address:     input.Address,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.customerRepo.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	slog.Info("customer created", "customer_id", customer.ID, "store_id", customer.StoreID)
	return customer, nil
}

func (uc *DefaultCustomerUsecase) GetCustomer(ctx context.Context, s scope.Scope, customerID string) (*domain.Customer, error) {
	if err := validateID("customer", customerID); err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := scope.Guard(s, customer.StoreID, "customer", customer.ID); err != nil {
		return nil, err
	}
	return customer, nil
}

// SearchCustomers matches query as a case-insensitive substring of phone,
// national id or full name within the caller's store.
func (uc *DefaultCustomerUsecase) SearchCustomers(ctx context.Context, s scope.Scope, query string, limit int) ([]*domain.Customer, error) {
	if err := validateID("store", s.StoreID); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = DefaultCustomerSearchLimit
	case limit > MaxCustomerSearchLimit:
		limit = MaxCustomerSearchLimit
	}
	return uc.customerRepo.SearchCustomers(ctx, s.StoreID, strings.TrimSpace(query), limit)
}

// UpdateCustomerContact edits phone and address, the only customer fields
// that may change after creation.
func (uc *DefaultCustomerUsecase) UpdateCustomerContact(ctx context.Context, s scope.Scope, input *customerdto.UpdateContactInput) (*domain.Customer, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: empty contact input", domain.ErrInvalidArgument)
	}
	if _, err := uc.GetCustomer(ctx, s, input.CustomerID); err != nil {
		return nil, err
	}

	contact := domain.CustomerContact{Address: input.Address}
	if input.PhoneNumber != nil {
		phone := strings.TrimSpace(*input.PhoneNumber)
		if phone == "" {
			return nil, fmt.Errorf("%w: phone number must not be empty", domain.ErrInvalidArgument)
		}
		contact.PhoneNumber = &phone
	}
	if contact.PhoneNumber == nil && contact.Address == nil {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrInvalidArgument)
	}

	if err := uc.customerRepo.UpdateCustomerContact(ctx, input.CustomerID, contact, uc.clock.Now()); err != nil {
		return nil, err
	}
	return uc.customerRepo.GetCustomerByID(ctx, input.CustomerID)
}
