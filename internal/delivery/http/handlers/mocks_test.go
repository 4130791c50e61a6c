package handlers

import (
	"context"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	contractdto "github.com/LavaJover/shvark-pawn-service/internal/usecase/dto/contract"
	customerdto "github.com/LavaJover/shvark-pawn-service/internal/usecase/dto/customer"
	storedto "github.com/LavaJover/shvark-pawn-service/internal/usecase/dto/store"
	"github.com/LavaJover/shvark-pawn-service/internal/usecase/scope"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockContractUsecase struct {
	mock.Mock
}

func (m *MockContractUsecase) CreateContract(ctx context.Context, s scope.Scope, input *contractdto.CreateContractInput) (*domain.Contract, error) {
	args := m.Called(ctx, s, input)
	c, _ := args.Get(0).(*domain.Contract)
	return c, args.Error(1)
}
func (m *MockContractUsecase) RecordTransaction(ctx context.Context, s scope.Scope, input *contractdto.RecordTransactionInput) (*domain.Transaction, error) {
	args := m.Called(ctx, s, input)
	tx, _ := args.Get(0).(*domain.Transaction)
	return tx, args.Error(1)
}
func (m *MockContractUsecase) UpdateRemarks(ctx context.Context, s scope.Scope, contractID, remarks string) (*domain.Contract, error) {
	args := m.Called(ctx, s, contractID, remarks)
	c, _ := args.Get(0).(*domain.Contract)
	return c, args.Error(1)
}
func (m *MockContractUsecase) GetContract(ctx context.Context, s scope.Scope, contractID string) (*domain.Contract, error) {
	args := m.Called(ctx, s, contractID)
	c, _ := args.Get(0).(*domain.Contract)
	return c, args.Error(1)
}
func (m *MockContractUsecase) ListContracts(ctx context.Context, s scope.Scope, filter domain.ContractFilter) ([]*domain.Contract, int64, error) {
	args := m.Called(ctx, s, filter)
	list, _ := args.Get(0).([]*domain.Contract)
	return list, args.Get(1).(int64), args.Error(2)
}
func (m *MockContractUsecase) History(ctx context.Context, s scope.Scope, contractID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, s, contractID)
	txs, _ := args.Get(0).([]domain.Transaction)
	return txs, args.Error(1)
}
func (m *MockContractUsecase) MarkOverdue(ctx context.Context, contractID string) (bool, error) {
	args := m.Called(ctx, contractID)
	return args.Bool(0), args.Error(1)
}
func (m *MockContractUsecase) SweepOverdue(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockCustomerUsecase struct {
	mock.Mock
}

func (m *MockCustomerUsecase) CreateCustomer(ctx context.Context, s scope.Scope, input *customerdto.CreateCustomerInput) (*domain.Customer, error) {
	args := m.Called(ctx, s, input)
	c, _ := args.Get(0).(*domain.Customer)
	return c, args.Error(1)
}
func (m *MockCustomerUsecase) GetCustomer(ctx context.Context, s scope.Scope, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, s, customerID)
	c, _ := args.Get(0).(*domain.Customer)
	return c, args.Error(1)
}
func (m *MockCustomerUsecase) SearchCustomers(ctx context.Context, s scope.Scope, query string, limit int) ([]*domain.Customer, error) {
	args := m.Called(ctx, s, query, limit)
	list, _ := args.Get(0).([]*domain.Customer)
	return list, args.Error(1)
}
func (m *MockCustomerUsecase) UpdateCustomerContact(ctx context.Context, s scope.Scope, input *customerdto.UpdateContactInput) (*domain.Customer, error) {
	args := m.Called(ctx, s, input)
	c, _ := args.Get(0).(*domain.Customer)
	return c, args.Error(1)
}

type MockStoreUsecase struct {
	mock.Mock
}

func (m *MockStoreUsecase) CreateStore(ctx context.Context, ownerUserID string, input *storedto.StoreInput) (*domain.Store, error) {
	args := m.Called(ctx, ownerUserID, input)
	s, _ := args.Get(0).(*domain.Store)
	return s, args.Error(1)
}
func (m *MockStoreUsecase) GetStore(ctx context.Context, s scope.Scope) (*domain.Store, error) {
	args := m.Called(ctx, s)
	store, _ := args.Get(0).(*domain.Store)
	return store, args.Error(1)
}
func (m *MockStoreUsecase) UpdateStore(ctx context.Context, s scope.Scope, input *storedto.StoreInput) (*domain.Store, error) {
	args := m.Called(ctx, s, input)
	store, _ := args.Get(0).(*domain.Store)
	return store, args.Error(1)
}
func (m *MockStoreUsecase) DeactivateStore(ctx context.Context, s scope.Scope) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockStatsUsecase struct {
	mock.Mock
}

func (m *MockStatsUsecase) DashboardStats(ctx context.Context, s scope.Scope) (*domain.DashboardStats, error) {
	args := m.Called(ctx, s)
	stats, _ := args.Get(0).(*domain.DashboardStats)
	return stats, args.Error(1)
}
func (m *MockStatsUsecase) CountsByStatus(ctx context.Context, s scope.Scope, period domain.DateRange) (map[domain.ContractStatus]int64, error) {
	args := m.Called(ctx, s, period)
	counts, _ := args.Get(0).(map[domain.ContractStatus]int64)
	return counts, args.Error(1)
}
func (m *MockStatsUsecase) TotalValue(ctx context.Context, s scope.Scope, statuses []domain.ContractStatus) (decimal.Decimal, error) {
	args := m.Called(ctx, s, statuses)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockStatsUsecase) CategoryBreakdown(ctx context.Context, s scope.Scope, period domain.DateRange) ([]domain.CategoryStat, error) {
	args := m.Called(ctx, s, period)
	stats, _ := args.Get(0).([]domain.CategoryStat)
	return stats, args.Error(1)
}
func (m *MockStatsUsecase) TransactionActivity(ctx context.Context, s scope.Scope, days int) ([]domain.DailyActivity, error) {
	args := m.Called(ctx, s, days)
	activity, _ := args.Get(0).([]domain.DailyActivity)
	return activity, args.Error(1)
}
