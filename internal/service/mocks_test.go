package service

import (
	"context"
	"time"

	"seller-wallet-backend/internal/domain"
	"seller-wallet-backend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockSellerRepo
type MockSellerRepo struct {
	mock.Mock
}

func (m *MockSellerRepo) Create(ctx context.Context, seller *domain.Seller) error {
	args := m.Called(ctx, seller)
	return args.Error(0)
}
func (m *MockSellerRepo) GetByID(ctx context.Context, id int32) (*domain.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seller), args.Error(1)
}
func (m *MockSellerRepo) GetByEmail(ctx context.Context, email string) (*domain.Seller, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seller), args.Error(1)
}
func (m *MockSellerRepo) GetForUpdate(ctx context.Context, id int32) (*domain.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seller), args.Error(1)
}
func (m *MockSellerRepo) UpdateCredit(ctx context.Context, id int32, credit decimal.Decimal) error {
	args := m.Called(ctx, id, credit)
	return args.Error(0)
}

// MockCreditRequestRepo
type MockCreditRequestRepo struct {
	mock.Mock
}

func (m *MockCreditRequestRepo) Create(ctx context.Context, req *domain.CreditRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockCreditRequestRepo) GetByID(ctx context.Context, id int32) (*domain.CreditRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditRequest), args.Error(1)
}
func (m *MockCreditRequestRepo) GetForUpdate(ctx context.Context, id int32) (*domain.CreditRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditRequest), args.Error(1)
}
func (m *MockCreditRequestRepo) UpdateStatus(ctx context.Context, id int32, status domain.CreditRequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockCreditRequestRepo) ListStalePending(ctx context.Context, olderThan time.Time) ([]domain.CreditRequest, error) {
	args := m.Called(ctx, olderThan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditRequest), args.Error(1)
}

// MockChargeRequestRepo
type MockChargeRequestRepo struct {
	mock.Mock
}

func (m *MockChargeRequestRepo) Create(ctx context.Context, req *domain.ChargeRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockPhoneNumberRepo
type MockPhoneNumberRepo struct {
	mock.Mock
}

func (m *MockPhoneNumberRepo) AddCharge(ctx context.Context, number string, amount decimal.Decimal) error {
	args := m.Called(ctx, number, amount)
	return args.Error(0)
}

// MockTransactionRepo
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) SumAmounts(ctx context.Context, sellerID int32) (decimal.Decimal, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockTransactionRepo) CountConservationViolations(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockTransactionRepo) ListSellerIDs(ctx context.Context) ([]int32, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendCreditRequestProcessed(ctx context.Context, email, name string, amount decimal.Decimal, status domain.CreditRequestStatus) error {
	args := m.Called(ctx, email, name, amount, status)
	return args.Error(0)
}
func (m *MockEmailService) SendOpsAlert(ctx context.Context, subject, message string) error {
	args := m.Called(ctx, subject, message)
	return args.Error(0)
}

// stubTxManager hands the test's repositories straight to fn, with no
// transactional behavior.
type stubTxManager struct {
	repos repository.Repositories
}

func (s *stubTxManager) WithinTx(ctx context.Context, fn func(r repository.Repositories) error) error {
	return fn(s.repos)
}
