package repository

import (
	"context"
	"time"

	"seller-wallet-backend/internal/domain"

	"github.com/shopspring/decimal"
)

type SellerRepository interface {
	Create(ctx context.Context, seller *domain.Seller) error
	GetByID(ctx context.Context, id int32) (*domain.Seller, error)
	GetByEmail(ctx context.Context, email string) (*domain.Seller, error)
	// GetForUpdate acquires an exclusive row lock without waiting. If another
	// transaction holds the lock it fails with domain.ErrLockContention.
	GetForUpdate(ctx context.Context, id int32) (*domain.Seller, error)
	// UpdateCredit writes the seller's balance. Only the balance mutator may
	// call it, and only while holding the row lock.
	UpdateCredit(ctx context.Context, id int32, credit decimal.Decimal) error
}

type CreditRequestRepository interface {
	Create(ctx context.Context, req *domain.CreditRequest) error
	GetByID(ctx context.Context, id int32) (*domain.CreditRequest, error)
	// GetForUpdate locks the request row without waiting, guarding the
	// Pending check against a concurrent accept/reject.
	GetForUpdate(ctx context.Context, id int32) (*domain.CreditRequest, error)
	UpdateStatus(ctx context.Context, id int32, status domain.CreditRequestStatus) error
	ListStalePending(ctx context.Context, olderThan time.Time) ([]domain.CreditRequest, error)
}

type ChargeRequestRepository interface {
	Create(ctx context.Context, req *domain.ChargeRequest) error
}

type PhoneNumberRepository interface {
	// AddCharge accumulates amount onto the number's total, creating the row
	// on first charge.
	AddCharge(ctx context.Context, number string, amount decimal.Decimal) error
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	SumAmounts(ctx context.Context, sellerID int32) (decimal.Decimal, error)
	// CountConservationViolations counts ledger lines where
	// credit_after - credit_before != amount or the sign does not match the type.
	CountConservationViolations(ctx context.Context) (int64, error)
	// ListSellerIDs returns the ids of all sellers that have ledger lines.
	ListSellerIDs(ctx context.Context) ([]int32, error)
}

// Repositories bundles the repositories bound to one database handle, either
// the shared pool or a single transaction.
type Repositories struct {
	Sellers        SellerRepository
	CreditRequests CreditRequestRepository
	ChargeRequests ChargeRequestRepository
	PhoneNumbers   PhoneNumberRepository
	Transactions   TransactionRepository
}

// TxManager runs fn inside one atomic unit of work. If fn returns an error
// the unit rolls back fully: no row written inside it survives.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(r Repositories) error) error
}
