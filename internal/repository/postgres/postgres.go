package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"seller-wallet-backend/internal/domain"
	"seller-wallet-backend/internal/logger"
	"seller-wallet-backend/internal/repository"

	"github.com/lib/pq"
)

// pqLockNotAvailable is raised by FOR UPDATE NOWAIT when the row is held.
const pqLockNotAvailable = "55P03"

// querier is satisfied by both *sql.DB and *sql.Tx, so every repository can
// run against the pool or inside an atomic unit.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.SellerRepository
	repository.CreditRequestRepository
	repository.ChargeRequestRepository
	repository.PhoneNumberRepository
	repository.TransactionRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		SellerRepository:        NewSellerRepository(db),
		CreditRequestRepository: NewCreditRequestRepository(db),
		ChargeRequestRepository: NewChargeRequestRepository(db),
		PhoneNumberRepository:   NewPhoneNumberRepository(db),
		TransactionRepository:   NewTransactionRepository(db),
	}
}

// WithinTx runs fn inside one database transaction. The repositories handed
// to fn are bound to that transaction; any error rolls the whole unit back.
func (s *Store) WithinTx(ctx context.Context, fn func(r repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	repos := repository.Repositories{
		Sellers:        NewSellerRepository(tx),
		CreditRequests: NewCreditRequestRepository(tx),
		ChargeRequests: NewChargeRequestRepository(tx),
		PhoneNumbers:   NewPhoneNumberRepository(tx),
		Transactions:   NewTransactionRepository(tx),
	}

	if err := fn(repos); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("Transaction rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// mapLockErr translates the postgres lock_not_available failure raised by
// NOWAIT into the domain contention error.
func mapLockErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqLockNotAvailable {
		return domain.ErrLockContention
	}
	return err
}
