package postgres

import (
	"context"
	"time"

	"seller-wallet-backend/internal/domain"
	"seller-wallet-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type transactionRepository struct {
	db querier
}

func NewTransactionRepository(db querier) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `INSERT INTO transactions (seller_id, amount, credit_before, credit_after, type, detail_kind, detail_id, transaction_time)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	tx.TransactionTime = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query,
		tx.SellerID, tx.Amount, tx.CreditBefore, tx.CreditAfter, tx.Type,
		tx.Detail.Kind, tx.Detail.ID, tx.TransactionTime).Scan(&tx.ID)
}

func (r *transactionRepository) SumAmounts(ctx context.Context, sellerID int32) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE seller_id = $1`
	err := r.db.QueryRowContext(ctx, query, sellerID).Scan(&sum)
	return sum, err
}

func (r *transactionRepository) CountConservationViolations(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT count(*) FROM transactions
	          WHERE credit_after - credit_before <> amount
	             OR (type = 'Deposit' AND amount <= 0)
	             OR (type = 'Withdraw' AND amount >= 0)`
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}

func (r *transactionRepository) ListSellerIDs(ctx context.Context) ([]int32, error) {
	query := `SELECT DISTINCT seller_id FROM transactions ORDER BY seller_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
