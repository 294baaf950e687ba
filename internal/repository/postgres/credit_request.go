package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"seller-wallet-backend/internal/domain"
	"seller-wallet-backend/internal/repository"
)

type creditRequestRepository struct {
	db querier
}

func NewCreditRequestRepository(db querier) repository.CreditRequestRepository {
	return &creditRequestRepository{db: db}
}

func (r *creditRequestRepository) Create(ctx context.Context, req *domain.CreditRequest) error {
	query := `INSERT INTO credit_requests (seller_id, amount, status, requested_at)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	req.Status = domain.CreditRequestStatusPending
	req.RequestedAt = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, req.SellerID, req.Amount, req.Status, req.RequestedAt).Scan(&req.ID)
}

func (r *creditRequestRepository) GetByID(ctx context.Context, id int32) (*domain.CreditRequest, error) {
	query := `SELECT id, seller_id, amount, status, requested_at FROM credit_requests WHERE id = $1`
	return r.scanRequest(r.db.QueryRowContext(ctx, query, id))
}

func (r *creditRequestRepository) GetForUpdate(ctx context.Context, id int32) (*domain.CreditRequest, error) {
	query := `SELECT id, seller_id, amount, status, requested_at FROM credit_requests WHERE id = $1 FOR UPDATE NOWAIT`
	req, err := r.scanRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapLockErr(err)
	}
	return req, nil
}

func (r *creditRequestRepository) UpdateStatus(ctx context.Context, id int32, status domain.CreditRequestStatus) error {
	query := `UPDATE credit_requests SET status = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *creditRequestRepository) ListStalePending(ctx context.Context, olderThan time.Time) ([]domain.CreditRequest, error) {
	query := `SELECT id, seller_id, amount, status, requested_at FROM credit_requests
	          WHERE status = $1 AND requested_at < $2 ORDER BY requested_at`
	rows, err := r.db.QueryContext(ctx, query, domain.CreditRequestStatusPending, olderThan)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.CreditRequest
	for rows.Next() {
		var req domain.CreditRequest
		if err := rows.Scan(&req.ID, &req.SellerID, &req.Amount, &req.Status, &req.RequestedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

func (r *creditRequestRepository) scanRequest(row *sql.Row) (*domain.CreditRequest, error) {
	req := &domain.CreditRequest{}
	err := row.Scan(&req.ID, &req.SellerID, &req.Amount, &req.Status, &req.RequestedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}
