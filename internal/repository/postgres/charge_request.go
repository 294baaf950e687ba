package postgres

import (
	"context"
	"time"

	"seller-wallet-backend/internal/domain"
	"seller-wallet-backend/internal/repository"
)

type chargeRequestRepository struct {
	db querier
}

func NewChargeRequestRepository(db querier) repository.ChargeRequestRepository {
	return &chargeRequestRepository{db: db}
}

func (r *chargeRequestRepository) Create(ctx context.Context, req *domain.ChargeRequest) error {
	query := `INSERT INTO charge_requests (seller_id, phone_number, amount, requested_at)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	req.RequestedAt = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, req.SellerID, req.PhoneNumber, req.Amount, req.RequestedAt).Scan(&req.ID)
}
