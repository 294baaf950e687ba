package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"seller-wallet-backend/internal/domain"
	"seller-wallet-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type sellerRepository struct {
	db querier
}

func NewSellerRepository(db querier) repository.SellerRepository {
	return &sellerRepository{db: db}
}

const sellerColumns = `id, email, name, COALESCE(about, ''), password_hash, credit, is_active, is_staff, created_on`

func (r *sellerRepository) Create(ctx context.Context, s *domain.Seller) error {
	query := `INSERT INTO sellers (email, name, about, password_hash, credit, is_active, is_staff, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	s.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, s.Email, s.Name, s.About, s.PasswordHash, s.Credit, s.IsActive, s.IsStaff, s.CreatedOn).Scan(&s.ID)
}

func (r *sellerRepository) GetByID(ctx context.Context, id int32) (*domain.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE id = $1`
	return r.scanSeller(r.db.QueryRowContext(ctx, query, id))
}

func (r *sellerRepository) GetByEmail(ctx context.Context, email string) (*domain.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE LOWER(email) = LOWER($1)`
	return r.scanSeller(r.db.QueryRowContext(ctx, query, email))
}

func (r *sellerRepository) GetForUpdate(ctx context.Context, id int32) (*domain.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE id = $1 FOR UPDATE NOWAIT`
	s, err := r.scanSeller(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapLockErr(err)
	}
	return s, nil
}

func (r *sellerRepository) UpdateCredit(ctx context.Context, id int32, credit decimal.Decimal) error {
	query := `UPDATE sellers SET credit = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, credit, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrSellerNotFound
	}
	return nil
}

func (r *sellerRepository) scanSeller(row *sql.Row) (*domain.Seller, error) {
	s := &domain.Seller{}
	err := row.Scan(&s.ID, &s.Email, &s.Name, &s.About, &s.PasswordHash, &s.Credit, &s.IsActive, &s.IsStaff, &s.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSellerNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
