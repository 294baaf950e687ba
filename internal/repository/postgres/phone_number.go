package postgres

import (
	"context"

	"seller-wallet-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type phoneNumberRepository struct {
	db querier
}

func NewPhoneNumberRepository(db querier) repository.PhoneNumberRepository {
	return &phoneNumberRepository{db: db}
}

func (r *phoneNumberRepository) AddCharge(ctx context.Context, number string, amount decimal.Decimal) error {
	query := `INSERT INTO phone_numbers (number, charge) VALUES ($1, $2)
	          ON CONFLICT (number) DO UPDATE SET charge = phone_numbers.charge + EXCLUDED.charge`
	_, err := r.db.ExecContext(ctx, query, number, amount)
	return err
}
