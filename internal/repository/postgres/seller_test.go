package postgres

import (
	"context"
	"testing"
	"time"

	"seller-wallet-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sellerRows(id int32, credit string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "name", "about", "password_hash", "credit", "is_active", "is_staff", "created_on"}).
		AddRow(id, "seller@example.com", "Test Seller", "", "hash", credit, true, false, time.Now())
}

func TestSellerRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewSellerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM sellers WHERE id =").
			WithArgs(int32(1)).
			WillReturnRows(sellerRows(1, "100.00"))

		seller, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), seller.ID)
		assert.True(t, seller.Credit.Equal(decimal.RequireFromString("100.00")))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM sellers WHERE id =").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "about", "password_hash", "credit", "is_active", "is_staff", "created_on"}))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrSellerNotFound)
	})
}

func TestSellerRepository_GetForUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewSellerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM sellers WHERE id = (.+) FOR UPDATE NOWAIT").
			WithArgs(int32(1)).
			WillReturnRows(sellerRows(1, "50.00"))

		seller, err := repo.GetForUpdate(ctx, 1)
		assert.NoError(t, err)
		assert.True(t, seller.Credit.Equal(decimal.RequireFromString("50.00")))
	})

	t.Run("LockContention", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM sellers WHERE id = (.+) FOR UPDATE NOWAIT").
			WithArgs(int32(1)).
			WillReturnError(&pq.Error{Code: pqLockNotAvailable})

		_, err := repo.GetForUpdate(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrLockContention)
	})
}

func TestSellerRepository_UpdateCredit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewSellerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE sellers SET credit =").
			WithArgs(decimal.RequireFromString("150.00"), int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateCredit(ctx, 1, decimal.RequireFromString("150.00"))
		assert.NoError(t, err)
	})

	t.Run("UnknownSeller", func(t *testing.T) {
		mock.ExpectExec("UPDATE sellers SET credit =").
			WithArgs(decimal.RequireFromString("150.00"), int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateCredit(ctx, 99, decimal.RequireFromString("150.00"))
		assert.ErrorIs(t, err, domain.ErrSellerNotFound)
	})
}
