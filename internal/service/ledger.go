package service

import (
	"context"

	"seller-wallet-backend/internal/domain"
	"seller-wallet-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// balanceMutator is the only path that changes Seller.Credit. It appends a
// ledger line and writes the new balance as one pair of writes; callers run
// it inside an atomic unit with the seller row already locked.
type balanceMutator struct{}

func (balanceMutator) Apply(
	ctx context.Context,
	r repository.Repositories,
	seller *domain.Seller,
	delta decimal.Decimal,
	txType domain.TransactionType,
	ref domain.RequestRef,
) (*domain.Transaction, error) {
	before := seller.Credit
	after := before.Add(delta)

	txn := &domain.Transaction{
		SellerID:     seller.ID,
		Amount:       delta,
		CreditBefore: before,
		CreditAfter:  after,
		Type:         txType,
		Detail:       ref,
	}
	if err := r.Transactions.Create(ctx, txn); err != nil {
		return nil, err
	}
	if err := r.Sellers.UpdateCredit(ctx, seller.ID, after); err != nil {
		return nil, err
	}
	seller.Credit = after
	return txn, nil
}

type sellerService struct {
	sellerRepo repository.SellerRepository
}

func NewSellerService(sellerRepo repository.SellerRepository) SellerService {
	return &sellerService{sellerRepo: sellerRepo}
}

func (s *sellerService) GetProfile(ctx context.Context, sellerID int32) (*domain.Seller, error) {
	return s.sellerRepo.GetByID(ctx, sellerID)
}
