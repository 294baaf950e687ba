package service

import (
	"context"

	"seller-wallet-backend/internal/domain"
	"seller-wallet-backend/internal/logger"
	"seller-wallet-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type requestService struct {
	txm        repository.TxManager
	sellerRepo repository.SellerRepository
	reqRepo    repository.CreditRequestRepository
	emailSvc   EmailService
	ledger     balanceMutator
}

// NewRequestService builds the stateless request service. One value is
// constructed at startup and shared by all callers.
func NewRequestService(
	txm repository.TxManager,
	sellerRepo repository.SellerRepository,
	reqRepo repository.CreditRequestRepository,
	emailSvc EmailService,
) RequestService {
	return &requestService{
		txm:        txm,
		sellerRepo: sellerRepo,
		reqRepo:    reqRepo,
		emailSvc:   emailSvc,
	}
}

func (s *requestService) CreateCreditRequest(ctx context.Context, sellerID int32, amount decimal.Decimal) (*domain.CreditRequest, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrNonPositiveAmount
	}
	if _, err := s.sellerRepo.GetByID(ctx, sellerID); err != nil {
		return nil, err
	}

	req := &domain.CreditRequest{
		SellerID: sellerID,
		Amount:   amount,
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	logger.Info("Credit request created", "request_id", req.ID, "seller_id", sellerID, "amount", amount)
	return req, nil
}

// AcceptCreditRequest flips a pending request to Accepted and deposits its
// amount, all inside one atomic unit. The request row is locked first so two
// staff members cannot accept the same request; the seller row is locked for
// the balance mutation. Either lock failing surfaces ErrLockContention with
// nothing committed.
func (s *requestService) AcceptCreditRequest(ctx context.Context, requestID int32) (*domain.Transaction, error) {
	var (
		txn    *domain.Transaction
		seller *domain.Seller
		req    *domain.CreditRequest
	)
	err := s.txm.WithinTx(ctx, func(r repository.Repositories) error {
		var err error
		req, err = r.CreditRequests.GetForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req.Status != domain.CreditRequestStatusPending {
			return domain.ErrAlreadyProcessed
		}
		if err := r.CreditRequests.UpdateStatus(ctx, req.ID, domain.CreditRequestStatusAccepted); err != nil {
			return err
		}
		req.Status = domain.CreditRequestStatusAccepted

		seller, err = r.Sellers.GetForUpdate(ctx, req.SellerID)
		if err != nil {
			return err
		}
		ref := domain.RequestRef{Kind: domain.RequestKindCredit, ID: req.ID}
		txn, err = s.ledger.Apply(ctx, r, seller, req.Amount, domain.TransactionTypeDeposit, ref)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Credit request accepted", "request_id", requestID, "seller_id", seller.ID, "amount", req.Amount)
	s.notifyProcessed(ctx, seller, req)
	return txn, nil
}

func (s *requestService) RejectCreditRequest(ctx context.Context, requestID int32) (*domain.CreditRequest, error) {
	var (
		seller *domain.Seller
		req    *domain.CreditRequest
	)
	err := s.txm.WithinTx(ctx, func(r repository.Repositories) error {
		var err error
		req, err = r.CreditRequests.GetForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req.Status != domain.CreditRequestStatusPending {
			return domain.ErrAlreadyProcessed
		}
		if err := r.CreditRequests.UpdateStatus(ctx, req.ID, domain.CreditRequestStatusRejected); err != nil {
			return err
		}
		req.Status = domain.CreditRequestStatusRejected

		seller, err = r.Sellers.GetByID(ctx, req.SellerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Credit request rejected", "request_id", requestID, "seller_id", seller.ID)
	s.notifyProcessed(ctx, seller, req)
	return req, nil
}

// ChargePhoneNumber debits the seller and records the charge in one atomic
// unit. The seller row is locked before the sufficiency check so a concurrent
// charge cannot invalidate it.
func (s *requestService) ChargePhoneNumber(ctx context.Context, sellerID int32, phoneNumber string, amount decimal.Decimal) (*domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrNonPositiveAmount
	}

	var txn *domain.Transaction
	err := s.txm.WithinTx(ctx, func(r repository.Repositories) error {
		seller, err := r.Sellers.GetForUpdate(ctx, sellerID)
		if err != nil {
			return err
		}
		if seller.Credit.LessThan(amount) {
			return domain.ErrInsufficientCredit
		}

		charge := &domain.ChargeRequest{
			SellerID:    sellerID,
			PhoneNumber: phoneNumber,
			Amount:      amount,
		}
		if err := r.ChargeRequests.Create(ctx, charge); err != nil {
			return err
		}
		if err := r.PhoneNumbers.AddCharge(ctx, phoneNumber, amount); err != nil {
			return err
		}

		ref := domain.RequestRef{Kind: domain.RequestKindCharge, ID: charge.ID}
		txn, err = s.ledger.Apply(ctx, r, seller, amount.Neg(), domain.TransactionTypeWithdraw, ref)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Phone number charged", "seller_id", sellerID, "phone_number", phoneNumber, "amount", amount)
	return txn, nil
}

// notifyProcessed emails the seller after the unit has committed. Failures
// are logged, never propagated.
func (s *requestService) notifyProcessed(ctx context.Context, seller *domain.Seller, req *domain.CreditRequest) {
	if s.emailSvc == nil {
		return
	}
	if err := s.emailSvc.SendCreditRequestProcessed(ctx, seller.Email, seller.Name, req.Amount, req.Status); err != nil {
		logger.Warn("Failed to send credit request notification", "request_id", req.ID, "error", err)
	}
}
