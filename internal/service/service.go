package service

import (
	"context"

	"seller-wallet-backend/internal/domain"

	"github.com/shopspring/decimal"
)

// RequestService is the single entry point the delivery layer calls for
// credit and charge operations.
type RequestService interface {
	CreateCreditRequest(ctx context.Context, sellerID int32, amount decimal.Decimal) (*domain.CreditRequest, error)
	AcceptCreditRequest(ctx context.Context, requestID int32) (*domain.Transaction, error)
	RejectCreditRequest(ctx context.Context, requestID int32) (*domain.CreditRequest, error)
	ChargePhoneNumber(ctx context.Context, sellerID int32, phoneNumber string, amount decimal.Decimal) (*domain.Transaction, error)
}

type SellerService interface {
	GetProfile(ctx context.Context, sellerID int32) (*domain.Seller, error)
}

type AuthService interface {
	Signup(ctx context.Context, email, name, about, password string) (*domain.Seller, string, string, error) // seller, access, refresh
	Login(ctx context.Context, email, password string) (string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type EmailService interface {
	SendCreditRequestProcessed(ctx context.Context, email, name string, amount decimal.Decimal, status domain.CreditRequestStatus) error
	SendOpsAlert(ctx context.Context, subject, message string) error
}
