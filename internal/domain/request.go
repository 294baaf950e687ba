package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type CreditRequestStatus string

const (
	CreditRequestStatusPending  CreditRequestStatus = "Pending"
	CreditRequestStatusAccepted CreditRequestStatus = "Accepted"
	CreditRequestStatusRejected CreditRequestStatus = "Rejected"
)

// CreditRequest is a seller-initiated top-up awaiting staff approval.
// Status moves Pending -> Accepted or Pending -> Rejected, exactly once.
type CreditRequest struct {
	ID          int32               `json:"id"`
	SellerID    int32               `json:"seller_id"`
	Amount      decimal.Decimal     `json:"amount"`
	Status      CreditRequestStatus `json:"status"`
	RequestedAt time.Time           `json:"requested_at"`
}

// ChargeRequest records a phone-number debit. It is written once, inside the
// same atomic unit as the withdrawal, and never updated.
type ChargeRequest struct {
	ID          int32           `json:"id"`
	SellerID    int32           `json:"seller_id"`
	PhoneNumber string          `json:"phone_number"`
	Amount      decimal.Decimal `json:"amount"`
	RequestedAt time.Time       `json:"requested_at"`
}

// PhoneNumber accumulates the total charged onto a number across all sellers.
type PhoneNumber struct {
	ID     int32           `json:"id"`
	Number string          `json:"number"`
	Charge decimal.Decimal `json:"charge"`
}

type RequestKind string

const (
	RequestKindCredit RequestKind = "CreditRequest"
	RequestKindCharge RequestKind = "ChargeRequest"
)

// RequestRef is a typed reference from a ledger line back to the request
// that caused it.
type RequestRef struct {
	Kind RequestKind `json:"kind"`
	ID   int32       `json:"id"`
}

func (r RequestRef) String() string {
	return fmt.Sprintf("%s-%d", r.Kind, r.ID)
}
