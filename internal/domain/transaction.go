package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "Deposit"
	TransactionTypeWithdraw TransactionType = "Withdraw"
)

// Transaction is one append-only ledger line. For every row,
// CreditAfter = CreditBefore + Amount, and Amount is positive exactly when
// the type is Deposit.
type Transaction struct {
	ID              int32           `json:"id"`
	SellerID        int32           `json:"seller_id"`
	Amount          decimal.Decimal `json:"amount"` // signed: positive deposit, negative withdraw
	CreditBefore    decimal.Decimal `json:"credit_before"`
	CreditAfter     decimal.Decimal `json:"credit_after"`
	Type            TransactionType `json:"type"`
	Detail          RequestRef      `json:"detail"`
	TransactionTime time.Time       `json:"transaction_time"`
}
