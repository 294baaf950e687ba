package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seller is the aggregate root of the wallet. Credit is only ever written
// through the balance mutator while the seller row is exclusively locked.
type Seller struct {
	ID           int32           `json:"id"`
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	About        string          `json:"about"`
	PasswordHash string          `json:"-"`
	Credit       decimal.Decimal `json:"credit"`
	IsActive     bool            `json:"is_active"`
	IsStaff      bool            `json:"is_staff"`
	CreatedOn    time.Time       `json:"created_on"`
}
