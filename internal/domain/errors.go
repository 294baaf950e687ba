package domain

import "errors"

var (
	// ErrNonPositiveAmount rejects zero or negative amounts before any state change.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrSellerNotFound is returned when no seller exists for the given id.
	ErrSellerNotFound = errors.New("seller not found")

	// ErrRequestNotFound is returned when no credit request exists for the given id.
	ErrRequestNotFound = errors.New("credit request not found")

	// ErrAlreadyProcessed is returned when a credit request has already left
	// the Pending state. Non-retriable.
	ErrAlreadyProcessed = errors.New("credit request already processed")

	// ErrInsufficientCredit is returned when a charge exceeds the seller's
	// current credit. No records are created.
	ErrInsufficientCredit = errors.New("seller credit is insufficient")

	// ErrLockContention is returned when another mutation holds the row lock.
	// Transient; callers may retry with backoff.
	ErrLockContention = errors.New("row is locked by another operation")
)
