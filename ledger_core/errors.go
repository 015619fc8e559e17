package ledger_core

import (
	"encoding/json"
	"errors"
)

var (
	ErrInvalidAmount       = errors.New("amount must be a positive integer")
	ErrSelfTransfer        = errors.New("sender and recipient must differ")
	ErrSelfReview          = errors.New("reviewer cannot verify own transference")
	ErrNotFound            = errors.New("transference not found")
	ErrAlreadyReviewed     = errors.New("transference already reviewed")
	ErrReviewConflict      = errors.New("review lost to a concurrent update")
	ErrInsufficientBalance = errors.New("balance insufficient for this debit")
)

type ErrAmountMismatch struct {
	Supplied int64 `json:"supplied"`
	Recorded int64 `json:"recorded"`
}

// Error implements error.
func (e *ErrAmountMismatch) Error() string {
	raw, _ := json.Marshal(e)
	return "reviewed amount does not correspond to the declared amount " + string(raw)
}
