package ledger_core

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateTransference interface {
	Debit(senderID string, amount int64) CreateTransference
	Credit(senderID string, recipientID string, amount int64) CreateTransference
	Purchase(senderID string, amount int64) CreateTransference
	Desc(desc string) CreateTransference
	Receipt(receipt string) CreateTransference
	Commit() CreateTransference
	Data() *Transference
	Err() error
}

type createTransferenceImpl struct {
	tx      *gorm.DB
	tran    *Transference
	receipt string
	err     error
}

// Debit implements CreateTransference.
func (c *createTransferenceImpl) Debit(senderID string, amount int64) CreateTransference {
	c.tran = &Transference{
		SenderID: senderID,
		Amount:   amount,
		Kind:     DebitKind,
	}

	return c
}

// Credit implements CreateTransference.
func (c *createTransferenceImpl) Credit(senderID string, recipientID string, amount int64) CreateTransference {
	c.tran = &Transference{
		SenderID:    senderID,
		RecipientID: &recipientID,
		Amount:      amount,
		Kind:        CreditKind,
	}

	return c
}

// Purchase implements CreateTransference.
func (c *createTransferenceImpl) Purchase(senderID string, amount int64) CreateTransference {
	c.tran = &Transference{
		SenderID: senderID,
		Amount:   amount,
		Kind:     PurchaseKind,
	}

	return c
}

// Desc implements CreateTransference.
func (c *createTransferenceImpl) Desc(desc string) CreateTransference {
	if c.tran == nil {
		return c.setErr(errors.New("transference not initialized"))
	}

	c.tran.Desc = desc
	return c
}

// Receipt implements CreateTransference.
func (c *createTransferenceImpl) Receipt(receipt string) CreateTransference {
	c.receipt = receipt
	return c
}

// Commit implements CreateTransference. The transference and, for
// reviewable kinds, its pending review are written in the builder's
// transaction so they land atomically.
func (c *createTransferenceImpl) Commit() CreateTransference {
	var err error

	if c.err != nil {
		return c
	}

	if c.tran == nil {
		return c.setErr(errors.New("transference not initialized"))
	}

	if c.tran.Amount <= 0 {
		return c.setErr(ErrInvalidAmount)
	}

	if c.tran.Kind == CreditKind {
		if c.tran.RecipientID != nil && *c.tran.RecipientID == c.tran.SenderID {
			return c.setErr(ErrSelfTransfer)
		}
	}

	if c.tran.Kind.Reviewable() && c.receipt == "" {
		return c.setErr(errors.New("receipt required for reviewable transference"))
	}

	c.tran.ID = uuid.NewString()
	c.tran.Date = time.Now()

	err = c.tx.Create(c.tran).Error
	if err != nil {
		return c.setErr(err)
	}

	if c.tran.Kind.Reviewable() {
		review := Review{
			TransferenceID: c.tran.ID,
			Receipt:        c.receipt,
			Status:         ReviewPending,
		}

		err = c.tx.Create(&review).Error
		if err != nil {
			return c.setErr(err)
		}

		c.tran.Review = &review
	}

	return c
}

// Data implements CreateTransference.
func (c *createTransferenceImpl) Data() *Transference {
	return c.tran
}

// Err implements CreateTransference.
func (c *createTransferenceImpl) Err() error {
	return c.err
}

func (c *createTransferenceImpl) setErr(err error) *createTransferenceImpl {
	if c.err != nil {
		return c
	}

	if err != nil {
		c.err = err
	}

	return c
}

func NewCreateTransference(tx *gorm.DB) CreateTransference {
	return &createTransferenceImpl{
		tx: tx,
	}
}
