package ledger_core

import (
	"time"
)

type TransferenceKind string

const (
	DebitKind    TransferenceKind = "DEBIT"
	CreditKind   TransferenceKind = "CREDIT"
	PurchaseKind TransferenceKind = "PURCHASE"
)

// Reviewable reports whether transferences of this kind carry a review.
// Debits take effect immediately and never do.
func (k TransferenceKind) Reviewable() bool {
	switch k {
	case CreditKind, PurchaseKind:
		return true
	default:
		return false
	}
}

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "PENDING"
	ReviewAccepted ReviewStatus = "ACCEPTED"
	ReviewRejected ReviewStatus = "REJECTED"
)

type ReviewAction string

const (
	ActionAccept ReviewAction = "ACCEPT"
	ActionReject ReviewAction = "REJECT"
)

func (a ReviewAction) Status() ReviewStatus {
	if a == ActionAccept {
		return ReviewAccepted
	}
	return ReviewRejected
}

type Transference struct {
	ID          string           `json:"id" gorm:"primarykey;size:36"`
	SenderID    string           `json:"sender_id" gorm:"index;size:36"`
	RecipientID *string          `json:"recipient_id" gorm:"index;size:36"`
	Amount      int64            `json:"amount"`
	Kind        TransferenceKind `json:"kind" gorm:"index;size:16"`
	Desc        string           `json:"description"`
	Date        time.Time        `json:"date" gorm:"index"`

	Review *Review `json:"review,omitempty" gorm:"foreignKey:TransferenceID"`
}

// Review is the 1:1 attachment of a credit or purchase transference.
// TransferenceID doubles as primary key so a second review row can never
// exist for the same transference.
type Review struct {
	TransferenceID string       `json:"transference_id" gorm:"primarykey;size:36"`
	Receipt        string       `json:"receipt"`
	Status         ReviewStatus `json:"status" gorm:"index;size:16"`
	ReviewerID     *string      `json:"reviewer_id" gorm:"size:36"`
	ReviewedDate   *time.Time   `json:"reviewed_date"`
}

type TransferenceList []*Transference
