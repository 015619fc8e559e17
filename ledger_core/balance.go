package ledger_core

import (
	"gorm.io/gorm"
)

type Balance struct {
	Balance        int64 `json:"balance"`
	Treasury       int64 `json:"treasury"`
	PendingBalance int64 `json:"pending_balance"`
}

// BalanceOf folds the list into the balance figures of userID. Debits hit
// the personal balance immediately. Accepted purchases drain the shared
// treasury. Credits depend on their review: pending ones accrue
// pending_balance, rejected ones are ignored, accepted ones pay the sender's
// balance or, when userID is the recipient, the treasury.
//
// The fold is pure and order independent. A negative treasury is borrowed
// back from the personal balance so the returned treasury is never below
// zero.
func (list TransferenceList) BalanceOf(userID string) *Balance {
	acc := Balance{}

	for _, tran := range list {
		switch tran.Kind {
		case DebitKind:
			acc.Balance -= tran.Amount
		case PurchaseKind:
			if tran.Review == nil {
				continue
			}
			if tran.Review.Status == ReviewAccepted {
				acc.Treasury -= tran.Amount
			}
		case CreditKind:
			if tran.Review == nil {
				continue
			}
			switch tran.Review.Status {
			case ReviewPending:
				acc.PendingBalance += tran.Amount
			case ReviewAccepted:
				if tran.SenderID == userID {
					acc.Balance += tran.Amount
				} else {
					acc.Treasury += tran.Amount
				}
			}
		}
	}

	if acc.Treasury < 0 {
		surplus := -acc.Treasury
		acc.Balance += surplus
		acc.Treasury += surplus
	}

	return &acc
}

// UserTransferences loads every transference touching userID, reviews
// preloaded, as the snapshot for a balance fold.
func UserTransferences(tx *gorm.DB, userID string) (TransferenceList, error) {
	var list TransferenceList

	err := tx.Model(&Transference{}).
		Preload("Review").
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Find(&list).
		Error

	if err != nil {
		return nil, err
	}

	return list, nil
}
