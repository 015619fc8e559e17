package transference

import (
	"context"
	"fmt"

	"github.com/pdcgo/financial_service/ledger_core"
	"gorm.io/gorm"
)

type PendingCreatePayload struct {
	SenderID    string                       `json:"sender_id"`
	RecipientID *string                      `json:"recipient_id"`
	Amount      int64                        `json:"amount"`
	Receipt     string                       `json:"receipt"`
	Description string                       `json:"description"`
	Kind        ledger_core.TransferenceKind `json:"kind"`
}

// PendingCreate places a credit or purchase transference together with its
// pending review in one atomic write. Credits go to a recipient, purchases
// are drawn against the treasury and carry none.
func (t *transferenceServiceImpl) PendingCreate(ctx context.Context, payload *PendingCreatePayload) (*ledger_core.Transference, error) {
	var err error
	var tran *ledger_core.Transference

	if !payload.Kind.Reviewable() {
		return nil, fmt.Errorf("kind %s cannot be placed as pending transference", payload.Kind)
	}

	if payload.Kind == ledger_core.CreditKind {
		if payload.RecipientID == nil {
			return nil, fmt.Errorf("recipient required for credit transference")
		}
		if *payload.RecipientID == payload.SenderID {
			return nil, ledger_core.ErrSelfTransfer
		}
	}

	err = ledger_core.OpenTransaction(ctx, t.db, func(tx *gorm.DB) error {
		create := ledger_core.NewCreateTransference(tx)

		switch payload.Kind {
		case ledger_core.CreditKind:
			create = create.Credit(payload.SenderID, *payload.RecipientID, payload.Amount)
		case ledger_core.PurchaseKind:
			create = create.Purchase(payload.SenderID, payload.Amount)
		}

		err = create.
			Desc(payload.Description).
			Receipt(payload.Receipt).
			Commit().
			Err()

		if err != nil {
			return err
		}

		tran = create.Data()
		return nil
	})

	if err != nil {
		return nil, err
	}

	return tran, nil
}
