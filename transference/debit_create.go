package transference

import (
	"context"

	"github.com/pdcgo/financial_service/ledger_core"
	"gorm.io/gorm"
)

type DebitCreatePayload struct {
	UserID      string `json:"user_id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// DebitCreate places a debit on the user account. The balance sufficiency
// check and the insert run in one serializable transaction, concurrent
// debits cannot drive the balance negative.
func (t *transferenceServiceImpl) DebitCreate(ctx context.Context, payload *DebitCreatePayload) (*ledger_core.Transference, error) {
	var err error
	var tran *ledger_core.Transference

	if payload.Amount <= 0 {
		return nil, ledger_core.ErrInvalidAmount
	}

	err = ledger_core.OpenTransaction(ctx, t.db, func(tx *gorm.DB) error {
		history, err := ledger_core.UserTransferences(tx, payload.UserID)
		if err != nil {
			return err
		}

		bal := history.BalanceOf(payload.UserID)
		if bal.Balance < payload.Amount {
			return ledger_core.ErrInsufficientBalance
		}

		create := ledger_core.
			NewCreateTransference(tx).
			Debit(payload.UserID, payload.Amount).
			Desc(payload.Description).
			Commit()

		err = create.Err()
		if err != nil {
			return err
		}

		tran = create.Data()
		return nil
	}, ledger_core.SerializableOption(t.db)...)

	if err != nil {
		return nil, err
	}

	return tran, nil
}
