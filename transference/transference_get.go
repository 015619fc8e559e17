package transference

import (
	"context"

	"github.com/pdcgo/financial_service/ledger_core"
)

// TransferenceGet loads one transference with its review when it has one.
func (t *transferenceServiceImpl) TransferenceGet(ctx context.Context, id string) (*ledger_core.Transference, error) {
	var err error
	db := t.db.WithContext(ctx)

	tran := ledger_core.Transference{}
	err = db.Model(&ledger_core.Transference{}).
		Preload("Review").
		Where("id = ?", id).
		Find(&tran).
		Error

	if err != nil {
		return nil, err
	}

	if tran.ID == "" {
		return nil, ledger_core.ErrNotFound
	}

	return &tran, nil
}
