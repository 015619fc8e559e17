package transference

import (
	"context"

	"github.com/pdcgo/financial_service/ledger_core"
)

// HistoryList pages through every transference the user sent or received.
func (t *transferenceServiceImpl) HistoryList(
	ctx context.Context,
	userID string,
	page *PageFilter,
	orderDateBy string,
) (ledger_core.TransferenceList, *PageInfo, error) {
	var err error

	db := t.db.WithContext(ctx)
	result := ledger_core.TransferenceList{}
	pageinfo := PageInfo{}

	view := NewHistoryView(db).
		UserID(userID).
		OrderDate(orderDateBy).
		Page(page, &pageinfo)

	err = view.
		Iterate(func(d *ledger_core.Transference) error {
			result = append(result, d)
			return nil
		})

	if err != nil {
		return nil, nil, err
	}

	return result, &pageinfo, nil
}

// PurchaseList pages through the purchases that passed review.
func (t *transferenceServiceImpl) PurchaseList(
	ctx context.Context,
	page *PageFilter,
	orderDateBy string,
) (ledger_core.TransferenceList, *PageInfo, error) {
	var err error

	db := t.db.WithContext(ctx)
	result := ledger_core.TransferenceList{}
	pageinfo := PageInfo{}

	view := NewHistoryView(db).
		Kind(ledger_core.PurchaseKind).
		Status(ledger_core.ReviewAccepted).
		OrderDate(orderDateBy).
		Page(page, &pageinfo)

	err = view.
		Iterate(func(d *ledger_core.Transference) error {
			result = append(result, d)
			return nil
		})

	if err != nil {
		return nil, nil, err
	}

	return result, &pageinfo, nil
}
