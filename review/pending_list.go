package review

import (
	"context"

	"github.com/pdcgo/financial_service/ledger_core"
	"github.com/pdcgo/financial_service/transference"
)

// PendingList pages through the transferences still waiting for a reviewer.
func (r *reviewServiceImpl) PendingList(
	ctx context.Context,
	page *transference.PageFilter,
	orderDateBy string,
) (ledger_core.TransferenceList, *transference.PageInfo, error) {
	var err error

	db := r.db.WithContext(ctx)
	result := ledger_core.TransferenceList{}
	pageinfo := transference.PageInfo{}

	view := transference.NewHistoryView(db).
		Status(ledger_core.ReviewPending).
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

// PendingGet loads a transference only while its review is still pending.
func (r *reviewServiceImpl) PendingGet(ctx context.Context, id string) (*ledger_core.Transference, error) {
	var err error
	db := r.db.WithContext(ctx)

	tran := ledger_core.Transference{}
	err = db.Model(&ledger_core.Transference{}).
		Preload("Review").
		Where("id = ?", id).
		Find(&tran).
		Error

	if err != nil {
		return nil, err
	}

	if tran.ID == "" || tran.Review == nil || tran.Review.Status != ledger_core.ReviewPending {
		return nil, ledger_core.ErrNotFound
	}

	return &tran, nil
}
