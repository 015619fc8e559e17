package review

import (
	"context"

	"github.com/pdcgo/financial_service/ledger_core"
	"gorm.io/gorm"
)

type ReviewApplyPayload struct {
	TransferenceID string                   `json:"transference_id"`
	ReviewerID     string                   `json:"reviewer_id"`
	Amount         int64                    `json:"amount"`
	Action         ledger_core.ReviewAction `json:"action"`
}

// ReviewApply moves a pending review to accepted or rejected. The read-side
// checks only classify the failure for the caller, the conditional update is
// the authority: when it matches nothing the review changed between read and
// write and the caller gets a conflict it may retry.
func (r *reviewServiceImpl) ReviewApply(ctx context.Context, payload *ReviewApplyPayload) (*ledger_core.Transference, error) {
	var err error
	var reviewed *ledger_core.Transference

	err = ledger_core.OpenTransaction(ctx, r.db, func(tx *gorm.DB) error {
		mut := ledger_core.
			NewReviewMutation(tx).
			ByTransferenceID(payload.TransferenceID, false).
			Validate(payload.ReviewerID, payload.Amount).
			Apply(payload.ReviewerID, payload.Amount, payload.Action)

		err = mut.Err()
		if err != nil {
			return err
		}

		reviewed = mut.Data()
		return nil
	})

	if err != nil {
		return nil, err
	}

	return reviewed, nil
}
