package api

import (
	"time"

	"github.com/pdcgo/financial_service/ledger_core"
)

type TransferenceDTO struct {
	ID          string                       `json:"id"`
	SenderID    string                       `json:"sender_id"`
	RecipientID *string                      `json:"recipient_id"`
	Amount      int64                        `json:"amount"`
	Kind        ledger_core.TransferenceKind `json:"kind"`
	Description string                       `json:"description"`
	Date        time.Time                    `json:"date"`
}

// ReviewedTransferenceDTO flattens the transference and its review into one
// response object.
type ReviewedTransferenceDTO struct {
	TransferenceDTO
	Receipt      string                   `json:"receipt"`
	Status       ledger_core.ReviewStatus `json:"status"`
	ReviewerID   *string                  `json:"reviewer_id"`
	ReviewedDate *time.Time               `json:"reviewed_date"`
}

func newTransferenceDTO(tran *ledger_core.Transference) interface{} {
	dto := TransferenceDTO{
		ID:          tran.ID,
		SenderID:    tran.SenderID,
		RecipientID: tran.RecipientID,
		Amount:      tran.Amount,
		Kind:        tran.Kind,
		Description: tran.Desc,
		Date:        tran.Date,
	}

	if tran.Review == nil {
		return dto
	}

	return ReviewedTransferenceDTO{
		TransferenceDTO: dto,
		Receipt:         tran.Review.Receipt,
		Status:          tran.Review.Status,
		ReviewerID:      tran.Review.ReviewerID,
		ReviewedDate:    tran.Review.ReviewedDate,
	}
}

func newTransferenceListDTO(list ledger_core.TransferenceList) []interface{} {
	result := make([]interface{}, 0, len(list))
	for _, tran := range list {
		result = append(result, newTransferenceDTO(tran))
	}

	return result
}
