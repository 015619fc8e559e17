package api

import (
	"context"

	"github.com/pdcgo/financial_service/ledger_core"
	"github.com/pdcgo/financial_service/review"
	"github.com/pdcgo/financial_service/transference"
)

// BalanceService is the ledger engine surface the handlers consume.
type BalanceService interface {
	GetBalance(ctx context.Context, userID string) (*ledger_core.Balance, error)
}

// TransferenceService is the factory and history surface.
type TransferenceService interface {
	DebitCreate(ctx context.Context, payload *transference.DebitCreatePayload) (*ledger_core.Transference, error)
	PendingCreate(ctx context.Context, payload *transference.PendingCreatePayload) (*ledger_core.Transference, error)
	TransferenceGet(ctx context.Context, id string) (*ledger_core.Transference, error)
	HistoryList(ctx context.Context, userID string, page *transference.PageFilter, orderDateBy string) (ledger_core.TransferenceList, *transference.PageInfo, error)
	PurchaseList(ctx context.Context, page *transference.PageFilter, orderDateBy string) (ledger_core.TransferenceList, *transference.PageInfo, error)
}

// ReviewService is the review state machine surface.
type ReviewService interface {
	ReviewApply(ctx context.Context, payload *review.ReviewApplyPayload) (*ledger_core.Transference, error)
	PendingList(ctx context.Context, page *transference.PageFilter, orderDateBy string) (ledger_core.TransferenceList, *transference.PageInfo, error)
	PendingGet(ctx context.Context, id string) (*ledger_core.Transference, error)
}
