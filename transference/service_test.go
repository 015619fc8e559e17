package transference_test

import (
	"context"
	"testing"

	"github.com/pdcgo/financial_service/ledger_core"
	"github.com/pdcgo/financial_service/ledger_mock"
	"github.com/pdcgo/financial_service/transference"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/pdcgo/shared/pkg/moretest/moretest_mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func strptr(s string) *string {
	return &s
}

func TestDebitCreate(t *testing.T) {
	var db gorm.DB

	moretest.Suite(t, "testing debit creation",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			ledger_mock.Migrate(&db),
			ledger_mock.PopulateCredit(&db, "alice", "bob", 30, ledger_core.ReviewAccepted),
		},
		func(t *testing.T) {
			svc := transference.NewTransferenceService(&db)

			t.Run("insufficient balance creates nothing", func(t *testing.T) {
				_, err := svc.DebitCreate(context.Background(), &transference.DebitCreatePayload{
					UserID: "alice",
					Amount: 50,
				})

				assert.ErrorIs(t, err, ledger_core.ErrInsufficientBalance)

				var count int64
				assert.Nil(t, db.
					Model(&ledger_core.Transference{}).
					Where("kind = ?", ledger_core.DebitKind).
					Count(&count).
					Error)
				assert.Equal(t, int64(0), count)
			})

			t.Run("amount must be positive", func(t *testing.T) {
				_, err := svc.DebitCreate(context.Background(), &transference.DebitCreatePayload{
					UserID: "alice",
					Amount: -5,
				})

				assert.ErrorIs(t, err, ledger_core.ErrInvalidAmount)
			})

			t.Run("debit within balance", func(t *testing.T) {
				tran, err := svc.DebitCreate(context.Background(), &transference.DebitCreatePayload{
					UserID:      "alice",
					Amount:      20,
					Description: "snack",
				})

				assert.Nil(t, err)
				assert.Equal(t, ledger_core.DebitKind, tran.Kind)
				assert.Nil(t, tran.Review)
			})
		},
	)
}

func TestPendingCreate(t *testing.T) {
	var db gorm.DB

	moretest.Suite(t, "testing pending transference creation",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			ledger_mock.Migrate(&db),
		},
		func(t *testing.T) {
			svc := transference.NewTransferenceService(&db)

			t.Run("credit with recipient", func(t *testing.T) {
				tran, err := svc.PendingCreate(context.Background(), &transference.PendingCreatePayload{
					SenderID:    "alice",
					RecipientID: strptr("bob"),
					Amount:      100,
					Receipt:     "uploads/r1.png",
					Kind:        ledger_core.CreditKind,
				})

				assert.Nil(t, err)
				assert.Equal(t, ledger_core.ReviewPending, tran.Review.Status)
			})

			t.Run("credit to self refused", func(t *testing.T) {
				_, err := svc.PendingCreate(context.Background(), &transference.PendingCreatePayload{
					SenderID:    "alice",
					RecipientID: strptr("alice"),
					Amount:      100,
					Receipt:     "uploads/r2.png",
					Kind:        ledger_core.CreditKind,
				})

				assert.ErrorIs(t, err, ledger_core.ErrSelfTransfer)
			})

			t.Run("credit without recipient refused", func(t *testing.T) {
				_, err := svc.PendingCreate(context.Background(), &transference.PendingCreatePayload{
					SenderID: "alice",
					Amount:   100,
					Receipt:  "uploads/r3.png",
					Kind:     ledger_core.CreditKind,
				})

				assert.NotNil(t, err)
			})

			t.Run("purchase has no recipient", func(t *testing.T) {
				tran, err := svc.PendingCreate(context.Background(), &transference.PendingCreatePayload{
					SenderID: "alice",
					Amount:   250,
					Receipt:  "uploads/r4.png",
					Kind:     ledger_core.PurchaseKind,
				})

				assert.Nil(t, err)
				assert.Nil(t, tran.RecipientID)
				assert.Equal(t, ledger_core.ReviewPending, tran.Review.Status)
			})

			t.Run("debit kind refused here", func(t *testing.T) {
				_, err := svc.PendingCreate(context.Background(), &transference.PendingCreatePayload{
					SenderID: "alice",
					Amount:   10,
					Kind:     ledger_core.DebitKind,
				})

				assert.NotNil(t, err)
			})
		},
	)
}

func TestHistoryList(t *testing.T) {
	var db gorm.DB

	moretest.Suite(t, "testing history listing",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			ledger_mock.Migrate(&db),
			ledger_mock.PopulateCredit(&db, "alice", "bob", 100, ledger_core.ReviewAccepted),
			ledger_mock.PopulateCredit(&db, "alice", "bob", 200, ledger_core.ReviewPending),
			ledger_mock.PopulateCredit(&db, "carol", "dave", 300, ledger_core.ReviewPending),
			ledger_mock.PopulateDebit(&db, "alice", 40),
			ledger_mock.PopulatePurchase(&db, "alice", 70, true),
			ledger_mock.PopulatePurchase(&db, "carol", 80, false),
		},
		func(t *testing.T) {
			svc := transference.NewTransferenceService(&db)

			t.Run("user history pages", func(t *testing.T) {
				list, pageinfo, err := svc.HistoryList(context.Background(), "alice", &transference.PageFilter{
					Page:  1,
					Limit: 2,
				}, "desc")

				assert.Nil(t, err)
				assert.Equal(t, 2, len(list))
				assert.Equal(t, int64(4), pageinfo.TotalItems)
				assert.Equal(t, int64(2), pageinfo.TotalPage)
			})

			t.Run("history includes received transferences", func(t *testing.T) {
				list, _, err := svc.HistoryList(context.Background(), "bob", &transference.PageFilter{
					Page:  1,
					Limit: 50,
				}, "asc")

				assert.Nil(t, err)
				assert.Equal(t, 2, len(list))
				for _, tran := range list {
					assert.Equal(t, "bob", *tran.RecipientID)
					assert.NotNil(t, tran.Review)
				}
			})

			t.Run("verified purchases only", func(t *testing.T) {
				list, pageinfo, err := svc.PurchaseList(context.Background(), &transference.PageFilter{
					Page:  1,
					Limit: 50,
				}, "desc")

				assert.Nil(t, err)
				assert.Equal(t, int64(1), pageinfo.TotalItems)
				assert.Equal(t, 1, len(list))
				assert.Equal(t, ledger_core.PurchaseKind, list[0].Kind)
				assert.Equal(t, ledger_core.ReviewAccepted, list[0].Review.Status)
			})
		},
	)
}

func TestTransferenceGet(t *testing.T) {
	var db gorm.DB

	moretest.Suite(t, "testing transference get",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			ledger_mock.Migrate(&db),
		},
		func(t *testing.T) {
			svc := transference.NewTransferenceService(&db)

			created, err := svc.PendingCreate(context.Background(), &transference.PendingCreatePayload{
				SenderID:    "alice",
				RecipientID: strptr("bob"),
				Amount:      100,
				Receipt:     "uploads/r1.png",
				Kind:        ledger_core.CreditKind,
			})
			assert.Nil(t, err)

			t.Run("found with review", func(t *testing.T) {
				tran, err := svc.TransferenceGet(context.Background(), created.ID)

				assert.Nil(t, err)
				assert.Equal(t, created.ID, tran.ID)
				assert.NotNil(t, tran.Review)
			})

			t.Run("unknown id", func(t *testing.T) {
				_, err := svc.TransferenceGet(context.Background(), "b8a9e176-0000-0000-0000-000000000000")

				assert.ErrorIs(t, err, ledger_core.ErrNotFound)
			})
		},
	)
}
