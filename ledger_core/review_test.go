package ledger_core_test

import (
	"testing"

	"github.com/pdcgo/financial_service/ledger_core"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/pdcgo/shared/pkg/moretest/moretest_mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestReviewMutation(t *testing.T) {
	var db gorm.DB

	var migrate moretest.SetupFunc = func(t *testing.T) func() error {
		err := db.AutoMigrate(
			&ledger_core.Transference{},
			&ledger_core.Review{},
		)

		assert.Nil(t, err)
		return nil
	}

	pendingCredit := func(t *testing.T, amount int64) *ledger_core.Transference {
		create := ledger_core.
			NewCreateTransference(&db).
			Credit("alice", "bob", amount).
			Receipt("uploads/r.png").
			Commit()

		assert.Nil(t, create.Err())
		return create.Data()
	}

	moretest.Suite(t, "testing review mutation",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			migrate,
		},
		func(t *testing.T) {

			t.Run("accept pending review", func(t *testing.T) {
				tran := pendingCredit(t, 1000)

				mut := ledger_core.
					NewReviewMutation(&db).
					ByTransferenceID(tran.ID, false).
					Validate("carol", 1000).
					Apply("carol", 1000, ledger_core.ActionAccept)

				assert.Nil(t, mut.Err())

				data := mut.Data()
				assert.Equal(t, ledger_core.ReviewAccepted, data.Review.Status)
				assert.Equal(t, "carol", *data.Review.ReviewerID)
				assert.NotNil(t, data.Review.ReviewedDate)

				var saved ledger_core.Review
				err := db.
					Model(&ledger_core.Review{}).
					Where("transference_id = ?", tran.ID).
					Find(&saved).
					Error

				assert.Nil(t, err)
				assert.Equal(t, ledger_core.ReviewAccepted, saved.Status)
			})

			t.Run("reject pending review", func(t *testing.T) {
				tran := pendingCredit(t, 700)

				mut := ledger_core.
					NewReviewMutation(&db).
					ByTransferenceID(tran.ID, false).
					Validate("carol", 700).
					Apply("carol", 700, ledger_core.ActionReject)

				assert.Nil(t, mut.Err())
				assert.Equal(t, ledger_core.ReviewRejected, mut.Data().Review.Status)
			})

			t.Run("unknown transference", func(t *testing.T) {
				err := ledger_core.
					NewReviewMutation(&db).
					ByTransferenceID("c1f3a1de-0000-0000-0000-000000000000", false).
					Validate("carol", 10).
					Err()

				assert.ErrorIs(t, err, ledger_core.ErrNotFound)
			})

			t.Run("sender cannot review own transference", func(t *testing.T) {
				tran := pendingCredit(t, 100)

				err := ledger_core.
					NewReviewMutation(&db).
					ByTransferenceID(tran.ID, false).
					Validate("alice", 100).
					Err()

				assert.ErrorIs(t, err, ledger_core.ErrSelfReview)
			})

			t.Run("amount mismatch keeps review pending", func(t *testing.T) {
				tran := pendingCredit(t, 100)

				err := ledger_core.
					NewReviewMutation(&db).
					ByTransferenceID(tran.ID, false).
					Validate("carol", 90).
					Err()

				mismatch := &ledger_core.ErrAmountMismatch{}
				assert.ErrorAs(t, err, &mismatch)
				assert.Equal(t, int64(90), mismatch.Supplied)
				assert.Equal(t, int64(100), mismatch.Recorded)

				var saved ledger_core.Review
				assert.Nil(t, db.
					Model(&ledger_core.Review{}).
					Where("transference_id = ?", tran.ID).
					Find(&saved).
					Error)
				assert.Equal(t, ledger_core.ReviewPending, saved.Status)
			})

			t.Run("terminal review refused", func(t *testing.T) {
				tran := pendingCredit(t, 300)

				err := ledger_core.
					NewReviewMutation(&db).
					ByTransferenceID(tran.ID, false).
					Validate("carol", 300).
					Apply("carol", 300, ledger_core.ActionAccept).
					Err()

				assert.Nil(t, err)

				err = ledger_core.
					NewReviewMutation(&db).
					ByTransferenceID(tran.ID, false).
					Validate("dave", 300).
					Err()

				assert.ErrorIs(t, err, ledger_core.ErrAlreadyReviewed)
			})

			t.Run("lost race surfaces conflict", func(t *testing.T) {
				tran := pendingCredit(t, 550)

				// both reviewers pass the advisory reads on the same
				// pending snapshot
				first := ledger_core.
					NewReviewMutation(&db).
					ByTransferenceID(tran.ID, false).
					Validate("carol", 550)
				second := ledger_core.
					NewReviewMutation(&db).
					ByTransferenceID(tran.ID, false).
					Validate("dave", 550)

				assert.Nil(t, first.Err())
				assert.Nil(t, second.Err())

				err := first.Apply("carol", 550, ledger_core.ActionAccept).Err()
				assert.Nil(t, err)

				err = second.Apply("dave", 550, ledger_core.ActionReject).Err()
				assert.ErrorIs(t, err, ledger_core.ErrReviewConflict)

				var saved ledger_core.Review
				assert.Nil(t, db.
					Model(&ledger_core.Review{}).
					Where("transference_id = ?", tran.ID).
					Find(&saved).
					Error)
				assert.Equal(t, ledger_core.ReviewAccepted, saved.Status)
				assert.Equal(t, "carol", *saved.ReviewerID)
			})

			t.Run("debit has nothing to review", func(t *testing.T) {
				create := ledger_core.
					NewCreateTransference(&db).
					Debit("alice", 50).
					Commit()

				assert.Nil(t, create.Err())

				err := ledger_core.
					NewReviewMutation(&db).
					ByTransferenceID(create.Data().ID, false).
					Validate("carol", 50).
					Err()

				assert.ErrorIs(t, err, ledger_core.ErrNotFound)
			})
		},
	)
}
