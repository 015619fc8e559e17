package ledger_mock

import (
	"testing"

	"github.com/pdcgo/financial_service/ledger_core"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/zeebo/assert"
	"gorm.io/gorm"
)

// Migrate migrates the ledger schema into the mocked database.
func Migrate(db *gorm.DB) moretest.SetupFunc {
	return func(t *testing.T) func() error {
		err := db.AutoMigrate(
			&ledger_core.Transference{},
			&ledger_core.Review{},
		)

		assert.Nil(t, err)
		return nil
	}
}

// PopulateDebit seeds a debit transference.
func PopulateDebit(db *gorm.DB, senderID string, amount int64) moretest.SetupFunc {
	return func(t *testing.T) func() error {
		err := ledger_core.
			NewCreateTransference(db).
			Debit(senderID, amount).
			Commit().
			Err()

		assert.Nil(t, err)
		return nil
	}
}

// PopulateCredit seeds a credit transference with its review already moved
// to status when it is not pending.
func PopulateCredit(db *gorm.DB, senderID string, recipientID string, amount int64, status ledger_core.ReviewStatus) moretest.SetupFunc {
	return func(t *testing.T) func() error {
		create := ledger_core.
			NewCreateTransference(db).
			Credit(senderID, recipientID, amount).
			Receipt("uploads/seed-receipt.png").
			Commit()

		assert.Nil(t, create.Err())

		if status == ledger_core.ReviewPending {
			return nil
		}

		action := ledger_core.ActionAccept
		if status == ledger_core.ReviewRejected {
			action = ledger_core.ActionReject
		}

		err := ledger_core.
			NewReviewMutation(db).
			ByTransferenceID(create.Data().ID, false).
			Apply("seed-reviewer", amount, action).
			Err()

		assert.Nil(t, err)
		return nil
	}
}

// PopulatePurchase seeds a purchase transference, accepted when accepted is
// set.
func PopulatePurchase(db *gorm.DB, senderID string, amount int64, accepted bool) moretest.SetupFunc {
	return func(t *testing.T) func() error {
		create := ledger_core.
			NewCreateTransference(db).
			Purchase(senderID, amount).
			Receipt("uploads/seed-receipt.png").
			Commit()

		assert.Nil(t, create.Err())

		if !accepted {
			return nil
		}

		err := ledger_core.
			NewReviewMutation(db).
			ByTransferenceID(create.Data().ID, false).
			Apply("seed-reviewer", amount, ledger_core.ActionAccept).
			Err()

		assert.Nil(t, err)
		return nil
	}
}
