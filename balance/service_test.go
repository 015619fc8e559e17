package balance_test

import (
	"context"
	"testing"

	"github.com/pdcgo/financial_service/balance"
	"github.com/pdcgo/financial_service/ledger_core"
	"github.com/pdcgo/financial_service/ledger_mock"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/pdcgo/shared/pkg/moretest/moretest_mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestBalanceService(t *testing.T) {
	var db gorm.DB

	moretest.Suite(t, "testing balance service",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			ledger_mock.Migrate(&db),
			ledger_mock.PopulateCredit(&db, "alice", "bob", 1000, ledger_core.ReviewAccepted),
			ledger_mock.PopulateCredit(&db, "alice", "bob", 250, ledger_core.ReviewPending),
			ledger_mock.PopulateCredit(&db, "alice", "bob", 400, ledger_core.ReviewRejected),
			ledger_mock.PopulateDebit(&db, "alice", 300),
			ledger_mock.PopulatePurchase(&db, "bob", 150, true),
		},
		func(t *testing.T) {
			svc := balance.NewBalanceService(&db)

			t.Run("sender figures", func(t *testing.T) {
				bal, err := svc.GetBalance(context.Background(), "alice")

				assert.Nil(t, err)
				assert.Equal(t, int64(700), bal.Balance)
				assert.Equal(t, int64(250), bal.PendingBalance)
				assert.Equal(t, int64(0), bal.Treasury)
			})

			t.Run("recipient accrues treasury", func(t *testing.T) {
				bal, err := svc.GetBalance(context.Background(), "bob")

				assert.Nil(t, err)
				// accepted credit of 1000 received, accepted purchase
				// of 150 spent from the treasury
				assert.Equal(t, int64(850), bal.Treasury)
				assert.Equal(t, int64(0), bal.Balance)
				assert.Equal(t, int64(250), bal.PendingBalance)
			})

			t.Run("unknown user is all zero", func(t *testing.T) {
				bal, err := svc.GetBalance(context.Background(), "nobody")

				assert.Nil(t, err)
				assert.Equal(t, &ledger_core.Balance{}, bal)
			})
		},
	)
}
