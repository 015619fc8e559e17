package balance

import (
	"context"

	"github.com/pdcgo/financial_service/ledger_core"
	"gorm.io/gorm"
)

type balanceServiceImpl struct {
	db *gorm.DB
}

// GetBalance computes the balance figures of a user from its transference
// history. A user without history gets all zero figures.
func (b *balanceServiceImpl) GetBalance(ctx context.Context, userID string) (*ledger_core.Balance, error) {
	db := b.db.WithContext(ctx)

	history, err := ledger_core.UserTransferences(db, userID)
	if err != nil {
		return nil, err
	}

	return history.BalanceOf(userID), nil
}

func NewBalanceService(db *gorm.DB) *balanceServiceImpl {
	return &balanceServiceImpl{
		db: db,
	}
}
