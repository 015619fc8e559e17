package ledger_core

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

var ErrSkipTransaction = errors.New("skip transaction")

// OpenTransaction runs handle inside a database transaction. Returning
// ErrSkipTransaction rolls the transaction back without surfacing an error.
func OpenTransaction(ctx context.Context, db *gorm.DB, handle func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	err := db.WithContext(ctx).Transaction(handle, opts...)
	if err != nil {
		if errors.Is(err, ErrSkipTransaction) {
			return nil
		}
		return err
	}

	return nil
}

// SerializableOption returns transaction options forcing serializable
// isolation. Sqlite transactions are serializable already and its driver
// rejects explicit isolation levels, so no option is emitted there.
func SerializableOption(db *gorm.DB) []*sql.TxOptions {
	if db.Dialector.Name() == "sqlite" {
		return nil
	}

	return []*sql.TxOptions{{Isolation: sql.LevelSerializable}}
}
