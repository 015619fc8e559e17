package financial_service

import (
	"log"

	"github.com/pdcgo/financial_service/ledger_core"
	"gorm.io/gorm"
)

type SeedHandler func() error

func NewSeedHandler(
	db *gorm.DB,
) SeedHandler {
	return func() error {
		log.Println("seeding financial service")
		return nil
	}
}

type MigrationHandler func() error

func NewMigrationHandler(
	db *gorm.DB,
) MigrationHandler {
	return func() error {
		log.Println("migrating financial service")
		return db.AutoMigrate(
			&ledger_core.Transference{},
			&ledger_core.Review{},
		)
	}
}
