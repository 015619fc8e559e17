package transference

import (
	"gorm.io/gorm"
)

type transferenceServiceImpl struct {
	db *gorm.DB
}

func NewTransferenceService(db *gorm.DB) *transferenceServiceImpl {
	return &transferenceServiceImpl{
		db: db,
	}
}
