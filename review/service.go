package review

import (
	"gorm.io/gorm"
)

type reviewServiceImpl struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *reviewServiceImpl {
	return &reviewServiceImpl{
		db: db,
	}
}
