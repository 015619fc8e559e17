package ledger_core

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewMutation interface {
	ByTransferenceID(id string, lock bool) ReviewMutation
	Validate(reviewerID string, amount int64) ReviewMutation
	Apply(reviewerID string, amount int64, action ReviewAction) ReviewMutation
	IsExist() bool
	Data() *Transference
	Err() error
}

type reviewMutationImpl struct {
	tx   *gorm.DB
	data *Transference
	err  error
}

// ByTransferenceID implements ReviewMutation.
func (m *reviewMutationImpl) ByTransferenceID(id string, lock bool) ReviewMutation {
	var err error
	tx := m.tx

	m.data = &Transference{}

	if lock {
		tx = tx.Clauses(clause.Locking{
			Strength: "UPDATE",
		})
	}

	err = tx.Model(&Transference{}).
		Preload("Review").
		Where("id = ?", id).
		Find(m.data).
		Error

	if err != nil {
		return m.setErr(err)
	}

	return m
}

// IsExist implements ReviewMutation.
func (m *reviewMutationImpl) IsExist() bool {
	return m.data != nil && m.data.ID != ""
}

// Validate implements ReviewMutation. The checks here are advisory, they
// give the caller a precise failure before the write. Apply re-validates
// status and amount inside the conditional update itself.
func (m *reviewMutationImpl) Validate(reviewerID string, amount int64) ReviewMutation {
	if m.err != nil {
		return m
	}

	if !m.IsExist() {
		return m.setErr(ErrNotFound)
	}

	if m.data.Review == nil {
		return m.setErr(ErrNotFound)
	}

	if m.data.Review.Status != ReviewPending {
		return m.setErr(ErrAlreadyReviewed)
	}

	if m.data.SenderID == reviewerID {
		return m.setErr(ErrSelfReview)
	}

	if m.data.Amount != amount {
		return m.setErr(&ErrAmountMismatch{
			Supplied: amount,
			Recorded: m.data.Amount,
		})
	}

	return m
}

// Apply implements ReviewMutation. The update matches the review only while
// it is still pending and the recorded amount still equals the supplied one.
// Zero rows affected means a concurrent reviewer won the race.
func (m *reviewMutationImpl) Apply(reviewerID string, amount int64, action ReviewAction) ReviewMutation {
	if m.err != nil {
		return m
	}

	if !m.IsExist() {
		return m.setErr(ErrNotFound)
	}

	status := action.Status()
	now := time.Now()

	res := m.tx.Model(&Review{}).
		Where("transference_id = ?", m.data.ID).
		Where("status = ?", ReviewPending).
		Where("transference_id IN (?)",
			m.tx.Model(&Transference{}).
				Select("id").
				Where("id = ?", m.data.ID).
				Where("amount = ?", amount),
		).
		Updates(map[string]interface{}{
			"status":        status,
			"reviewer_id":   reviewerID,
			"reviewed_date": now,
		})

	if res.Error != nil {
		return m.setErr(res.Error)
	}

	if res.RowsAffected == 0 {
		return m.setErr(ErrReviewConflict)
	}

	m.data.Review.Status = status
	m.data.Review.ReviewerID = &reviewerID
	m.data.Review.ReviewedDate = &now

	return m
}

// Data implements ReviewMutation.
func (m *reviewMutationImpl) Data() *Transference {
	return m.data
}

// Err implements ReviewMutation.
func (m *reviewMutationImpl) Err() error {
	return m.err
}

func (m *reviewMutationImpl) setErr(err error) *reviewMutationImpl {
	if m.err != nil {
		return m
	}

	if err != nil {
		m.err = err
	}

	return m
}

func NewReviewMutation(tx *gorm.DB) ReviewMutation {
	return &reviewMutationImpl{
		tx: tx,
	}
}
