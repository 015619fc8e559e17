package transference

import (
	"fmt"
	"math"

	"github.com/pdcgo/financial_service/ledger_core"
	"gorm.io/gorm"
)

type PageFilter struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
}

type PageInfo struct {
	TotalItems  int64 `json:"total_items"`
	CurrentPage int64 `json:"current_page"`
	TotalPage   int64 `json:"total_page"`
}

type HistoryView interface {
	UserID(id string) HistoryView
	Kind(kind ledger_core.TransferenceKind) HistoryView
	Status(status ledger_core.ReviewStatus) HistoryView
	OrderDate(direction string) HistoryView
	Page(page *PageFilter, pageinfo *PageInfo) HistoryView
	Count(c *int64) HistoryView
	Iterate(handle func(d *ledger_core.Transference) error) error
	Find(dest interface{}) HistoryView
	Err() error
}

type historyViewImpl struct {
	db    *gorm.DB
	query *gorm.DB
	err   error
}

// UserID implements HistoryView. Matches transferences the user sent or
// received.
func (h *historyViewImpl) UserID(id string) HistoryView {
	if id == "" {
		return h
	}

	h.query = h.
		query.
		Where("transferences.sender_id = ? OR transferences.recipient_id = ?", id, id)

	return h
}

// Kind implements HistoryView.
func (h *historyViewImpl) Kind(kind ledger_core.TransferenceKind) HistoryView {
	h.query = h.
		query.
		Where("transferences.kind = ?", kind)

	return h
}

// Status implements HistoryView. Filters on the attached review status,
// transferences without review never match.
func (h *historyViewImpl) Status(status ledger_core.ReviewStatus) HistoryView {
	h.query = h.
		query.
		Joins("join reviews on reviews.transference_id = transferences.id").
		Where("reviews.status = ?", status)

	return h
}

// OrderDate implements HistoryView. Direction is asc or desc, anything else
// falls back to desc.
func (h *historyViewImpl) OrderDate(direction string) HistoryView {
	switch direction {
	case "asc", "desc":
	default:
		direction = "desc"
	}

	h.query = h.
		query.
		Order(fmt.Sprintf("transferences.date %s", direction))

	return h
}

// Page implements HistoryView.
func (h *historyViewImpl) Page(page *PageFilter, pageinfo *PageInfo) HistoryView {
	var err error
	var count int64

	err = h.Count(&count).Err()
	if err != nil {
		return h.setErr(err)
	}

	var total int64 = int64(math.Ceil(float64(count) / float64(page.Limit)))
	pageinfo.TotalItems = count
	pageinfo.CurrentPage = page.Page
	pageinfo.TotalPage = total

	offset := (page.Page - 1) * page.Limit
	h.query = h.
		query.
		Offset(int(offset)).
		Limit(int(page.Limit))

	return h
}

// Count implements HistoryView.
func (h *historyViewImpl) Count(c *int64) HistoryView {
	err := h.
		query.
		Session(&gorm.Session{}).
		Count(c).
		Error

	return h.setErr(err)
}

// Iterate implements HistoryView.
func (h *historyViewImpl) Iterate(handle func(d *ledger_core.Transference) error) error {
	var err error
	var list ledger_core.TransferenceList

	err = h.Find(&list).Err()
	if err != nil {
		return err
	}

	for _, d := range list {
		err = handle(d)
		if err != nil {
			return err
		}
	}

	return nil
}

// Find implements HistoryView.
func (h *historyViewImpl) Find(dest interface{}) HistoryView {
	err := h.
		query.
		Preload("Review").
		Find(dest).
		Error

	if err != nil {
		return h.setErr(err)
	}

	return h
}

// Err implements HistoryView.
func (h *historyViewImpl) Err() error {
	return h.err
}

func (h *historyViewImpl) createQuery() *historyViewImpl {
	h.query = h.
		query.
		Model(&ledger_core.Transference{})

	return h
}

func (h *historyViewImpl) setErr(err error) *historyViewImpl {
	if h.err != nil {
		return h
	}

	if err != nil {
		h.err = err
	}

	return h
}

func NewHistoryView(db *gorm.DB) HistoryView {
	view := &historyViewImpl{
		db:    db,
		query: db,
	}

	return view.createQuery()
}
