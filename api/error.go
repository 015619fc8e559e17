package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pdcgo/financial_service/ledger_core"
)

// writeError maps a typed ledger failure onto its response status. Anything
// outside the taxonomy is an infrastructure failure.
func writeError(c *gin.Context, err error) {
	mismatch := &ledger_core.ErrAmountMismatch{}

	switch {
	case errors.Is(err, ledger_core.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ledger_core.ErrAlreadyReviewed):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ledger_core.ErrReviewConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ledger_core.ErrInvalidAmount),
		errors.Is(err, ledger_core.ErrSelfTransfer),
		errors.Is(err, ledger_core.ErrSelfReview),
		errors.Is(err, ledger_core.ErrInsufficientBalance),
		errors.As(err, &mismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
