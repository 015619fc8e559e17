package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pdcgo/financial_service/ledger_core"
	"github.com/pdcgo/financial_service/review"
)

type reviewHandler struct {
	service ReviewService
}

type reviewRequest struct {
	ReviewerID string                   `json:"reviewer_id" binding:"required"`
	Amount     int64                    `json:"amount" binding:"required"`
	Action     ledger_core.ReviewAction `json:"action" binding:"required"`
}

// PendingList handles GET /v1/verify.
func (h *reviewHandler) PendingList(c *gin.Context) {
	list, info, err := h.service.PendingList(
		c.Request.Context(),
		pageFromQuery(c),
		orderFromQuery(c),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      newTransferenceListDTO(list),
		"page_info": info,
	})
}

// PendingGet handles GET /v1/verify/:id.
func (h *reviewHandler) PendingGet(c *gin.Context) {
	tran, err := h.service.PendingGet(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTransferenceDTO(tran))
}

// Apply handles POST /v1/verify/:id.
func (h *reviewHandler) Apply(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Action != ledger_core.ActionAccept && req.Action != ledger_core.ActionReject {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be ACCEPT or REJECT"})
		return
	}

	tran, err := h.service.ReviewApply(c.Request.Context(), &review.ReviewApplyPayload{
		TransferenceID: c.Param("id"),
		ReviewerID:     req.ReviewerID,
		Amount:         req.Amount,
		Action:         req.Action,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTransferenceDTO(tran))
}
