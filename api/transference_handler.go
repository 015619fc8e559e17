package api

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pdcgo/financial_service/config"
	"github.com/pdcgo/financial_service/ledger_core"
	"github.com/pdcgo/financial_service/transference"
)

type transferenceHandler struct {
	cfg     *config.Config
	service TransferenceService
}

type debitRequest struct {
	Amount      int64  `json:"amount" binding:"required"`
	Description string `json:"description"`
}

// Debit handles POST /v1/debit/:user_id.
func (h *transferenceHandler) Debit(c *gin.Context) {
	var req debitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tran, err := h.service.DebitCreate(c.Request.Context(), &transference.DebitCreatePayload{
		UserID:      c.Param("user_id"),
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTransferenceDTO(tran))
}

// Deposit handles POST /v1/balance/:user_id, a credit to that user. The
// receipt comes in as a multipart file alongside the form fields.
func (h *transferenceHandler) Deposit(c *gin.Context) {
	senderID := c.PostForm("sender_id")
	if senderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sender_id is required"})
		return
	}

	amount, err := strconv.ParseInt(c.PostForm("amount"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be an integer"})
		return
	}

	receipt, err := h.saveReceipt(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "receipt file is required"})
		return
	}

	recipientID := c.Param("user_id")
	tran, err := h.service.PendingCreate(c.Request.Context(), &transference.PendingCreatePayload{
		SenderID:    senderID,
		RecipientID: &recipientID,
		Amount:      amount,
		Receipt:     receipt,
		Description: c.PostForm("description"),
		Kind:        ledger_core.CreditKind,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTransferenceDTO(tran))
}

// Purchase handles POST /v1/purchase.
func (h *transferenceHandler) Purchase(c *gin.Context) {
	senderID := c.PostForm("sender_id")
	if senderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sender_id is required"})
		return
	}

	amount, err := strconv.ParseInt(c.PostForm("amount"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be an integer"})
		return
	}

	receipt, err := h.saveReceipt(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "receipt file is required"})
		return
	}

	tran, err := h.service.PendingCreate(c.Request.Context(), &transference.PendingCreatePayload{
		SenderID:    senderID,
		Amount:      amount,
		Receipt:     receipt,
		Description: c.PostForm("description"),
		Kind:        ledger_core.PurchaseKind,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTransferenceDTO(tran))
}

// History handles GET /v1/history/:user_id.
func (h *transferenceHandler) History(c *gin.Context) {
	list, info, err := h.service.HistoryList(
		c.Request.Context(),
		c.Param("user_id"),
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

// PurchaseList handles GET /v1/purchase, accepted purchases only.
func (h *transferenceHandler) PurchaseList(c *gin.Context) {
	list, info, err := h.service.PurchaseList(
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

// Get handles GET /v1/transference/:id.
func (h *transferenceHandler) Get(c *gin.Context) {
	tran, err := h.service.TransferenceGet(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTransferenceDTO(tran))
}

// saveReceipt stores the uploaded receipt under a fresh name and returns the
// stored filename.
func (h *transferenceHandler) saveReceipt(c *gin.Context) (string, error) {
	file, err := c.FormFile("receipt")
	if err != nil {
		return "", err
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	err = c.SaveUploadedFile(file, filepath.Join(h.cfg.UploadDir, filename))
	if err != nil {
		return "", err
	}

	return filename, nil
}
