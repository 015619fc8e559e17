package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type balanceHandler struct {
	service BalanceService
}

// GetBalance handles GET /v1/balance/:user_id.
func (h *balanceHandler) GetBalance(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	balance, err := h.service.GetBalance(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, balance)
}
