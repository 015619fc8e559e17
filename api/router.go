package api

import (
	"github.com/gin-gonic/gin"
	"github.com/pdcgo/financial_service/balance"
	"github.com/pdcgo/financial_service/config"
	"github.com/pdcgo/financial_service/review"
	"github.com/pdcgo/financial_service/transference"
	"gorm.io/gorm"
)

// Register wires the services and mounts every route under /v1 behind the
// auth middleware.
func Register(engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	balanceH := &balanceHandler{
		service: balance.NewBalanceService(db),
	}
	transferenceH := &transferenceHandler{
		cfg:     cfg,
		service: transference.NewTransferenceService(db),
	}
	reviewH := &reviewHandler{
		service: review.NewReviewService(db),
	}

	v1 := engine.Group("/v1")
	v1.Use(AuthMiddleware(cfg))

	v1.GET("/balance/:user_id", balanceH.GetBalance)
	v1.POST("/balance/:user_id", transferenceH.Deposit)

	v1.GET("/purchase", transferenceH.PurchaseList)
	v1.POST("/purchase", transferenceH.Purchase)

	v1.GET("/history/:user_id", transferenceH.History)
	v1.GET("/transference/:id", transferenceH.Get)

	v1.POST("/debit/:user_id", transferenceH.Debit)

	v1.GET("/verify", reviewH.PendingList)
	v1.GET("/verify/:id", reviewH.PendingGet)
	v1.POST("/verify/:id", reviewH.Apply)
}
