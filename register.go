package financial_service

import (
	"github.com/gin-gonic/gin"
	"github.com/pdcgo/financial_service/api"
	"github.com/pdcgo/financial_service/config"
	"gorm.io/gorm"
)

type RegisterHandler func()

func NewRegister(
	engine *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
) RegisterHandler {
	return func() {
		api.Register(engine, cfg, db)
	}
}
