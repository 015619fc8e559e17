//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/pdcgo/financial_service"
	"github.com/pdcgo/financial_service/config"
)

func InitializeApp() (*App, error) {
	wire.Build(
		config.NewConfig,
		NewLogger,
		NewDatabase,
		NewEngine,
		financial_service.NewRegister,
		financial_service.NewMigrationHandler,
		NewApp,
	)

	return &App{}, nil
}
