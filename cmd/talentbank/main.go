package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/talentbank/internal/app"
)

//	@title			Talentbank API
//	@version		0.1
//	@description	Talent donation and point settlement server

//	@host		localhost:8080
//	@BasePath	/rest/v0.1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

// @securityDefinitions.apikey	AdminKey
// @in							header
// @name						X-Admin-Key
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var application app.ApplicationI = app.New()
	err := application.Start(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Can't start application")
		zap.L().Fatal("Can't start application", zap.Error(err))
	}

	err = application.Wait(ctx, cancel)
	if err != nil {
		zap.L().Fatal("All systems closed with errors", zap.Error(err))
	}

	zap.L().Info("All systems closed without errors")
}
