package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/stayinn/rating-gateway/internal/app"
	"github.com/stayinn/rating-gateway/internal/pkg/config"
	"github.com/stayinn/rating-gateway/pkg/logger"
)

// @title        StayInn Rating Gateway
// @version      1.0
// @description  Guest-facing API for rating an accommodation after a stay.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	interruptSignals := []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}

	ctx, cancel := signal.NotifyContext(context.Background(), interruptSignals...)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}

	lg := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "stayinn-rating-gateway",
	})

	a, err := app.New(ctx, cfg)
	if err != nil {
		lg.Error().Err(err).Msg("failed to initialize")
		return
	}

	a.Run(ctx)
}
