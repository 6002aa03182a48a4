package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/siwaht/thriftysouq/internal/app"
	"github.com/siwaht/thriftysouq/internal/config"
	"github.com/siwaht/thriftysouq/internal/logger"
)

func main() {
	cfg := config.Load()

	application, err := app.New(cfg)
	if err != nil {
		logger.Errorw("startup failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorw("server exited", "error", err)
		os.Exit(1)
	}
	logger.Infow("server stopped")
}
