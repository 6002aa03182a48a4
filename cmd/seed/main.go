package main

import (
	"fmt"
	"os"

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

	report, err := application.Seed()
	if err != nil {
		logger.Errorw("seeding failed", "error", err)
		os.Exit(1)
	}
	fmt.Print(report.Summary())
}
