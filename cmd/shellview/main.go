// Package main is the entry point for the interactive shell viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/shellview/internal/config"
	"github.com/Faultbox/shellview/internal/logger"
	"github.com/Faultbox/shellview/internal/viewer"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, configPath, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Shell Viewer ===", zap.String("config", configPath))
	logger.Sugar.Debugf("Config: %+v", cfg)

	app, err := viewer.New(cfg, configPath)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	if err := app.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		app.Close()
		logger.Sync()
		os.Exit(1)
	}
	app.Close()

	logger.Info("viewer closed normally")
}
