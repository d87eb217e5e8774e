// Package main is the entry point for the wireview model viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/wireview/internal/app"
	"github.com/Faultbox/wireview/internal/config"
	"github.com/Faultbox/wireview/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Fatal("failed to write config", zap.String("path", path), zap.Error(err))
		}
		logger.Info("config written", zap.String("path", path))
		return
	}
	if config.SaveConfig() {
		if err := cfg.Save(); err != nil {
			logger.Fatal("failed to save config", zap.Error(err))
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		return
	}

	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.Headless() {
		if err := app.RunHeadless(ctx, cfg, config.ScreenshotPath()); err != nil {
			logger.Error("headless run failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
