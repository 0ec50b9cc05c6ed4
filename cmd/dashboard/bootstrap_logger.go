package main

import (
	"go.uber.org/zap"

	config "github.com/NordCoder/testerdash/internal/config/dashboard"
	"github.com/NordCoder/testerdash/internal/obs"
)

// The terminal belongs to the TUI, so logs go to the configured file.
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	return obs.NewLogger(cfg.LogConfig())
}
