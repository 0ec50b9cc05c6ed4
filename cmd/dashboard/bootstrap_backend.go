package main

import (
	"go.uber.org/zap"

	config "github.com/NordCoder/testerdash/internal/config/dashboard"
	"github.com/NordCoder/testerdash/internal/repository/backend"
	"github.com/NordCoder/testerdash/internal/services/dashboard"
)

func initBackend(cfg *config.Config, logger *zap.Logger) (*backend.Client, *dashboard.Usecase, error) {
	client, err := backend.New(cfg.Backend.AsClientConfig(), logger)
	if err != nil {
		return nil, nil, err
	}
	uc := dashboard.NewUC(
		backend.NewTestRepo(client),
		backend.NewResultRepo(client),
		backend.NewDowntimeRepo(client),
		logger,
	)
	return client, uc, nil
}
