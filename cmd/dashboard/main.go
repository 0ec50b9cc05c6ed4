package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	config "github.com/NordCoder/testerdash/internal/config/dashboard"
	"github.com/NordCoder/testerdash/internal/obs"
	"github.com/NordCoder/testerdash/internal/ui/tui"
)

var version = "dev" // set by -ldflags

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dashboard: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	f, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if f.showVersion {
		fmt.Printf("dashboard %s\n", version)
		return nil
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := f.apply(cfg); err != nil {
		return err
	}
	if cfg.App.Version == "dev" {
		cfg.App.Version = version
	}

	logger, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting dashboard",
		zap.String("backend", cfg.Backend.BaseURL),
		zap.Bool("failures_only", cfg.UI.FailuresOnly),
		zap.String("initial_test", cfg.UI.InitialTest),
	)

	otelShutdown, err := initOTel(rootCtx, cfg)
	if err != nil {
		return fmt.Errorf("otel init: %w", err)
	}
	defer func() { _ = otelShutdown(context.Background()) }()

	client, uc, err := initBackend(cfg, logger)
	if err != nil {
		return fmt.Errorf("backend init: %w", err)
	}

	var ms *http.Server
	if cfg.Metrics.Addr != "" {
		ms = obs.BootstrapMetricsServer(cfg.Metrics.Addr, client.Health, logger)
	}

	model := tui.New(rootCtx, uc, logger, tui.Options{
		FailuresOnly: cfg.UI.FailuresOnly,
		InitialTest:  cfg.UI.InitialTest,
		RefreshEvery: cfg.UI.RefreshInterval,
	})
	opts := []tea.ProgramOption{tea.WithContext(rootCtx)}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	_, runErr := tea.NewProgram(model, opts...).Run()
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		logger.Error("tui", zap.Error(runErr))
	} else {
		runErr = nil
	}

	if ms != nil {
		shCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = ms.Shutdown(shCtx)
	}
	logger.Info("bye")
	return runErr
}
