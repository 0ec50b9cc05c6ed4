package dashboard_config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/NordCoder/testerdash/internal/obs"
	"github.com/NordCoder/testerdash/internal/repository/backend"
)

type App struct {
	Name    string `mapstructure:"name"`
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
}

type Backend struct {
	BaseURL       string        `mapstructure:"base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	RetryAttempts int           `mapstructure:"retry_attempts"`
	UserAgent     string        `mapstructure:"user_agent"`
}

func (b *Backend) AsClientConfig() backend.Config {
	return backend.Config{
		BaseURL:       b.BaseURL,
		Timeout:       b.Timeout,
		RetryAttempts: b.RetryAttempts,
		UserAgent:     b.UserAgent,
	}
}

type UI struct {
	FailuresOnly    bool          `mapstructure:"failures_only"`
	InitialTest     string        `mapstructure:"initial_test"`
	AltScreen       bool          `mapstructure:"alt_screen"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

type Metrics struct {
	// Addr of the /metrics and /healthz side server; empty disables it.
	Addr string `mapstructure:"addr"`
}

type OTEL struct {
	Enable       bool    `mapstructure:"enable"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	ServiceName  string  `mapstructure:"service_name"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
}

func (oc *OTEL) AsOTELConfig() *obs.OTELConfig {
	return &obs.OTELConfig{
		Enable:      oc.Enable,
		Endpoint:    oc.OTLPEndpoint,
		ServiceName: oc.ServiceName,
		SampleRatio: oc.SampleRatio,
	}
}

type Log struct {
	Level      string `mapstructure:"level"`
	Pretty     bool   `mapstructure:"pretty"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type Config struct {
	App     App     `mapstructure:"app"`
	Backend Backend `mapstructure:"backend"`
	UI      UI      `mapstructure:"ui"`
	Metrics Metrics `mapstructure:"metrics"`
	OTEL    OTEL    `mapstructure:"otel"`
	Log     Log     `mapstructure:"log"`
}

func (c *Config) LogConfig() obs.LogConfig {
	return obs.LogConfig{
		Level:      c.Log.Level,
		Pretty:     c.Log.Pretty,
		App:        c.App.Name,
		Env:        c.App.Env,
		Ver:        c.App.Version,
		File:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
	}
}

var ErrConfig = errors.New("invalid config")

func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: backend.base_url %q must be an http(s) URL", ErrConfig, c.Backend.BaseURL)
	}
	if c.Backend.Timeout < 0 {
		return fmt.Errorf("%w: backend.timeout must not be negative", ErrConfig)
	}
	if c.UI.RefreshInterval < 0 {
		return fmt.Errorf("%w: ui.refresh_interval must not be negative", ErrConfig)
	}
	if c.Backend.RetryAttempts < 1 {
		return fmt.Errorf("%w: backend.retry_attempts must be >= 1", ErrConfig)
	}
	if c.OTEL.SampleRatio < 0 || c.OTEL.SampleRatio > 1 {
		return fmt.Errorf("%w: otel.sample_ratio must be within [0,1]", ErrConfig)
	}
	return nil
}
