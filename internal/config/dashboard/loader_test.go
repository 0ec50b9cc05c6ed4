package dashboard_config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "http://localhost:3000", cfg.Backend.BaseURL)
	require.Equal(t, time.Duration(0), cfg.Backend.Timeout)
	require.Equal(t, 1, cfg.Backend.RetryAttempts)
	require.True(t, cfg.UI.FailuresOnly)
	require.Zero(t, cfg.UI.RefreshInterval)
	require.Empty(t, cfg.Metrics.Addr)
	require.Equal(t, "logs/dashboard.log", cfg.Log.File)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
backend:
  base_url: https://tester.example.com
  timeout: 4s
ui:
  failures_only: false
  initial_test: LeanStorage
  refresh_interval: 30s
log:
  level: debug
`), 0o600))

	t.Setenv("DASHBOARD_BACKEND_RETRY_ATTEMPTS", "3")
	t.Setenv("DASHBOARD_METRICS_ADDR", ":9102")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://tester.example.com", cfg.Backend.BaseURL)
	require.Equal(t, 4*time.Second, cfg.Backend.Timeout)
	require.Equal(t, 3, cfg.Backend.RetryAttempts)
	require.False(t, cfg.UI.FailuresOnly)
	require.Equal(t, "LeanStorage", cfg.UI.InitialTest)
	require.Equal(t, 30*time.Second, cfg.UI.RefreshInterval)
	require.Equal(t, ":9102", cfg.Metrics.Addr)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	bad := *cfg
	bad.Backend.BaseURL = "localhost:3000"
	require.ErrorIs(t, bad.Validate(), ErrConfig)

	bad = *cfg
	bad.Backend.RetryAttempts = 0
	require.ErrorIs(t, bad.Validate(), ErrConfig)

	bad = *cfg
	bad.OTEL.SampleRatio = 2
	require.ErrorIs(t, bad.Validate(), ErrConfig)
}
