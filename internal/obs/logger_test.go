package obs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "nested", "dashboard.log")

	log, err := NewLogger(LogConfig{Level: "debug", App: "dashboard", File: file, MaxSizeMB: 1})
	require.NoError(t, err)

	log.Info("hello_from_test")
	require.NoError(t, log.Sync())

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	line := string(b)
	require.True(t, strings.Contains(line, "hello_from_test"), line)
	require.True(t, strings.Contains(line, `"service":"dashboard"`), line)
	require.True(t, strings.Contains(line, `"ts"`), line)
}

func TestNewLogger_BadLevelFallsBackToInfo(t *testing.T) {
	file := filepath.Join(t.TempDir(), "x.log")
	log, err := NewLogger(LogConfig{Level: "loud", File: file})
	require.NoError(t, err)

	log.Debug("dropped")
	log.Info("kept")
	require.NoError(t, log.Sync())

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	require.NotContains(t, string(b), "dropped")
	require.Contains(t, string(b), "kept")
}
