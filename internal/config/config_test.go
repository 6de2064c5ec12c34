package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// missingEnv points Load at a file that does not exist so a developer's
// own .env never leaks into tests.
func missingEnv(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(missingEnv(t))
	require.NoError(t, err)

	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
	assert.Equal(t, wallet.DefaultDelay, cfg.WalletDelay)
	assert.Equal(t, []string{DefaultWalletAccount}, cfg.WalletAccounts)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, domain.DashboardGovernment, cfg.Dashboard)
	assert.Equal(t, "fundsflow.db", filepath.Base(cfg.DBPath))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FUNDSFLOW_DB", "/tmp/ff.db")
	t.Setenv("FUNDSFLOW_LOG_LEVEL", "debug")
	t.Setenv("FUNDSFLOW_WALLET_DELAY_MS", "0")
	t.Setenv("FUNDSFLOW_WALLET_ACCOUNTS", " 0xA, ,0xB ")
	t.Setenv("FUNDSFLOW_LISTEN", "127.0.0.1:9000")
	t.Setenv("FUNDSFLOW_DASHBOARD", "Institution")

	cfg, err := Load(missingEnv(t))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/ff.db", cfg.DBPath)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Equal(t, time.Duration(0), cfg.WalletDelay)
	assert.Equal(t, []string{"0xA", "0xB"}, cfg.WalletAccounts)
	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, domain.DashboardInstitution, cfg.Dashboard)
}

func TestLoad_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("FUNDSFLOW_LOG_LEVEL", "chatty")
	t.Setenv("FUNDSFLOW_WALLET_DELAY_MS", "-5")

	cfg, err := Load(missingEnv(t))
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
	assert.Equal(t, wallet.DefaultDelay, cfg.WalletDelay)
}

func TestLoad_EmptyAccountsMeansNone(t *testing.T) {
	t.Setenv("FUNDSFLOW_WALLET_ACCOUNTS", "")

	cfg, err := Load(missingEnv(t))
	require.NoError(t, err)
	assert.Empty(t, cfg.WalletAccounts)
}

func TestLoad_UnknownDashboard(t *testing.T) {
	t.Setenv("FUNDSFLOW_DASHBOARD", "treasury")

	_, err := Load(missingEnv(t))
	assert.ErrorContains(t, err, "unknown dashboard")
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("FUNDSFLOW_LISTEN=:7070\nFUNDSFLOW_LOG_FILE=/tmp/ff.log\n"), 0o644))
	// Registered so t.Setenv restores the variables after the test.
	t.Setenv("FUNDSFLOW_LISTEN", "")
	t.Setenv("FUNDSFLOW_LOG_FILE", "")
	os.Unsetenv("FUNDSFLOW_LISTEN")
	os.Unsetenv("FUNDSFLOW_LOG_FILE")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Listen)
	assert.Equal(t, "/tmp/ff.log", cfg.LogFile)
}

func TestLoad_ProcessEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("FUNDSFLOW_LISTEN=:7070\n"), 0o644))
	t.Setenv("FUNDSFLOW_LISTEN", ":6060")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Listen)
}

func TestNewLogger_WritesToFile(t *testing.T) {
	cfg := Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "fundsflow.log")
	cfg.LogLevel = zapcore.DebugLevel

	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	logger.Debug("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
