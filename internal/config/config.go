// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/wallet"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// DefaultWalletAccount is the account the mock wallet grants when none is
// configured.
const DefaultWalletAccount = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"

type Config struct {
	DBPath         string
	LogLevel       zapcore.Level
	LogFile        string
	WalletDelay    time.Duration
	WalletAccounts []string
	Listen         string
	Dashboard      domain.Dashboard
}

// Default returns the settings used when nothing is configured. The
// database lives under ~/.fundsflow when the home directory is known.
func Default() Config {
	dbPath := filepath.Join(".fundsflow", "fundsflow.db")
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".fundsflow", "fundsflow.db")
	}
	return Config{
		DBPath:         dbPath,
		LogLevel:       zapcore.InfoLevel,
		WalletDelay:    wallet.DefaultDelay,
		WalletAccounts: []string{DefaultWalletAccount},
		Listen:         ":8080",
		Dashboard:      domain.DashboardGovernment,
	}
}

// Load applies env files (".env" when none are given) and then reads
// FUNDSFLOW_* variables over the defaults. Variables already set in the
// process win over file values. Missing env files are not an error;
// malformed ones are. Unparseable numeric values fall back to defaults.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := Default()

	if v := os.Getenv("FUNDSFLOW_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("FUNDSFLOW_LOG_LEVEL"); v != "" {
		if lvl, err := zapcore.ParseLevel(v); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v := os.Getenv("FUNDSFLOW_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("FUNDSFLOW_WALLET_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.WalletDelay = time.Duration(n) * time.Millisecond
		}
	}
	if v, ok := os.LookupEnv("FUNDSFLOW_WALLET_ACCOUNTS"); ok {
		cfg.WalletAccounts = splitList(v)
	}
	if v := os.Getenv("FUNDSFLOW_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("FUNDSFLOW_DASHBOARD"); v != "" {
		d := domain.Dashboard(strings.ToLower(v))
		if !d.Valid() {
			return Config{}, fmt.Errorf("FUNDSFLOW_DASHBOARD: unknown dashboard %q", v)
		}
		cfg.Dashboard = d
	}

	return cfg, nil
}

// splitList splits a comma-separated list, dropping blanks. An empty
// value yields no accounts, which makes wallet connects fail.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
