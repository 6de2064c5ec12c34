package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fundsflow/fundsflow/internal/cli"
	"github.com/fundsflow/fundsflow/internal/config"
	"github.com/fundsflow/fundsflow/internal/db"
	"github.com/fundsflow/fundsflow/internal/repository"
	"github.com/fundsflow/fundsflow/internal/service"
	"github.com/fundsflow/fundsflow/internal/wallet"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	interactive := func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Keep the explorer screen clean: in a terminal, log to a file next to
	// the database unless a log file is configured.
	if cfg.LogFile == "" && interactive() {
		cfg.LogFile = filepath.Join(filepath.Dir(cfg.DBPath), "fundsflow.log")
	}
	logger, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	treeRepo := repository.NewSQLiteFundTreeRepo(database)
	ledgerRepo := repository.NewSQLiteLedgerRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsObserver, err := service.NewMetricsUseCaseObserver(reg)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}
	observer := service.MultiUseCaseObserver(service.NewLogUseCaseObserver(logger), metricsObserver)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider := wallet.NewMockProvider(
		wallet.WithAccounts(cfg.WalletAccounts...),
		wallet.WithDelay(cfg.WalletDelay),
	)
	session := wallet.NewSession(provider, logger)
	_ = session.Restore(ctx)
	go func() {
		if err := session.Watch(ctx); err != nil {
			logger.Warn("wallet watch stopped", zap.Error(err))
		}
	}()

	trees := service.NewTreeService(treeRepo, uow, observer)
	app := &cli.App{
		Trees:         trees,
		Contributions: service.NewContributionService(ledgerRepo, uow, session, observer),
		Exports:       service.NewExportService(trees, ledgerRepo, observer),
		Anomalies:     service.NewAnomalyService(trees),
		Wallet:        session,
		Config:        cfg,
		Log:           logger,
		Registry:      reg,
		IsInteractive: interactive,
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
