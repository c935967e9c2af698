package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/intrana/discovery-backend/internal/adapter"
	"github.com/intrana/discovery-backend/internal/config"
	"github.com/intrana/discovery-backend/internal/logger"
	"github.com/intrana/discovery-backend/internal/providers/ethereum"
	"github.com/intrana/discovery-backend/internal/reconcile"
	"github.com/intrana/discovery-backend/internal/store"
	"github.com/intrana/discovery-backend/internal/subgraph"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadReconcilerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "reconciler",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Reconciler")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	httpClient := adapter.NewHTTPClient(cfg.Subgraph.HTTPTimeout)
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	// Initialize subgraph client
	subgraphClient := subgraph.NewClient(httpClient, cfg.Subgraph.URL, jsonAdapter)
	logger.InfoCtx(ctx, "Initialized subgraph client", zap.String("url", cfg.Subgraph.URL))

	// Optionally connect to an Ethereum node for contract code verification
	var chainClient ethereum.EthereumClient
	if cfg.Reconcile.VerifyContractCode {
		ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to Ethereum node", zap.Error(err), zap.String("rpc_url", cfg.Ethereum.RPCURL))
		}
		chainClient = ethereum.NewClient(cfg.Ethereum.ChainID, ethClient)
		defer chainClient.Close()

		if err := chainClient.VerifyChainID(ctx); err != nil {
			logger.FatalCtx(ctx, "Ethereum node chain mismatch", zap.Error(err), zap.String("chain_id", string(cfg.Ethereum.ChainID)))
		}
		logger.InfoCtx(ctx, "Connected to Ethereum node", zap.String("chain_id", string(cfg.Ethereum.ChainID)))
	}

	// Initialize reconciliation engine and scheduler
	engineConfig := &reconcile.Config{
		Interval:           cfg.Reconcile.Interval,
		LookbackWindow:     cfg.Reconcile.LookbackWindow,
		VerifyContractCode: cfg.Reconcile.VerifyContractCode,
		WorkerPoolSize:     cfg.Reconcile.Worker.WorkerPoolSize,
		WorkerQueueSize:    cfg.Reconcile.Worker.WorkerQueueSize,
	}
	engine := reconcile.NewEngine(engineConfig, dataStore, subgraphClient, chainClient, clock)
	scheduler := reconcile.NewScheduler(engine, cfg.Reconcile.Interval, clock)

	logger.InfoCtx(ctx, "Initialized reconcile scheduler (continuous mode)",
		zap.Duration("interval", cfg.Reconcile.Interval),
		zap.Int("lookback_window", cfg.Reconcile.LookbackWindow),
		zap.Int("worker_pool_size", cfg.Reconcile.Worker.WorkerPoolSize),
	)

	// Start the scheduler in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := scheduler.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the scheduler
	cancel()

	// Give the scheduler time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := scheduler.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Reconciler stopped")
}
