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
	"github.com/intrana/discovery-backend/internal/api/server"
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
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Discovery API")

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

	// Initialize reconciliation engine
	engineConfig := &reconcile.Config{
		Interval:           cfg.Reconcile.Interval,
		LookbackWindow:     cfg.Reconcile.LookbackWindow,
		VerifyContractCode: cfg.Reconcile.VerifyContractCode,
		WorkerPoolSize:     cfg.Reconcile.Worker.WorkerPoolSize,
		WorkerQueueSize:    cfg.Reconcile.Worker.WorkerQueueSize,
	}
	engine := reconcile.NewEngine(engineConfig, dataStore, subgraphClient, chainClient, clock)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Chain:        cfg.Ethereum.ChainID,
	}

	// Create and start server
	srv := server.New(serverConfig, dataStore, subgraphClient, engine)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
