package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/adapter"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/api/middleware"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/api/server"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/api/shared/executor"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/config"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/logger"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/node"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/registry"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/store"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadOSNFTDConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "osnftd",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting OSNFT ledger daemon")

	nodeCfg, err := cfg.Ledger.NodeConfig()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid ledger configuration", zap.Error(err))
	}

	// Initialize adapters
	fileSystem := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	approvers, err := loadApproverRegistry(fileSystem, jsonAdapter, cfg.Ledger.ApproverRegistryPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load approver registry",
			zap.Error(err),
			zap.String("path", cfg.Ledger.ApproverRegistryPath))
	}

	ledger, err := node.New(nodeCfg, clock, jsonAdapter, approvers)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ledger", zap.Error(err))
	}

	// Persistence is optional; without a database the ledger lives in memory
	var dataStore store.Store
	var persister node.Persister
	if cfg.Database.Enabled() {
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
		}
		if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
			logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to database",
			zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
			zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
		)

		dataStore = store.NewPGStore(db, jsonAdapter, adapter.NewJCS())
		persister = dataStore
		ledger.Attach(persister)
	} else {
		logger.WarnCtx(ctx, "Database not configured, ledger state will be lost on shutdown")
	}

	if err := ledger.Bootstrap(ctx, persister); err != nil {
		logger.FatalCtx(ctx, "Failed to bootstrap ledger", zap.Error(err))
	}

	var events executor.EventReader
	if dataStore != nil {
		events = dataStore
	}

	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}, executor.NewExecutor(ledger, approvers, events))

	errCh := make(chan error, 2)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	var keeper sweeper.Sweeper
	if cfg.Keeper.Enabled {
		keeperAddr, err := cfg.Keeper.KeeperAddress()
		if err != nil {
			logger.FatalCtx(ctx, "Invalid keeper configuration", zap.Error(err))
		}
		keeper = sweeper.NewAuctionKeeper(&sweeper.AuctionKeeperConfig{
			Keeper:         keeperAddr,
			Interval:       cfg.Keeper.Interval,
			WorkerPoolSize: cfg.Keeper.WorkerPoolSize,
			RetryInterval:  cfg.Keeper.RetryInterval,
			MaxRetries:     cfg.Keeper.MaxRetries,
		}, ledger, clock)
		logger.InfoCtx(ctx, "Initialized auction keeper",
			zap.String("keeper", keeperAddr.Hex()),
			zap.Duration("interval", cfg.Keeper.Interval),
			zap.Int("worker_pool_size", cfg.Keeper.WorkerPoolSize),
		)

		go func() {
			if err := keeper.Start(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err)
	}
	cancel()

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if keeper != nil {
		if err := keeper.Stop(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err, zap.String("component", keeper.Name()))
		}
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	logger.Info("OSNFT ledger daemon stopped", zap.Uint64("height", ledger.Height()))
}

// loadApproverRegistry reads the registry file, starting an empty one when the file does not exist yet
func loadApproverRegistry(fileSystem adapter.FileSystem, jsonAdapter adapter.JSON, path string) (*registry.Registry, error) {
	if path == "" {
		logger.Warn("Approver registry path not configured, approvals will be kept in memory")
		return registry.NewRegistry(fileSystem, jsonAdapter, ""), nil
	}

	r, err := registry.Load(fileSystem, jsonAdapter, path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Approver registry file not found, starting empty", zap.String("path", path))
		return registry.NewRegistry(fileSystem, jsonAdapter, path), nil
	}
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded approver registry", zap.String("path", path))
	return r, nil
}
