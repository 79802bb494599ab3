package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-editions/internal/adapter"
	"github.com/feral-file/ff-editions/internal/api/middleware"
	"github.com/feral-file/ff-editions/internal/api/server"
	"github.com/feral-file/ff-editions/internal/config"
	"github.com/feral-file/ff-editions/internal/logger"
	"github.com/feral-file/ff-editions/internal/messaging"
	"github.com/feral-file/ff-editions/internal/metadata"
	"github.com/feral-file/ff-editions/internal/notification"
	"github.com/feral-file/ff-editions/internal/providers/jetstream"
	"github.com/feral-file/ff-editions/internal/providers/minter"
	solanaprovider "github.com/feral-file/ff-editions/internal/providers/solana"
	"github.com/feral-file/ff-editions/internal/purchase"
	"github.com/feral-file/ff-editions/internal/ratelimit"
	"github.com/feral-file/ff-editions/internal/store"
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
	logger.InfoCtx(ctx, "Starting Feral File Editions API")

	// Connect to database
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

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(cfg.Minter.Timeout)
	solanaRPC := adapter.NewSolanaRPC(cfg.Solana.RPCURL)

	cfClient, err := adapter.NewCloudflareClient(cfg.Metadata.Cloudflare.APIToken)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create Cloudflare client", zap.Error(err))
	}

	// Solana
	commitment := rpc.CommitmentType(cfg.Solana.Commitment)
	chain := solanaprovider.NewClient(solanaRPC, solanaprovider.Config{
		Commitment:     commitment,
		RequestTimeout: cfg.Solana.RequestTimeout,
		MaxRetries:     cfg.Solana.MaxRetries,
	})
	txBuilder := solanaprovider.NewTransactionBuilder(solanaRPC, solanaprovider.PaymentConfig{
		PlatformWallet:  cfg.Solana.PlatformWallet,
		USDCMint:        cfg.Solana.USDCMint,
		USDCDecimals:    cfg.Purchase.USDCDecimals,
		PlatformFeeBps:  cfg.Purchase.PlatformFeeBps,
		MintFeeLamports: cfg.Purchase.MintFeeLamports,
		Commitment:      commitment,
	})

	// Push notifications are optional
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS not configured, push notifications are disabled")
	}

	purchases := purchase.NewService(purchase.Config{
		StaleThreshold:   cfg.Purchase.StaleThreshold,
		MintFeeLamports:  cfg.Purchase.MintFeeLamports,
		TxFeeLamports:    cfg.Purchase.TxFeeLamports,
		USDCMint:         cfg.Solana.USDCMint,
		NFTSymbol:        cfg.Metadata.Symbol,
		EffectsPoolSize:  cfg.Worker.WorkerPoolSize,
		EffectsQueueSize: cfg.Worker.WorkerQueueSize,
	}, purchase.Deps{
		Store:     dataStore,
		Chain:     chain,
		TxBuilder: txBuilder,
		Minter:    minter.NewClient(httpClient, jsonAdapter, cfg.Minter.URL, cfg.Minter.APIKey),
		Metadata:  metadata.NewBuilder(httpClient, jsonAdapter, cfg.Metadata.Symbol),
		Uploader: metadata.NewUploader(cfClient, metadata.UploaderConfig{
			AccountID:     cfg.Metadata.Cloudflare.AccountID,
			NamespaceID:   cfg.Metadata.Cloudflare.NamespaceID,
			PublicBaseURL: cfg.Metadata.PublicBaseURL,
		}),
		Dispatcher: notification.NewDispatcher(dataStore, publisher, clock),
		Clock:      clock,
		JSON:       jsonAdapter,
	})
	defer purchases.Close()

	// Poll rate limit, shared across replicas through Redis when configured
	var pollLimiter ratelimit.Limiter
	if cfg.Redis.PollLimitPerMinute > 0 {
		var redisClient adapter.RedisClient
		if cfg.Redis.Addr != "" {
			redisClient = adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
			defer func() {
				if err := redisClient.Close(); err != nil {
					logger.Warn("Failed to close Redis client", zap.Error(err))
				}
			}()
		}
		pollLimiter, err = ratelimit.NewLimiter(ratelimit.Config{PerMinute: cfg.Redis.PollLimitPerMinute}, redisClient, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create poll rate limiter", zap.Error(err))
		}
	}

	srv := server.New(server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}, purchases, pollLimiter)

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

	// Don't use the canceled ctx for shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.Info("API server stopped")
}
