package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nft-lifecycle-engine/config"
	chainAdapter "nft-lifecycle-engine/internal/adapter/chain"
	httpHandler "nft-lifecycle-engine/internal/adapter/http/handler"
	"nft-lifecycle-engine/internal/adapter/metadata"
	pgStorage "nft-lifecycle-engine/internal/adapter/storage/postgres"
	redisStorage "nft-lifecycle-engine/internal/adapter/storage/redis"
	"nft-lifecycle-engine/internal/core/domain"
	"nft-lifecycle-engine/internal/core/ports"
	"nft-lifecycle-engine/internal/service"
	"nft-lifecycle-engine/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting NFT Lifecycle Engine")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize chain client pool and gateway
	clientPool, err := chainAdapter.Dial(ctx, cfg.Chain, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to chain RPC")
	}
	defer clientPool.Close()
	gateway, err := chainAdapter.NewGateway(clientPool, cfg.Chain, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize chain gateway")
	}
	log.Info().Msg("Chain gateway ready")

	// Initialize repositories
	assetRepo := pgStorage.NewAssetRepo(pool)
	stakeRepo := pgStorage.NewStakeRecordRepo(pool)
	burnRepo := pgStorage.NewBurnRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis caches
	approvalCache := redisStorage.NewApprovalCache(rdb)
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)

	// Initialize metadata resolver
	resolver := metadata.NewHTTPResolver(log)

	// Initialize business services
	viewCache := service.NewViewCache(log)
	approvalSvc := service.NewApprovalService(gateway, approvalCache, cfg.Chain.ApprovalTTL, log)
	reconciler := service.NewReconciler(
		gateway,
		resolver,
		stakeRepo,
		cfg.Rewards.DailyRates,
		domain.Rarity(cfg.Rewards.DefaultRarity),
		log,
	)
	burnSvc := service.NewBurnService(
		gateway,
		assetRepo,
		burnRepo,
		idempotencyCache,
		transactor,
		toBurnRules(cfg.Burn.Rules),
		cfg.Burn.IdempotencyTTL,
		log,
	)
	lifecycleSvc := service.NewLifecycleService(
		assetRepo,
		stakeRepo,
		transactor,
		gateway,
		approvalSvc,
		reconciler,
		burnSvc,
		viewCache,
		cfg.Rewards.DailyRates,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)
	chainHealth := chainAdapter.NewHealthCheck(clientPool)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LifecycleSvc:   lifecycleSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth, chainHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// toBurnRules converts configured burn rules into domain rules.
func toBurnRules(rules []config.BurnRuleConfig) []domain.BurnRule {
	out := make([]domain.BurnRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, domain.BurnRule{
			MinRarity:       domain.Rarity(r.MinRarity),
			RequiredAmount:  r.RequiredAmount,
			ResultingRarity: domain.Rarity(r.ResultingRarity),
		})
	}
	return out
}
