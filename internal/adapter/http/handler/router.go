package handler

import (
	"nft-lifecycle-engine/internal/adapter/http/middleware"
	"nft-lifecycle-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LifecycleSvc   ports.LifecycleService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis + chain RPC)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// All lifecycle routes act on behalf of an explicit wallet identity.
	lifecycleHandler := NewLifecycleHandler(deps.LifecycleSvc)
	v1 := r.Group("/api/v1", middleware.WalletSession())

	assets := v1.Group("/assets")
	{
		assets.GET("", lifecycleHandler.GetState)
		assets.POST("/:id/stake", lifecycleHandler.Stake)
		assets.POST("/:id/unstake", lifecycleHandler.Unstake)
		assets.POST("/:id/claim", lifecycleHandler.Claim)
	}

	v1.POST("/burns", lifecycleHandler.Burn)
	v1.POST("/reconcile", lifecycleHandler.Reconcile)
	v1.GET("/stakes/summary", lifecycleHandler.GetStakeSummary)

	return r
}
