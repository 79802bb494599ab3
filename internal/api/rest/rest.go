package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-editions/internal/api/middleware"
	"github.com/feral-file/ff-editions/internal/ratelimit"
)

// POLL_RATE_LIMIT_SCOPE keys the per-user status poll limit
const POLL_RATE_LIMIT_SCOPE = "poll"

// SetupRoutes configures all REST API routes. pollLimiter may be nil.
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, pollLimiter ratelimit.Limiter) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1", middleware.Auth(authCfg))
	{
		v1.POST("/posts/:id/purchases", handler.ReservePurchase)
		v1.GET("/posts/:id/purchases/latest", handler.GetLatestPurchase)

		v1.POST("/purchases/:id/signature", handler.SubmitSignature)
		v1.GET("/purchases/:id", middleware.RateLimit(pollLimiter, POLL_RATE_LIMIT_SCOPE), handler.PollPurchase)
		v1.POST("/purchases/:id/cancel", handler.CancelPurchase)
		v1.POST("/purchases/:id/retry", handler.RetryFulfillment)
	}
}
