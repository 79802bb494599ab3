package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-editions/internal/api/shared/errors"
	"github.com/feral-file/ff-editions/internal/logger"
	"github.com/feral-file/ff-editions/internal/ratelimit"
)

// RateLimit limits requests per authenticated user under the given scope. Must run after Auth.
func RateLimit(limiter ratelimit.Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := UserID(c)
		if limiter == nil || userID == "" {
			c.Next()
			return
		}

		decision := limiter.Allow(c.Request.Context(), scope+":"+userID)
		if !decision.Allowed {
			retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			logger.WarnCtx(c.Request.Context(), "Rate limit exceeded",
				zap.String("scope", scope),
				zap.Int("retry_after_seconds", retryAfter))

			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierrors.NewRateLimitedError("Too many requests").Response())
			return
		}

		c.Next()
	}
}
