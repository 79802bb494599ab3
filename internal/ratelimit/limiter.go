package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-editions/internal/adapter"
	"github.com/feral-file/ff-editions/internal/logger"
)

const (
	DEFAULT_KEY_PREFIX = "ff:editions:limiter:"

	// redisRetryInterval is how long the limiter stays on the local fallback after a Redis error
	redisRetryInterval = 10 * time.Second

	// localIdleTTL is how long an unused local bucket is kept. A bucket refills
	// completely within a minute, so dropping it after that loses no state.
	localIdleTTL = 2 * time.Minute
)

// Config holds rate limiter configuration
type Config struct {
	// PerMinute is the number of requests a key may make per minute
	PerMinute int
	// KeyPrefix namespaces the Redis keys
	KeyPrefix string
}

// Decision is the outcome of a rate limit check
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter limits requests per key. It uses Redis so the limit holds across API
// replicas and falls back to an in-process limiter while Redis is unreachable.
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one request for the key
	Allow(ctx context.Context, key string) Decision
}

type limiter struct {
	config      Config
	distributed adapter.RedisRateLimiter
	clock       adapter.Clock

	redisDown  atomic.Bool
	retryRedis atomic.Int64 // unix nanos after which Redis is tried again

	mu        sync.Mutex
	local     map[string]*localBucket
	lastSweep time.Time
}

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLimiter creates a new limiter. rc may be nil, in which case only the local limiter is used.
func NewLimiter(cfg Config, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if cfg.PerMinute <= 0 {
		return nil, fmt.Errorf("per_minute must be positive")
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DEFAULT_KEY_PREFIX
	}

	l := &limiter{
		config: cfg,
		clock:  clock,
		local:  make(map[string]*localBucket),
	}

	if rc == nil {
		l.redisDown.Store(true)
		l.retryRedis.Store(1<<63 - 1)
		logger.Warn("Redis not configured, rate limits are enforced per process")
		return l, nil
	}

	l.distributed = rc.NewRateLimiter()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		l.markRedisDown(err)
	}

	return l, nil
}

func (l *limiter) Allow(ctx context.Context, key string) Decision {
	if l.useRedis() {
		res, err := l.distributed.Allow(ctx, l.config.KeyPrefix+key, redis_rate.PerMinute(l.config.PerMinute))
		if err == nil {
			return Decision{
				Allowed:    res.Allowed > 0,
				Remaining:  res.Remaining,
				RetryAfter: res.RetryAfter,
			}
		}
		if ctx.Err() != nil {
			// The caller went away, let the request through rather than count it
			return Decision{Allowed: true}
		}
		l.markRedisDown(err)
	}

	return l.allowLocal(key)
}

func (l *limiter) useRedis() bool {
	if !l.redisDown.Load() {
		return true
	}
	if l.clock.Now().UnixNano() < l.retryRedis.Load() {
		return false
	}
	if l.redisDown.CompareAndSwap(true, false) {
		logger.Info("Retrying Redis rate limiter")
	}
	return true
}

func (l *limiter) markRedisDown(err error) {
	l.retryRedis.Store(l.clock.Now().Add(redisRetryInterval).UnixNano())
	if l.redisDown.CompareAndSwap(false, true) {
		logger.Warn("Redis rate limiter unavailable, falling back to local", zap.Error(err))
	}
}

func (l *limiter) allowLocal(key string) Decision {
	now := l.clock.Now()

	l.mu.Lock()
	l.evictIdle(now)
	b, ok := l.local[key]
	if !ok {
		b = &localBucket{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.config.PerMinute)), l.config.PerMinute),
		}
		l.local[key] = b
	}
	b.lastSeen = now
	lim := b.limiter
	l.mu.Unlock()

	r := lim.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return Decision{Allowed: false, RetryAfter: delay}
	}

	return Decision{Allowed: true, Remaining: int(lim.TokensAt(now))}
}

// evictIdle drops buckets unused for localIdleTTL. Callers hold l.mu.
func (l *limiter) evictIdle(now time.Time) {
	if now.Sub(l.lastSweep) < localIdleTTL {
		return
	}
	l.lastSweep = now

	for key, b := range l.local {
		if now.Sub(b.lastSeen) >= localIdleTTL {
			delete(l.local, key)
		}
	}
}
