package ratelimit_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-editions/internal/logger"
	"github.com/feral-file/ff-editions/internal/mocks"
	"github.com/feral-file/ff-editions/internal/ratelimit"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestLimiter_Distributed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRedis := mocks.NewMockRedisClient(ctrl)
	mockRate := mocks.NewMockRedisRateLimiter(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	mockRedis.EXPECT().NewRateLimiter().Return(mockRate).Times(1)
	mockRedis.EXPECT().Ping(gomock.Any()).Return(nil).Times(1)

	limiter, err := ratelimit.NewLimiter(ratelimit.Config{PerMinute: 60}, mockRedis, mockClock)
	require.NoError(t, err)

	gomock.InOrder(
		mockRate.EXPECT().
			Allow(gomock.Any(), "ff:editions:limiter:poll:user-1", redis_rate.PerMinute(60)).
			Return(&redis_rate.Result{Allowed: 1, Remaining: 59}, nil),
		mockRate.EXPECT().
			Allow(gomock.Any(), "ff:editions:limiter:poll:user-1", redis_rate.PerMinute(60)).
			Return(&redis_rate.Result{Allowed: 0, Remaining: 0, RetryAfter: 3 * time.Second}, nil),
	)

	decision := limiter.Allow(context.Background(), "poll:user-1")
	assert.True(t, decision.Allowed)
	assert.Equal(t, 59, decision.Remaining)

	decision = limiter.Allow(context.Background(), "poll:user-1")
	assert.False(t, decision.Allowed)
	assert.Equal(t, 3*time.Second, decision.RetryAfter)
}

func TestLimiter_FallsBackWhenRedisFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRedis := mocks.NewMockRedisClient(ctrl)
	mockRate := mocks.NewMockRedisRateLimiter(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	now := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

	mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return now }).AnyTimes()
	mockRedis.EXPECT().NewRateLimiter().Return(mockRate).Times(1)
	mockRedis.EXPECT().Ping(gomock.Any()).Return(nil).Times(1)

	limiter, err := ratelimit.NewLimiter(ratelimit.Config{PerMinute: 2}, mockRedis, mockClock)
	require.NoError(t, err)

	// Only the first call reaches Redis; the rest stay local until the retry interval passes
	mockRate.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused")).Times(1)

	assert.True(t, limiter.Allow(context.Background(), "k").Allowed)
	assert.True(t, limiter.Allow(context.Background(), "k").Allowed)
	decision := limiter.Allow(context.Background(), "k")
	assert.False(t, decision.Allowed)
	assert.Greater(t, decision.RetryAfter, time.Duration(0))

	// Other keys have their own budget
	assert.True(t, limiter.Allow(context.Background(), "other").Allowed)

	// Redis is tried again once the retry interval elapsed
	now = now.Add(15 * time.Second)
	mockRate.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Return(&redis_rate.Result{Allowed: 1, Remaining: 1}, nil).Times(1)
	assert.True(t, limiter.Allow(context.Background(), "k").Allowed)
}

func TestLimiter_WithoutRedis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClock := mocks.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)).AnyTimes()

	limiter, err := ratelimit.NewLimiter(ratelimit.Config{PerMinute: 1}, nil, mockClock)
	require.NoError(t, err)

	assert.True(t, limiter.Allow(context.Background(), "k").Allowed)
	assert.False(t, limiter.Allow(context.Background(), "k").Allowed)
}

func TestNewLimiter_InvalidConfig(t *testing.T) {
	_, err := ratelimit.NewLimiter(ratelimit.Config{}, nil, nil)
	assert.ErrorContains(t, err, "per_minute")
}

func TestLimiter_EvictsIdleLocalBuckets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	mockClock := mocks.NewMockClock(ctrl)
	mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return now }).AnyTimes()

	limiter, err := ratelimit.NewLimiter(ratelimit.Config{PerMinute: 1}, nil, mockClock)
	require.NoError(t, err)

	for _, key := range []string{"poll:user-1", "poll:user-2", "poll:user-3"} {
		assert.True(t, limiter.Allow(context.Background(), key).Allowed)
	}
	assert.Equal(t, 3, ratelimit.LocalKeys(limiter))

	// user-1 keeps polling, the others go quiet
	now = now.Add(90 * time.Second)
	assert.True(t, limiter.Allow(context.Background(), "poll:user-1").Allowed)

	now = now.Add(90 * time.Second)
	assert.True(t, limiter.Allow(context.Background(), "poll:user-4").Allowed)
	assert.Equal(t, 2, ratelimit.LocalKeys(limiter))

	// An evicted key starts from a full bucket
	assert.True(t, limiter.Allow(context.Background(), "poll:user-2").Allowed)
	assert.False(t, limiter.Allow(context.Background(), "poll:user-2").Allowed)
}
