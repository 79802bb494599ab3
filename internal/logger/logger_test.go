package logger

import (
	"context"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLoggerIsUsableBeforeInitialize(t *testing.T) {
	assert.NotNil(t, Default())
	assert.NotPanics(t, func() {
		InfoCtx(context.Background(), "not initialized")
		Error(nil)
	})
}

func TestInitializeWithoutSentry(t *testing.T) {
	require.NoError(t, Initialize(Config{Debug: true}))
	assert.NotNil(t, Default())
	Flush(0)
}

func TestWithFieldsAccumulate(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	original := log
	log = zap.New(core)
	t.Cleanup(func() { log = original })

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithPurchase(ctx, "purchase-1")
	WarnCtx(ctx, "claim lost")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "purchase-1", fields["purchase_id"])
}

func TestWithFieldsNoop(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, WithFields(ctx))
}

func TestErrorWithoutErrUsesPlaceholder(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	original := log
	log = zap.New(core)
	t.Cleanup(func() { log = original })

	ErrorCtx(WithPurchase(context.Background(), "purchase-1"), nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "unknown error", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}

func TestInitializeWithSentryClient(t *testing.T) {
	client, err := sentry.NewClient(sentry.ClientOptions{})
	require.NoError(t, err)

	original, originalReporter := log, reporter
	t.Cleanup(func() { log, reporter = original, originalReporter })

	require.NoError(t, Initialize(Config{
		SentryClient: client,
		Tags:         map[string]string{"service": "sweeper"},
	}))
	assert.Same(t, client, reporter)

	assert.NotPanics(t, func() {
		ErrorCtx(context.Background(), assert.AnError)
		Flush(10 * time.Millisecond)
	})
}
