package logger

import (
	"context"
	"time"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultService = "ff-editions"

var (
	// log discards everything until Initialize runs, so packages can log from tests and init paths
	log = zap.NewNop()
	// reporter is set only when error reporting is enabled
	reporter *sentry.Client
)

// Config holds logger configuration
type Config struct {
	Debug     bool
	SentryDSN string
	// SentryClient replaces the client built from SentryDSN, mostly for tests
	SentryClient *sentry.Client
	// BreadcrumbLevel is the lowest level kept as context on reported errors. Defaults to info.
	BreadcrumbLevel zapcore.Level
	// Tags are attached to every reported error. "service" defaults to ff-editions.
	Tags map[string]string
}

// Initialize replaces the global logger. Errors and above go to Sentry when a DSN or client is given.
func Initialize(cfg Config) error {
	base, err := newBaseLogger(cfg.Debug)
	if err != nil {
		return err
	}

	if cfg.SentryDSN == "" && cfg.SentryClient == nil {
		log = base
		return nil
	}

	client := cfg.SentryClient
	if client == nil {
		client, err = sentry.NewClient(sentry.ClientOptions{
			Dsn:   cfg.SentryDSN,
			Debug: cfg.Debug,
		})
		if err != nil {
			return err
		}
	}

	withSentry, err := attachSentry(base, client, cfg)
	if err != nil {
		return err
	}

	reporter = client
	log = withSentry
	return nil
}

func newBaseLogger(debug bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		zc = zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

func attachSentry(base *zap.Logger, client *sentry.Client, cfg Config) (*zap.Logger, error) {
	tags := map[string]string{"service": defaultService}
	for k, v := range cfg.Tags {
		tags[k] = v
	}

	breadcrumbs := cfg.BreadcrumbLevel
	if breadcrumbs == zapcore.InvalidLevel {
		breadcrumbs = zapcore.InfoLevel
	}

	core, err := zapsentry.NewCore(zapsentry.Configuration{
		Level:             zapcore.ErrorLevel,
		EnableBreadcrumbs: true,
		BreadcrumbLevel:   breadcrumbs,
		Tags:              tags,
	}, zapsentry.NewSentryClientFromClient(client))
	if err != nil {
		return nil, err
	}

	return zapsentry.AttachCoreToLogger(core, base), nil
}

// Flush waits up to timeout for queued Sentry events
func Flush(timeout time.Duration) {
	if reporter != nil {
		reporter.Flush(timeout)
	}
}

// FromContext returns the global logger carrying the Sentry scope and the fields added with WithFields
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return log
	}

	fields := append([]zap.Field{zapsentry.Context(ctx)}, fieldsFromContext(ctx)...)
	return log.With(fields...)
}

// Default returns the global logger
func Default() *zap.Logger {
	return log
}

func errorMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

func InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Info(msg, fields...)
}

// Error logs err as the message, which is what Sentry groups issues by
func Error(err error, fields ...zap.Field) {
	log.Error(errorMessage(err), fields...)
}

func ErrorCtx(ctx context.Context, err error, fields ...zap.Field) {
	FromContext(ctx).Error(errorMessage(err), fields...)
}

// Fatal exits the process after logging
func Fatal(msg string, fields ...zap.Field) {
	log.Fatal(msg, fields...)
}

func FatalCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Fatal(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	log.Warn(msg, fields...)
}

func WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Warn(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}

func DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Debug(msg, fields...)
}
