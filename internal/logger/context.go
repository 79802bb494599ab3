package logger

import (
	"context"

	"go.uber.org/zap"
)

type fieldsKey struct{}

// WithFields returns a context whose *Ctx log lines carry the given fields.
// Fields accumulate across calls.
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	if len(fields) == 0 {
		return ctx
	}

	existing := fieldsFromContext(ctx)
	merged := make([]zap.Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)

	return context.WithValue(ctx, fieldsKey{}, merged)
}

func fieldsFromContext(ctx context.Context) []zap.Field {
	fields, _ := ctx.Value(fieldsKey{}).([]zap.Field)
	return fields
}

// WithPurchase scopes log lines to a purchase
func WithPurchase(ctx context.Context, purchaseID string) context.Context {
	return WithFields(ctx, zap.String("purchase_id", purchaseID))
}

// WithRequestID scopes log lines to an API request
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return WithFields(ctx, zap.String("request_id", requestID))
}
