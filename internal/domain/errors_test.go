package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "typed transient",
			err:      NewTransientError(errors.New("rpc unavailable")),
			expected: true,
		},
		{
			name:     "typed permanent wins over retryable message",
			err:      NewPermanentError(errors.New("account not found")),
			expected: false,
		},
		{
			name:     "wrapped transient",
			err:      fmt.Errorf("failed to mint edition: %w", NewTransientError(errors.New("boom"))),
			expected: true,
		},
		{
			name:     "block height exceeded message",
			err:      errors.New("Signature has expired: block height exceeded"),
			expected: true,
		},
		{
			name:     "timeout message",
			err:      errors.New("request Timeout while confirming"),
			expected: true,
		},
		{
			name:     "account not found message",
			err:      errors.New("AccountNotFound: collection account"),
			expected: true,
		},
		{
			name:     "context deadline",
			err:      fmt.Errorf("failed: %w", context.DeadlineExceeded),
			expected: true,
		},
		{
			name:     "simulation failure",
			err:      errors.New("Transaction simulation failed: custom program error 0x1"),
			expected: false,
		},
		{
			name:     "missing wallet",
			err:      fmt.Errorf("buyer: %w", ErrMissingWallet),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRetryable(tt.err))
		})
	}
}

func TestTypedErrorsUnwrap(t *testing.T) {
	base := errors.New("base")
	assert.ErrorIs(t, NewTransientError(base), base)
	assert.ErrorIs(t, NewPermanentError(base), base)
	assert.Nil(t, NewTransientError(nil))
	assert.Nil(t, NewPermanentError(nil))
}
