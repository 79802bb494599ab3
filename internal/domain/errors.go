package domain

import (
	"errors"
	"strings"
)

var (
	// ErrPostNotFound is returned when a post does not exist
	ErrPostNotFound = errors.New("post not found")

	// ErrPurchaseNotFound is returned when a purchase does not exist
	ErrPurchaseNotFound = errors.New("purchase not found")

	// ErrNotEdition is returned when purchasing a post that is not an edition
	ErrNotEdition = errors.New("post is not an edition")

	// ErrSoldOut is returned when the edition supply is exhausted
	ErrSoldOut = errors.New("sold out")

	// ErrInsufficientFunds is returned when the buyer cannot cover price and fees
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWalletNotVerified is returned when the buyer wallet is not linked to the user
	ErrWalletNotVerified = errors.New("wallet not verified")

	// ErrAuthRequired is returned when no buyer identity or wallet can be resolved
	ErrAuthRequired = errors.New("authentication required")

	// ErrForbidden is returned when a user acts on a purchase they do not own
	ErrForbidden = errors.New("forbidden")

	// ErrNotCancelable is returned when a purchase can no longer be canceled
	ErrNotCancelable = errors.New("purchase cannot be canceled")

	// ErrInvalidSignature is returned when a transaction signature is malformed
	ErrInvalidSignature = errors.New("invalid transaction signature")

	// ErrPurchaseClosed is returned when a terminal purchase is modified
	ErrPurchaseClosed = errors.New("purchase is already closed")

	// ErrPaymentNotConfirmed is returned when fulfillment is requested without a landed payment
	ErrPaymentNotConfirmed = errors.New("payment not confirmed")

	// ErrMissingWallet is returned when the buyer or creator has no wallet to mint with
	ErrMissingWallet = errors.New("missing wallet")
)

// TransientError marks a collaborator failure that is expected to succeed on retry
// (RPC timeouts, propagation delay, rate limits, expired blockhash)
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// PermanentError marks a collaborator failure that will not succeed on retry
// (invalid account, unexpected program owner, simulation failure)
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// NewTransientError wraps err as retryable
func NewTransientError(err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Err: err}
}

// NewPermanentError wraps err as non-retryable
func NewPermanentError(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// retryableMessageHints are matched against untyped errors, lower-cased
var retryableMessageHints = []string{
	"expired",
	"timeout",
	"timed out",
	"block height",
	"blockhash not found",
	"not found",
	"account not found",
	"accountnotfound",
	"rate limit",
	"too many requests",
	"connection reset",
	"context deadline exceeded",
}

// IsRetryable classifies an error from the minting pipeline.
// Typed errors win; untyped errors fall back to message hints.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var permanent *PermanentError
	if errors.As(err, &permanent) {
		return false
	}

	var transient *TransientError
	if errors.As(err, &transient) {
		return true
	}

	if errors.Is(err, ErrMissingWallet) {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, hint := range retryableMessageHints {
		if strings.Contains(msg, hint) {
			return true
		}
	}

	return false
}
