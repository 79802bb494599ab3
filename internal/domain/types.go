package domain

import (
	"strings"
	"time"
)

// PostType represents the kind of a post
type PostType string

const (
	PostTypePost        PostType = "post"
	PostTypeCollectible PostType = "collectible"
	PostTypeEdition     PostType = "edition"
)

// Currency represents the currency an edition is priced in
type Currency string

const (
	CurrencySOL  Currency = "SOL"
	CurrencyUSDC Currency = "USDC"
)

// IsValidCurrency checks if a currency is supported for edition purchases
func IsValidCurrency(currency Currency) bool {
	return currency == CurrencySOL || currency == CurrencyUSDC
}

// ConfirmationStatus is the on-chain status of a payment transaction
type ConfirmationStatus string

const (
	ConfirmationPending   ConfirmationStatus = "pending"
	ConfirmationConfirmed ConfirmationStatus = "confirmed"
	ConfirmationFinalized ConfirmationStatus = "finalized"
	ConfirmationFailed    ConfirmationStatus = "failed"
)

// Landed reports whether the transaction is at least confirmed
func (s ConfirmationStatus) Landed() bool {
	return s == ConfirmationConfirmed || s == ConfirmationFinalized
}

// IsStale reports whether the time elapsed since at exceeds the threshold.
// A nil timestamp is never stale.
func IsStale(now time.Time, at *time.Time, threshold time.Duration) bool {
	if at == nil {
		return false
	}
	return now.Sub(*at) > threshold
}

// FirstNonNil returns the first non-nil timestamp
func FirstNonNil(timestamps ...*time.Time) *time.Time {
	for _, ts := range timestamps {
		if ts != nil {
			return ts
		}
	}
	return nil
}

// TruncateRunes shortens s to at most n runes
func TruncateRunes(s string, n int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n]))
}
