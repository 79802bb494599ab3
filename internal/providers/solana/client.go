package solana

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/feral-file/ff-editions/internal/adapter"
	"github.com/feral-file/ff-editions/internal/domain"
	"github.com/feral-file/ff-editions/internal/logger"
)

// Config holds the Solana client configuration
type Config struct {
	Commitment     rpc.CommitmentType
	RequestTimeout time.Duration
	MaxRetries     uint64
}

// Client defines the blockchain queries used by the purchase flow
//
//go:generate mockgen -source=client.go -destination=../../mocks/solana_client.go -package=mocks -mock_names=Client=MockSolanaClient
type Client interface {
	// NativeBalance returns the lamport balance of an address
	NativeBalance(ctx context.Context, address string) (uint64, error)

	// HasNativeBalance reports whether the address holds at least required lamports
	HasNativeBalance(ctx context.Context, address string, required uint64) (bool, error)

	// TokenBalance returns the total base-unit balance of a token over all accounts of the owner
	TokenBalance(ctx context.Context, owner string, mint string) (uint64, error)

	// ConfirmationStatus returns the on-chain status of a transaction signature
	ConfirmationStatus(ctx context.Context, signature string) (domain.ConfirmationStatus, error)
}

type client struct {
	rpc    adapter.SolanaRPC
	config Config
}

// NewClient creates a new Solana client
func NewClient(rpcClient adapter.SolanaRPC, cfg Config) Client {
	if cfg.Commitment == "" {
		cfg.Commitment = rpc.CommitmentConfirmed
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	return &client{rpc: rpcClient, config: cfg}
}

// ParsePublicKey validates a base58 account address
func ParsePublicKey(address string) (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid address %q: %w", address, err)
	}
	return key, nil
}

// ParseSignature validates a base58 transaction signature
func ParseSignature(signature string) (solana.Signature, error) {
	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}
	if sig.IsZero() {
		return solana.Signature{}, domain.ErrInvalidSignature
	}
	return sig, nil
}

// withRetry runs an RPC call with per-attempt timeouts and exponential backoff.
// Errors that survive every attempt are marked transient.
func (c *client) withRetry(ctx context.Context, name string, operation func(ctx context.Context) error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = 3 * c.config.RequestTimeout

	var policy backoff.BackOff = b
	if c.config.MaxRetries > 0 {
		policy = backoff.WithMaxRetries(b, c.config.MaxRetries)
	}

	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		callCtx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
		defer cancel()

		err := operation(callCtx)
		if err == nil {
			return nil
		}

		var permanent *domain.PermanentError
		if errors.As(err, &permanent) {
			return backoff.Permanent(err)
		}

		logger.DebugCtx(ctx, "Solana RPC call failed",
			zap.String("method", name),
			zap.Int("attempt", attempt),
			zap.Error(err))
		return err
	}, backoff.WithContext(policy, ctx))
	if err == nil {
		return nil
	}

	var permanent *domain.PermanentError
	if errors.As(err, &permanent) {
		return err
	}
	return domain.NewTransientError(fmt.Errorf("%s failed: %w", name, err))
}

func (c *client) NativeBalance(ctx context.Context, address string) (uint64, error) {
	account, err := ParsePublicKey(address)
	if err != nil {
		return 0, domain.NewPermanentError(err)
	}

	var balance uint64
	err = c.withRetry(ctx, "getBalance", func(ctx context.Context) error {
		result, err := c.rpc.GetBalance(ctx, account, c.config.Commitment)
		if err != nil {
			return err
		}
		balance = result.Value
		return nil
	})
	if err != nil {
		return 0, err
	}

	return balance, nil
}

func (c *client) HasNativeBalance(ctx context.Context, address string, required uint64) (bool, error) {
	balance, err := c.NativeBalance(ctx, address)
	if err != nil {
		return false, err
	}
	return balance >= required, nil
}

func (c *client) TokenBalance(ctx context.Context, owner string, mint string) (uint64, error) {
	ownerKey, err := ParsePublicKey(owner)
	if err != nil {
		return 0, domain.NewPermanentError(err)
	}
	mintKey, err := ParsePublicKey(mint)
	if err != nil {
		return 0, domain.NewPermanentError(err)
	}

	var accounts []*rpc.TokenAccount
	err = c.withRetry(ctx, "getTokenAccountsByOwner", func(ctx context.Context) error {
		result, err := c.rpc.GetTokenAccountsByOwner(ctx, ownerKey,
			&rpc.GetTokenAccountsConfig{Mint: mintKey.ToPointer()},
			&rpc.GetTokenAccountsOpts{Encoding: solana.EncodingBase64, Commitment: c.config.Commitment})
		if err != nil {
			return err
		}
		accounts = result.Value
		return nil
	})
	if err != nil {
		return 0, err
	}

	var total uint64
	for _, account := range accounts {
		if account == nil {
			continue
		}

		var amount uint64
		err := c.withRetry(ctx, "getTokenAccountBalance", func(ctx context.Context) error {
			result, err := c.rpc.GetTokenAccountBalance(ctx, account.Pubkey, c.config.Commitment)
			if err != nil {
				return err
			}
			if result == nil || result.Value == nil {
				amount = 0
				return nil
			}
			parsed, err := strconv.ParseUint(result.Value.Amount, 10, 64)
			if err != nil {
				return domain.NewPermanentError(fmt.Errorf("invalid token amount %q: %w", result.Value.Amount, err))
			}
			amount = parsed
			return nil
		})
		if err != nil {
			return 0, err
		}
		total += amount
	}

	return total, nil
}

func (c *client) ConfirmationStatus(ctx context.Context, signature string) (domain.ConfirmationStatus, error) {
	sig, err := ParseSignature(signature)
	if err != nil {
		return "", err
	}

	var status domain.ConfirmationStatus
	err = c.withRetry(ctx, "getSignatureStatuses", func(ctx context.Context) error {
		result, err := c.rpc.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			return err
		}
		status = mapSignatureStatus(result)
		return nil
	})
	if err != nil {
		return "", err
	}

	return status, nil
}

// mapSignatureStatus converts an RPC signature status into a confirmation status.
// An unknown signature is pending: it may simply not have propagated yet.
func mapSignatureStatus(result *rpc.GetSignatureStatusesResult) domain.ConfirmationStatus {
	if result == nil || len(result.Value) == 0 || result.Value[0] == nil {
		return domain.ConfirmationPending
	}

	status := result.Value[0]
	if status.Err != nil {
		return domain.ConfirmationFailed
	}

	switch status.ConfirmationStatus {
	case rpc.ConfirmationStatusFinalized:
		return domain.ConfirmationFinalized
	case rpc.ConfirmationStatusConfirmed:
		return domain.ConfirmationConfirmed
	default:
		return domain.ConfirmationPending
	}
}
