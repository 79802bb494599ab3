package purchase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-editions/internal/domain"
	"github.com/feral-file/ff-editions/internal/logger"
	solanaprovider "github.com/feral-file/ff-editions/internal/providers/solana"
)

// balanceChecker verifies that a buyer can cover the price and the fees before supply is reserved
type balanceChecker struct {
	chain           solanaprovider.Client
	mintFeeLamports uint64
	txFeeLamports   uint64
	usdcMint        string
}

func newBalanceChecker(chain solanaprovider.Client, cfg Config) *balanceChecker {
	return &balanceChecker{
		chain:           chain,
		mintFeeLamports: cfg.MintFeeLamports,
		txFeeLamports:   cfg.TxFeeLamports,
		usdcMint:        cfg.USDCMint,
	}
}

// sufficient reports whether wallet holds enough to pay price in currency.
// SOL: price + mint fee + tx fee in lamports.
// USDC: mint fee + tx fee in lamports, and price in token base units.
func (b *balanceChecker) sufficient(ctx context.Context, wallet string, price uint64, currency domain.Currency) (bool, error) {
	fees := b.mintFeeLamports + b.txFeeLamports

	switch currency {
	case domain.CurrencySOL:
		ok, err := b.chain.HasNativeBalance(ctx, wallet, price+fees)
		if err != nil {
			return false, fmt.Errorf("failed to check native balance: %w", err)
		}
		return ok, nil

	case domain.CurrencyUSDC:
		ok, err := b.chain.HasNativeBalance(ctx, wallet, fees)
		if err != nil {
			return false, fmt.Errorf("failed to check native balance: %w", err)
		}
		if !ok {
			return false, nil
		}

		tokens, err := b.chain.TokenBalance(ctx, wallet, b.usdcMint)
		if err != nil {
			return false, fmt.Errorf("failed to check token balance: %w", err)
		}
		if tokens < price {
			logger.DebugCtx(ctx, "Insufficient token balance",
				zap.Uint64("balance", tokens),
				zap.Uint64("required", price))
			return false, nil
		}
		return true, nil

	default:
		return false, fmt.Errorf("unsupported currency %q", currency)
	}
}
