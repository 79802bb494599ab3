package solana

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/feral-file/ff-editions/internal/adapter"
	"github.com/feral-file/ff-editions/internal/domain"
)

// PaymentConfig holds the fee schedule applied to every payment
type PaymentConfig struct {
	PlatformWallet  string
	USDCMint        string
	USDCDecimals    uint8
	PlatformFeeBps  int
	MintFeeLamports uint64
	Commitment      rpc.CommitmentType
}

// PaymentParams describes one edition payment
type PaymentParams struct {
	PurchaseID string
	Buyer      string
	Creator    string
	Price      uint64
	Currency   domain.Currency
}

// PaymentSplit is the amount each party receives in the payment currency
type PaymentSplit struct {
	Creator  uint64
	Platform uint64
}

// SplitPrice divides the price between creator and platform.
// The platform fee rounds down so the creator never receives less than their share.
func SplitPrice(price uint64, platformFeeBps int) PaymentSplit {
	if platformFeeBps <= 0 {
		return PaymentSplit{Creator: price}
	}
	if platformFeeBps > domain.MAX_BPS {
		platformFeeBps = domain.MAX_BPS
	}
	fee := price / domain.MAX_BPS * uint64(platformFeeBps)
	fee += price % domain.MAX_BPS * uint64(platformFeeBps) / domain.MAX_BPS
	return PaymentSplit{Creator: price - fee, Platform: fee}
}

// TransactionBuilder builds the unsigned payment transaction a buyer signs
//
//go:generate mockgen -source=transaction.go -destination=../../mocks/transaction_builder.go -package=mocks -mock_names=TransactionBuilder=MockTransactionBuilder
type TransactionBuilder interface {
	// BuildPayment returns the base64-encoded unsigned payment transaction
	BuildPayment(ctx context.Context, params PaymentParams) (string, error)
}

type transactionBuilder struct {
	rpc    adapter.SolanaRPC
	config PaymentConfig
}

// NewTransactionBuilder creates a new payment transaction builder
func NewTransactionBuilder(rpcClient adapter.SolanaRPC, cfg PaymentConfig) TransactionBuilder {
	if cfg.Commitment == "" {
		cfg.Commitment = rpc.CommitmentConfirmed
	}
	if cfg.USDCDecimals == 0 {
		cfg.USDCDecimals = domain.DEFAULT_USDC_DECIMALS
	}
	return &transactionBuilder{rpc: rpcClient, config: cfg}
}

// BuildPayment builds a transaction paid and signed by the buyer that:
//   - transfers the creator share of the price to the creator
//   - transfers the platform fee to the platform wallet
//   - transfers the mint-cost reserve in lamports to the platform wallet
//   - carries the purchase id as a memo
func (b *transactionBuilder) BuildPayment(ctx context.Context, params PaymentParams) (string, error) {
	buyer, err := ParsePublicKey(params.Buyer)
	if err != nil {
		return "", domain.NewPermanentError(err)
	}
	creator, err := ParsePublicKey(params.Creator)
	if err != nil {
		return "", domain.NewPermanentError(err)
	}
	platform, err := ParsePublicKey(b.config.PlatformWallet)
	if err != nil {
		return "", domain.NewPermanentError(err)
	}

	split := SplitPrice(params.Price, b.config.PlatformFeeBps)

	var instructions []solana.Instruction
	switch params.Currency {
	case domain.CurrencySOL:
		instructions = append(instructions, nativeTransfers(buyer, creator, platform, split)...)
	case domain.CurrencyUSDC:
		tokenInstructions, err := b.tokenTransfers(ctx, buyer, creator, platform, split)
		if err != nil {
			return "", err
		}
		instructions = append(instructions, tokenInstructions...)
	default:
		return "", domain.NewPermanentError(fmt.Errorf("unsupported currency %q", params.Currency))
	}

	if b.config.MintFeeLamports > 0 {
		instructions = append(instructions, system.NewTransferInstruction(b.config.MintFeeLamports, buyer, platform).Build())
	}

	if params.PurchaseID != "" {
		instructions = append(instructions, solana.NewInstruction(
			solana.MemoProgramID,
			solana.AccountMetaSlice{},
			[]byte(fmt.Sprintf("edition-purchase:%s", params.PurchaseID)),
		))
	}

	blockhash, err := b.rpc.GetLatestBlockhash(ctx, b.config.Commitment)
	if err != nil {
		return "", domain.NewTransientError(fmt.Errorf("failed to get latest blockhash: %w", err))
	}

	tx, err := solana.NewTransaction(instructions, blockhash.Value.Blockhash, solana.TransactionPayer(buyer))
	if err != nil {
		return "", fmt.Errorf("failed to build transaction: %w", err)
	}

	// Empty signature slots so wallets can sign in place
	tx.Signatures = make([]solana.Signature, tx.Message.Header.NumRequiredSignatures)

	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("failed to encode transaction: %w", err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

func nativeTransfers(buyer, creator, platform solana.PublicKey, split PaymentSplit) []solana.Instruction {
	var instructions []solana.Instruction
	if split.Creator > 0 {
		instructions = append(instructions, system.NewTransferInstruction(split.Creator, buyer, creator).Build())
	}
	if split.Platform > 0 {
		instructions = append(instructions, system.NewTransferInstruction(split.Platform, buyer, platform).Build())
	}
	return instructions
}

func (b *transactionBuilder) tokenTransfers(ctx context.Context, buyer, creator, platform solana.PublicKey, split PaymentSplit) ([]solana.Instruction, error) {
	mint, err := ParsePublicKey(b.config.USDCMint)
	if err != nil {
		return nil, domain.NewPermanentError(err)
	}

	source, _, err := solana.FindAssociatedTokenAddress(buyer, mint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive buyer token account: %w", err)
	}

	var instructions []solana.Instruction
	for _, leg := range []struct {
		owner  solana.PublicKey
		amount uint64
	}{
		{owner: creator, amount: split.Creator},
		{owner: platform, amount: split.Platform},
	} {
		if leg.amount == 0 {
			continue
		}

		destination, _, err := solana.FindAssociatedTokenAddress(leg.owner, mint)
		if err != nil {
			return nil, fmt.Errorf("failed to derive token account: %w", err)
		}

		exists, err := b.accountExists(ctx, destination)
		if err != nil {
			return nil, err
		}
		if !exists {
			instructions = append(instructions, associatedtokenaccount.NewCreateInstruction(buyer, leg.owner, mint).Build())
		}

		instructions = append(instructions, token.NewTransferCheckedInstruction(
			leg.amount,
			b.config.USDCDecimals,
			source,
			mint,
			destination,
			buyer,
			nil,
		).Build())
	}

	return instructions, nil
}

func (b *transactionBuilder) accountExists(ctx context.Context, account solana.PublicKey) (bool, error) {
	_, err := b.rpc.GetAccountInfo(ctx, account)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, rpc.ErrNotFound) {
		return false, nil
	}
	return false, domain.NewTransientError(fmt.Errorf("failed to get account info: %w", err))
}
