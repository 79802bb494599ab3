package adapter

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// SolanaRPC defines the subset of the Solana JSON-RPC API used by the purchase flow
//
//go:generate mockgen -source=solana.go -destination=../mocks/solana.go -package=mocks -mock_names=SolanaRPC=MockSolanaRPC
type SolanaRPC interface {
	GetBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetBalanceResult, error)
	GetTokenAccountsByOwner(ctx context.Context, owner solana.PublicKey, conf *rpc.GetTokenAccountsConfig, opts *rpc.GetTokenAccountsOpts) (*rpc.GetTokenAccountsResult, error)
	GetTokenAccountBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetTokenAccountBalanceResult, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, signatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	GetAccountInfo(ctx context.Context, account solana.PublicKey) (*rpc.GetAccountInfoResult, error)
}

// RealSolanaRPC implements SolanaRPC with the solana-go rpc client
type RealSolanaRPC struct {
	client *rpc.Client
}

// NewSolanaRPC creates a new RPC client for the given endpoint
func NewSolanaRPC(endpoint string) SolanaRPC {
	return &RealSolanaRPC{client: rpc.New(endpoint)}
}

func (c *RealSolanaRPC) GetBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetBalanceResult, error) {
	return c.client.GetBalance(ctx, account, commitment)
}

func (c *RealSolanaRPC) GetTokenAccountsByOwner(ctx context.Context, owner solana.PublicKey, conf *rpc.GetTokenAccountsConfig, opts *rpc.GetTokenAccountsOpts) (*rpc.GetTokenAccountsResult, error) {
	return c.client.GetTokenAccountsByOwner(ctx, owner, conf, opts)
}

func (c *RealSolanaRPC) GetTokenAccountBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetTokenAccountBalanceResult, error) {
	return c.client.GetTokenAccountBalance(ctx, account, commitment)
}

func (c *RealSolanaRPC) GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, signatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
	return c.client.GetSignatureStatuses(ctx, searchTransactionHistory, signatures...)
}

func (c *RealSolanaRPC) GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error) {
	return c.client.GetLatestBlockhash(ctx, commitment)
}

func (c *RealSolanaRPC) GetAccountInfo(ctx context.Context, account solana.PublicKey) (*rpc.GetAccountInfoResult, error) {
	return c.client.GetAccountInfo(ctx, account)
}
