package purchase

import (
	"context"
	"fmt"
	"time"

	"github.com/feral-file/ff-editions/internal/adapter"
	"github.com/feral-file/ff-editions/internal/domain"
	"github.com/feral-file/ff-editions/internal/metadata"
	"github.com/feral-file/ff-editions/internal/notification"
	"github.com/feral-file/ff-editions/internal/providers/minter"
	solanaprovider "github.com/feral-file/ff-editions/internal/providers/solana"
	"github.com/feral-file/ff-editions/internal/store"
	"github.com/feral-file/ff-editions/internal/store/schema"
)

// Config holds the purchase flow configuration
type Config struct {
	// StaleThreshold governs reservation abandonment, claim reclaim and stuck minting recovery
	StaleThreshold   time.Duration
	MintFeeLamports  uint64
	TxFeeLamports    uint64
	USDCMint         string
	// NFTSymbol is the collection symbol used when a post has no override
	NFTSymbol        string
	EffectsPoolSize  int
	EffectsQueueSize int
}

// Deps holds the collaborators of the purchase service
type Deps struct {
	Store      store.Store
	Chain      solanaprovider.Client
	TxBuilder  solanaprovider.TransactionBuilder
	Minter     minter.Client
	Metadata   metadata.Builder
	Uploader   metadata.Uploader
	Dispatcher notification.Dispatcher
	Clock      adapter.Clock
	JSON       adapter.JSON
}

// ReserveInput is the input of a purchase reservation
type ReserveInput struct {
	UserID string
	PostID string
	// WalletAddress is the wallet the buyer wants to pay with; empty means the primary wallet
	WalletAddress string
}

// ReserveStatus is the outcome of a reservation
type ReserveStatus string

const (
	ReserveStatusReserved          ReserveStatus = "reserved"
	ReserveStatusSoldOut           ReserveStatus = "sold_out"
	ReserveStatusInsufficientFunds ReserveStatus = "insufficient_funds"
)

// ReserveResult is the result of a reservation
type ReserveResult struct {
	Status        ReserveStatus
	PurchaseID    string
	Transaction   string
	EditionNumber *int64
}

// PollResult is the client-facing view of a purchase after a poll
type PollResult struct {
	PurchaseID    string
	Status        domain.PurchaseStatus
	TxSignature   *string
	NFTMint       *string
	EditionNumber *int64
	ErrorMessage  *string
	// Retry is set when fulfillment hit a transient error; the next poll re-attempts it
	Retry bool
}

func newPollResult(p *schema.Purchase) *PollResult {
	return &PollResult{
		PurchaseID:    p.ID,
		Status:        p.Status,
		TxSignature:   p.TxSignature,
		NFTMint:       p.NFTMint,
		EditionNumber: p.EditionNumber,
		ErrorMessage:  p.ErrorMessage,
	}
}

// Service drives edition purchases from reservation to minted edition
//
//go:generate mockgen -source=service.go -destination=../mocks/purchase_service.go -package=mocks -mock_names=Service=MockPurchaseService
type Service interface {
	// Reserve reserves one unit of supply and returns the unsigned payment transaction
	Reserve(ctx context.Context, input ReserveInput) (*ReserveResult, error)

	// SubmitSignature records the buyer's payment signature
	SubmitSignature(ctx context.Context, userID, purchaseID, signature string) error

	// CheckConfirmation returns the on-chain status of a payment signature
	CheckConfirmation(ctx context.Context, signature string) (domain.ConfirmationStatus, error)

	// Cancel abandons a reservation the buyer never signed
	Cancel(ctx context.Context, userID, purchaseID string) error

	// Poll advances the purchase as far as one request allows and returns its status
	Poll(ctx context.Context, userID, purchaseID string) (*PollResult, error)

	// RetryFulfillment re-attempts fulfillment of a purchase whose payment landed
	RetryFulfillment(ctx context.Context, userID, purchaseID string) (*PollResult, error)

	// GetLatestPurchase returns the most recent purchase of a post by the user
	GetLatestPurchase(ctx context.Context, userID, postID string) (*schema.Purchase, error)

	// Close waits for pending side effects
	Close()
}

type service struct {
	config     Config
	store      store.Store
	chain      solanaprovider.Client
	txBuilder  solanaprovider.TransactionBuilder
	minter     minter.Client
	metadata   metadata.Builder
	uploader   metadata.Uploader
	dispatcher notification.Dispatcher
	clock      adapter.Clock
	json       adapter.JSON
	balance    *balanceChecker
	recoverer  Recoverer
	effects    *effects
}

// NewService creates a new purchase service
func NewService(cfg Config, deps Deps) Service {
	if cfg.StaleThreshold <= 0 {
		cfg.StaleThreshold = domain.DEFAULT_STALE_THRESHOLD
	}

	return &service{
		config:     cfg,
		store:      deps.Store,
		chain:      deps.Chain,
		txBuilder:  deps.TxBuilder,
		minter:     deps.Minter,
		metadata:   deps.Metadata,
		uploader:   deps.Uploader,
		dispatcher: deps.Dispatcher,
		clock:      deps.Clock,
		json:       deps.JSON,
		balance:    newBalanceChecker(deps.Chain, cfg),
		recoverer:  NewRecoverer(deps.Store, deps.Clock, cfg.StaleThreshold),
		effects:    newEffects(cfg.EffectsPoolSize, cfg.EffectsQueueSize),
	}
}

func (s *service) Close() {
	s.effects.stop()
}

func (s *service) CheckConfirmation(ctx context.Context, signature string) (domain.ConfirmationStatus, error) {
	return s.chain.ConfirmationStatus(ctx, signature)
}

func (s *service) GetLatestPurchase(ctx context.Context, userID, postID string) (*schema.Purchase, error) {
	p, err := s.store.GetLatestPurchase(ctx, userID, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest purchase: %w", err)
	}
	if p == nil {
		return nil, domain.ErrPurchaseNotFound
	}
	return p, nil
}

// loadOwnedPurchase loads a purchase and checks that the user bought it
func (s *service) loadOwnedPurchase(ctx context.Context, userID, purchaseID string) (*schema.Purchase, error) {
	p, err := s.loadPurchase(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

func (s *service) loadPurchase(ctx context.Context, purchaseID string) (*schema.Purchase, error) {
	p, err := s.store.GetPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	if p == nil {
		return nil, domain.ErrPurchaseNotFound
	}
	return p, nil
}

func (s *service) loadPost(ctx context.Context, postID string) (*schema.Post, error) {
	post, err := s.store.GetPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}

// staleBefore is the cutoff under which claims, reservations and minting attempts are stale
func (s *service) staleBefore() time.Time {
	return s.clock.Now().Add(-s.config.StaleThreshold)
}
