package store

import (
	"context"
	"time"

	"github.com/feral-file/ff-editions/internal/domain"
	"github.com/feral-file/ff-editions/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// ReservePurchaseInput represents the input for reserving one unit of supply
type ReservePurchaseInput struct {
	PurchaseID         string
	UserID             string
	PostID             string
	BuyerWalletAddress string
	AmountPaid         int64
	Currency           domain.Currency
	ReservedAt         time.Time
}

// ClaimFulfillmentInput represents the input for taking the fulfillment lease on a purchase
type ClaimFulfillmentInput struct {
	PurchaseID     string
	FulfillmentKey string
	ClaimedAt      time.Time
	// StaleBefore is the cutoff under which an existing claim is considered abandoned
	StaleBefore time.Time
}

// ReleaseClaimInput represents the input for giving a claim back after a retryable error
type ReleaseClaimInput struct {
	PurchaseID     string
	FulfillmentKey string
	RetryStatus    domain.PurchaseStatus
	ErrorMessage   string
}

// FailPurchaseInput represents the input for the terminal failure transition
type FailPurchaseInput struct {
	PurchaseID string
	// FulfillmentKey restricts the transition to the current claim holder when set
	FulfillmentKey *string
	ErrorMessage   string
	FailedAt       time.Time
}

// ConfirmPurchaseMintInput represents the input for recording a minted edition
type ConfirmPurchaseMintInput struct {
	PurchaseID       string
	NFTMint          string
	PrintTxSignature string
	ConfirmedAt      time.Time
}

// RecoverStaleMintingInput represents the input for resetting a crashed minting attempt
type RecoverStaleMintingInput struct {
	PurchaseID  string
	RetryStatus domain.PurchaseStatus
	StaleBefore time.Time
}

// CreateNotificationInput represents the input for an in-app notification
type CreateNotificationInput struct {
	UserID     string
	ActorID    string
	Type       schema.NotificationType
	PostID     *string
	PurchaseID *string
}

// CreateMintedMetadataInput represents the input for a minted metadata snapshot
type CreateMintedMetadataInput struct {
	PurchaseID  string
	NFTMint     string
	MetadataURI string
	Metadata    []byte
}

// Store defines the interface for database operations.
// Every purchase transition is a single conditional UPDATE; the bool results report
// whether the guard matched (false means another caller got there first).
type Store interface {
	// =============================================================================
	// Users & posts
	// =============================================================================

	// GetPostByID retrieves a post by its ID
	GetPostByID(ctx context.Context, postID string) (*schema.Post, error)
	// GetUserByID retrieves a user by its ID
	GetUserByID(ctx context.Context, userID string) (*schema.User, error)
	// IsWalletVerifiedForUser checks whether the address is a verified wallet of the user
	IsWalletVerifiedForUser(ctx context.Context, userID string, address string) (bool, error)
	// SetPostMetadataURI stores the metadata URI for a post that has none yet
	SetPostMetadataURI(ctx context.Context, postID string, uri string) error
	// SetPostMasterMint stores the collection address unless one is already stored
	SetPostMasterMint(ctx context.Context, postID string, masterMint string) (bool, error)

	// =============================================================================
	// Purchases
	// =============================================================================

	// GetPurchaseByID retrieves a purchase by its ID
	GetPurchaseByID(ctx context.Context, purchaseID string) (*schema.Purchase, error)
	// GetLatestPurchase retrieves the most recent purchase of a post by a user
	GetLatestPurchase(ctx context.Context, userID string, postID string) (*schema.Purchase, error)
	// ReservePurchase increments the post supply under the max supply guard and creates the reserved purchase
	ReservePurchase(ctx context.Context, input ReservePurchaseInput) (*schema.Purchase, error)
	// SubmitPurchaseSignature records the payment signature on a purchase that has not progressed past submitted
	SubmitPurchaseSignature(ctx context.Context, purchaseID string, txSignature string, submittedAt time.Time) (bool, error)
	// PromoteReservedToSubmitted upgrades a reserved purchase that already carries a signature
	PromoteReservedToSubmitted(ctx context.Context, purchaseID string, at time.Time) (bool, error)
	// MarkPaymentConfirmed moves a submitted or reserved purchase to awaiting_fulfillment
	MarkPaymentConfirmed(ctx context.Context, purchaseID string, confirmedAt time.Time) (bool, error)
	// AbandonPurchase moves an unsigned reserved purchase to abandoned and releases its supply
	AbandonPurchase(ctx context.Context, purchaseID string, at time.Time) (bool, error)
	// FailPurchase moves a non-terminal purchase to failed and releases its supply
	FailPurchase(ctx context.Context, input FailPurchaseInput) (bool, error)
	// ClaimFulfillment atomically takes the fulfillment lease
	ClaimFulfillment(ctx context.Context, input ClaimFulfillmentInput) (bool, error)
	// ReleaseClaim gives the lease back and resets the purchase to a retryable status
	ReleaseClaim(ctx context.Context, input ReleaseClaimInput) (bool, error)
	// MarkMasterCreated records the collection creation on the purchase holding the claim
	MarkMasterCreated(ctx context.Context, purchaseID string, fulfillmentKey string, masterTxSignature string) (bool, error)
	// ConfirmPurchaseMint records the minted edition and releases the claim
	ConfirmPurchaseMint(ctx context.Context, input ConfirmPurchaseMintInput) (bool, error)
	// RecoverStaleMinting resets a minting purchase whose attempt went stale
	RecoverStaleMinting(ctx context.Context, input RecoverStaleMintingInput) (bool, error)
	// RecoverOrphanedConfirmation resets a confirmed purchase without a mint address
	RecoverOrphanedConfirmation(ctx context.Context, purchaseID string) (bool, error)
	// GetStaleReservations lists unsigned reserved purchases reserved before the cutoff
	GetStaleReservations(ctx context.Context, reservedBefore time.Time, limit int) ([]schema.Purchase, error)
	// GetStaleMinting lists minting purchases whose attempt started before the cutoff
	GetStaleMinting(ctx context.Context, startedBefore time.Time, limit int) ([]schema.Purchase, error)

	// =============================================================================
	// Side effects
	// =============================================================================

	// CreateNotification inserts an in-app notification, once per purchase and type
	CreateNotification(ctx context.Context, input CreateNotificationInput) error
	// CreateMintedMetadata stores the metadata snapshot of a minted edition, once per purchase
	CreateMintedMetadata(ctx context.Context, input CreateMintedMetadataInput) error
}
