package schema

import (
	"time"

	"github.com/feral-file/ff-editions/internal/domain"
)

// Purchase represents the purchases table - one row per edition purchase attempt.
// Rows are never deleted; terminal rows are the audit trail.
type Purchase struct {
	// ID is generated at reservation time
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// UserID is the buyer
	UserID string `gorm:"column:user_id;not null;type:uuid"`
	// PostID is the edition post
	PostID string `gorm:"column:post_id;not null;type:uuid"`
	// BuyerWalletAddress is the wallet that signs the payment, may differ from the primary wallet
	BuyerWalletAddress string `gorm:"column:buyer_wallet_address;not null;type:varchar(64)"`
	// AmountPaid is the price in base units at reservation time
	AmountPaid int64 `gorm:"column:amount_paid;not null"`
	// Currency is the payment currency
	Currency domain.Currency `gorm:"column:currency;not null;type:varchar(10)"`
	// Status is the state machine discriminant
	Status domain.PurchaseStatus `gorm:"column:status;not null;type:varchar(32)"`
	// EditionNumber is the supply ordinal captured by the reservation increment
	EditionNumber *int64 `gorm:"column:edition_number"`
	// TxSignature is the payment transaction signature
	TxSignature *string `gorm:"column:tx_signature;type:varchar(128)"`
	// NFTMint is the minted edition address, only ever set together with status confirmed
	NFTMint *string `gorm:"column:nft_mint;type:varchar(64)"`
	// FulfillmentKey identifies the current claim holder
	FulfillmentKey *string `gorm:"column:fulfillment_key;type:varchar(64)"`
	// FulfillmentClaimedAt is when the current claim was taken
	FulfillmentClaimedAt *time.Time `gorm:"column:fulfillment_claimed_at;type:timestamptz"`
	// MintingStartedAt is when the last minting attempt began
	MintingStartedAt *time.Time `gorm:"column:minting_started_at;type:timestamptz"`
	// ReservedAt is when supply was reserved
	ReservedAt *time.Time `gorm:"column:reserved_at;type:timestamptz"`
	// SubmittedAt is when the buyer submitted the signature
	SubmittedAt *time.Time `gorm:"column:submitted_at;type:timestamptz"`
	// PaymentConfirmedAt is when the payment was observed on-chain
	PaymentConfirmedAt *time.Time `gorm:"column:payment_confirmed_at;type:timestamptz"`
	// MintConfirmedAt is when the edition mint was recorded
	MintConfirmedAt *time.Time `gorm:"column:mint_confirmed_at;type:timestamptz"`
	// FailedAt is when the purchase failed
	FailedAt *time.Time `gorm:"column:failed_at;type:timestamptz"`
	// MasterTxSignature is the collection creation signature
	MasterTxSignature *string `gorm:"column:master_tx_signature;type:varchar(128)"`
	// PrintTxSignature is the edition mint signature
	PrintTxSignature *string `gorm:"column:print_tx_signature;type:varchar(128)"`
	// ErrorMessage is the last fulfillment error (limited to 1KB)
	ErrorMessage *string `gorm:"column:error_message;type:text"`
	// CreatedAt is the timestamp when the row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// HasSignature reports whether the buyer submitted a payment signature
func (p *Purchase) HasSignature() bool {
	return p.TxSignature != nil && *p.TxSignature != ""
}

// HasMint reports whether the edition has been minted and recorded
func (p *Purchase) HasMint() bool {
	return p.NFTMint != nil && *p.NFTMint != ""
}

// MintingSince returns the best available timestamp for when the current minting attempt began
func (p *Purchase) MintingSince() *time.Time {
	return domain.FirstNonNil(p.MintingStartedAt, p.FulfillmentClaimedAt, p.PaymentConfirmedAt, p.SubmittedAt)
}
