package schema

import (
	"time"

	"github.com/feral-file/ff-editions/internal/domain"
)

// Post represents the posts table - the subset of post fields used by edition purchasing
type Post struct {
	// ID is the post identifier
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// UserID is the creator who owns the post
	UserID string `gorm:"column:user_id;not null;type:uuid"`
	// Type is the post kind: post, collectible or edition
	Type domain.PostType `gorm:"column:type;not null;type:varchar(20)"`
	// Price is the edition price in base units (lamports or token base units)
	Price int64 `gorm:"column:price;not null;default:0"`
	// Currency is the currency the edition is priced in (SOL or USDC)
	Currency domain.Currency `gorm:"column:currency;not null;type:varchar(10);default:SOL"`
	// MaxSupply is the edition cap, nil for open editions
	MaxSupply *int64 `gorm:"column:max_supply"`
	// CurrentSupply counts reserved units and only changes through guarded updates
	CurrentSupply int64 `gorm:"column:current_supply;not null;default:0"`
	// MasterMint is the on-chain collection address, written exactly once
	MasterMint *string `gorm:"column:master_mint;type:varchar(64)"`
	// MetadataURI is the uploaded collection/edition metadata JSON location
	MetadataURI *string `gorm:"column:metadata_uri;type:text"`
	// Caption is the post caption
	Caption string `gorm:"column:caption;type:text"`
	// MediaURL is the primary media of the post
	MediaURL string `gorm:"column:media_url;type:text"`
	// NFTName overrides the on-chain name
	NFTName *string `gorm:"column:nft_name;type:varchar(64)"`
	// NFTSymbol overrides the on-chain symbol
	NFTSymbol *string `gorm:"column:nft_symbol;type:varchar(16)"`
	// NFTDescription overrides the metadata description
	NFTDescription *string `gorm:"column:nft_description;type:text"`
	// RoyaltyBps is the secondary sale royalty in basis points
	RoyaltyBps int `gorm:"column:royalty_bps;not null;default:0"`
	// CreatedAt is the timestamp when the post was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the post was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Post model
func (Post) TableName() string {
	return "posts"
}

// IsSoldOut reports whether a capped edition has no supply left
func (p *Post) IsSoldOut() bool {
	return p.MaxSupply != nil && p.CurrentSupply >= *p.MaxSupply
}

// HasCollection reports whether the collection has already been created
func (p *Post) HasCollection() bool {
	return p.MasterMint != nil && *p.MasterMint != ""
}
