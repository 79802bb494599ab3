package schema

import (
	"time"

	"gorm.io/datatypes"
)

// MintedMetadata represents the minted_metadata table - a snapshot of the metadata an edition was minted with
type MintedMetadata struct {
	// PurchaseID is the purchase the edition was minted for
	PurchaseID string `gorm:"column:purchase_id;primaryKey;type:uuid"`
	// NFTMint is the minted edition address
	NFTMint string `gorm:"column:nft_mint;not null;type:varchar(64)"`
	// MetadataURI is the metadata location at mint time
	MetadataURI string `gorm:"column:metadata_uri;not null;type:text"`
	// Metadata is the metadata JSON document
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// CreatedAt is the timestamp when the snapshot was taken
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MintedMetadata model
func (MintedMetadata) TableName() string {
	return "minted_metadata"
}
