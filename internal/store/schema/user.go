package schema

import "time"

// User represents the users table
type User struct {
	// ID is the user identifier
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// Username is the public handle
	Username string `gorm:"column:username;not null;type:varchar(64)"`
	// WalletAddress is the primary (legacy) wallet of the user
	WalletAddress *string `gorm:"column:wallet_address;type:varchar(64)"`
	// CreatedAt is the timestamp when the user was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the user was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// Wallet returns the primary wallet or an empty string
func (u *User) Wallet() string {
	if u == nil || u.WalletAddress == nil {
		return ""
	}
	return *u.WalletAddress
}

// UserWallet represents the user_wallets table - wallets a user has proven ownership of
type UserWallet struct {
	// UserID is the owning user
	UserID string `gorm:"column:user_id;primaryKey;type:uuid"`
	// Address is the base58 wallet address
	Address string `gorm:"column:address;primaryKey;type:varchar(64)"`
	// VerifiedAt is set once the signature challenge succeeded
	VerifiedAt *time.Time `gorm:"column:verified_at;type:timestamptz"`
	// CreatedAt is the timestamp when the wallet was linked
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the UserWallet model
func (UserWallet) TableName() string {
	return "user_wallets"
}
