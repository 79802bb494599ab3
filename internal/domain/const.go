package domain

import "time"

const (
	// DEFAULT_STALE_THRESHOLD is the single staleness window for unsigned reservations,
	// fulfillment claims and stuck minting attempts
	DEFAULT_STALE_THRESHOLD = 2 * time.Minute

	// Solana constants
	LAMPORTS_PER_SOL         = 1_000_000_000
	DEFAULT_USDC_DECIMALS    = 6
	DEFAULT_MINT_FEE         = 10_000_000 // lamports reserved for collection + edition rent
	DEFAULT_TX_FEE           = 10_000     // lamports for the payment transaction fee
	DEFAULT_PLATFORM_FEE_BPS = 500
	MAX_BPS                  = 10_000

	// Metadata constants
	DEFAULT_NFT_SYMBOL    = "EDITION"
	MAX_NFT_NAME_LENGTH   = 32
	MAX_NFT_SYMBOL_LENGTH = 10
)
