package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-editions/internal/domain"
	"github.com/feral-file/ff-editions/internal/logger"
	"github.com/feral-file/ff-editions/internal/store/schema"
)

// maxErrorMessageLength bounds the error_message column
const maxErrorMessageLength = 1024

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

func truncateErrorMessage(msg string) string {
	if len(msg) > maxErrorMessageLength {
		return msg[:maxErrorMessageLength]
	}
	return msg
}

// releaseSupply gives one reserved unit back to the post.
// The decrement is guarded so the counter never drops below zero.
func releaseSupply(ctx context.Context, tx *gorm.DB, postID string) error {
	result := tx.Model(&schema.Post{}).
		Where("id = ? AND current_supply > 0", postID).
		Updates(map[string]interface{}{
			"current_supply": gorm.Expr("current_supply - 1"),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to release supply: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		logger.WarnCtx(ctx, "Supply already at zero, nothing to release", zap.String("post_id", postID))
	}

	return nil
}

// =============================================================================
// Users & posts
// =============================================================================

// GetPostByID retrieves a post by its ID
func (s *pgStore) GetPostByID(ctx context.Context, postID string) (*schema.Post, error) {
	var post schema.Post
	err := s.db.WithContext(ctx).Where("id = ?", postID).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// GetUserByID retrieves a user by its ID
func (s *pgStore) GetUserByID(ctx context.Context, userID string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// IsWalletVerifiedForUser checks whether the address is a verified wallet of the user
func (s *pgStore) IsWalletVerifiedForUser(ctx context.Context, userID string, address string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.UserWallet{}).
		Where("user_id = ? AND address = ? AND verified_at IS NOT NULL", userID, address).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check user wallet: %w", err)
	}
	return count > 0, nil
}

// SetPostMetadataURI stores the metadata URI for a post that has none yet.
// The URI is derived deterministically from post fields, so a lost race is not an error.
func (s *pgStore) SetPostMetadataURI(ctx context.Context, postID string, uri string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Post{}).
		Where("id = ? AND metadata_uri IS NULL", postID).
		Updates(map[string]interface{}{
			"metadata_uri": uri,
			"updated_at":   time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to set post metadata uri: %w", err)
	}
	return nil
}

// SetPostMasterMint stores the collection address unless one is already stored
func (s *pgStore) SetPostMasterMint(ctx context.Context, postID string, masterMint string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Post{}).
		Where("id = ? AND master_mint IS NULL", postID).
		Updates(map[string]interface{}{
			"master_mint": masterMint,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to set post master mint: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// =============================================================================
// Purchases
// =============================================================================

// GetPurchaseByID retrieves a purchase by its ID
func (s *pgStore) GetPurchaseByID(ctx context.Context, purchaseID string) (*schema.Purchase, error) {
	var purchase schema.Purchase
	err := s.db.WithContext(ctx).Where("id = ?", purchaseID).First(&purchase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	return &purchase, nil
}

// nextEditionNumber returns the lowest ordinal not held by a live purchase of the post.
// Ordinals of failed or abandoned purchases were never minted and are handed out again,
// so a capped edition always numbers within 1..max_supply.
func nextEditionNumber(tx *gorm.DB, postID string) (int64, error) {
	released := []domain.PurchaseStatus{domain.PurchaseStatusFailed, domain.PurchaseStatusAbandoned}

	var editionNumber int64
	err := tx.Raw(`
		SELECT MIN(c.n) FROM (
			SELECT 1::bigint AS n
			UNION ALL
			SELECT edition_number + 1 FROM purchases
			WHERE post_id = ? AND edition_number IS NOT NULL AND status NOT IN ?
		) c
		WHERE NOT EXISTS (
			SELECT 1 FROM purchases p
			WHERE p.post_id = ? AND p.edition_number = c.n AND p.status NOT IN ?
		)`,
		postID, released, postID, released).
		Scan(&editionNumber).Error
	if err != nil {
		return 0, fmt.Errorf("failed to assign edition number: %w", err)
	}
	return editionNumber, nil
}

// GetLatestPurchase retrieves the most recent purchase of a post by a user
func (s *pgStore) GetLatestPurchase(ctx context.Context, userID string, postID string) (*schema.Purchase, error) {
	var purchase schema.Purchase
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Order("created_at DESC").
		Order("id DESC").
		First(&purchase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest purchase: %w", err)
	}
	return &purchase, nil
}

// ReservePurchase increments the post supply under the max supply guard and creates the reserved purchase.
// The increment and the insert run in one transaction; a guard miss returns domain.ErrSoldOut.
func (s *pgStore) ReservePurchase(ctx context.Context, input ReservePurchaseInput) (*schema.Purchase, error) {
	var purchase schema.Purchase

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Guarded increment. The post row stays locked until commit, which
		// serializes ordinal assignment for the post.
		var supply int64
		result := tx.Raw(`
			UPDATE posts
			SET current_supply = current_supply + 1, updated_at = ?
			WHERE id = ? AND (max_supply IS NULL OR current_supply < max_supply)
			RETURNING current_supply`,
			input.ReservedAt, input.PostID).
			Scan(&supply)
		if result.Error != nil {
			return fmt.Errorf("failed to reserve supply: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrSoldOut
		}

		editionNumber, err := nextEditionNumber(tx, input.PostID)
		if err != nil {
			return err
		}

		// 2. Create the purchase only after the supply is held
		reservedAt := input.ReservedAt
		purchase = schema.Purchase{
			ID:                 input.PurchaseID,
			UserID:             input.UserID,
			PostID:             input.PostID,
			BuyerWalletAddress: input.BuyerWalletAddress,
			AmountPaid:         input.AmountPaid,
			Currency:           input.Currency,
			Status:             domain.PurchaseStatusReserved,
			EditionNumber:      &editionNumber,
			ReservedAt:         &reservedAt,
			CreatedAt:          reservedAt,
			UpdatedAt:          reservedAt,
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return fmt.Errorf("failed to create purchase: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &purchase, nil
}

// SubmitPurchaseSignature records the payment signature on a purchase that has not progressed past submitted
func (s *pgStore) SubmitPurchaseSignature(ctx context.Context, purchaseID string, txSignature string, submittedAt time.Time) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Purchase{}).
		Where("id = ? AND status IN ?", purchaseID, []domain.PurchaseStatus{
			domain.PurchaseStatusReserved,
			domain.PurchaseStatusSubmitted,
		}).
		Updates(map[string]interface{}{
			"status":       domain.PurchaseStatusSubmitted,
			"tx_signature": txSignature,
			"submitted_at": submittedAt,
			"updated_at":   submittedAt,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to submit purchase signature: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// PromoteReservedToSubmitted upgrades a reserved purchase that already carries a signature
func (s *pgStore) PromoteReservedToSubmitted(ctx context.Context, purchaseID string, at time.Time) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Purchase{}).
		Where("id = ? AND status = ? AND tx_signature IS NOT NULL", purchaseID, domain.PurchaseStatusReserved).
		Updates(map[string]interface{}{
			"status":       domain.PurchaseStatusSubmitted,
			"submitted_at": gorm.Expr("COALESCE(submitted_at, ?)", at),
			"updated_at":   at,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to promote purchase to submitted: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// MarkPaymentConfirmed moves a submitted or reserved purchase to awaiting_fulfillment.
// minting is deliberately not a source so a concurrent fulfillment is never overwritten.
func (s *pgStore) MarkPaymentConfirmed(ctx context.Context, purchaseID string, confirmedAt time.Time) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Purchase{}).
		Where("id = ? AND status IN ? AND nft_mint IS NULL", purchaseID, domain.PaymentUpgradableStatuses).
		Updates(map[string]interface{}{
			"status":               domain.PurchaseStatusAwaitingFulfillment,
			"payment_confirmed_at": confirmedAt,
			"updated_at":           confirmedAt,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark payment confirmed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// AbandonPurchase moves an unsigned reserved purchase to abandoned and releases its supply
func (s *pgStore) AbandonPurchase(ctx context.Context, purchaseID string, at time.Time) (bool, error) {
	abandoned := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var purchase schema.Purchase
		result := tx.Model(&purchase).
			Clauses(clause.Returning{Columns: []clause.Column{{Name: "post_id"}}}).
			Where("id = ? AND status = ? AND tx_signature IS NULL", purchaseID, domain.PurchaseStatusReserved).
			Updates(map[string]interface{}{
				"status":     domain.PurchaseStatusAbandoned,
				"updated_at": at,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to abandon purchase: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}

		abandoned = true
		return releaseSupply(ctx, tx, purchase.PostID)
	})
	if err != nil {
		return false, err
	}

	return abandoned, nil
}

// FailPurchase moves a non-terminal purchase to failed and releases its supply
func (s *pgStore) FailPurchase(ctx context.Context, input FailPurchaseInput) (bool, error) {
	failed := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var purchase schema.Purchase
		query := tx.Model(&purchase).
			Clauses(clause.Returning{Columns: []clause.Column{{Name: "post_id"}}}).
			Where("id = ? AND status IN ? AND nft_mint IS NULL", input.PurchaseID, domain.SourcesFor(domain.PurchaseStatusFailed))
		if input.FulfillmentKey != nil {
			query = query.Where("fulfillment_key = ?", *input.FulfillmentKey)
		}

		result := query.Updates(map[string]interface{}{
			"status":                 domain.PurchaseStatusFailed,
			"failed_at":              input.FailedAt,
			"fulfillment_key":        nil,
			"fulfillment_claimed_at": nil,
			"error_message":          truncateErrorMessage(input.ErrorMessage),
			"updated_at":             input.FailedAt,
		})
		if result.Error != nil {
			return fmt.Errorf("failed to fail purchase: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}

		failed = true
		return releaseSupply(ctx, tx, purchase.PostID)
	})
	if err != nil {
		return false, err
	}

	return failed, nil
}

// ClaimFulfillment atomically takes the fulfillment lease.
// The claim succeeds only when no fresh lease is held and the status is claimable:
// awaiting_fulfillment, master_created, a stale minting, or a confirmed row without a mint.
func (s *pgStore) ClaimFulfillment(ctx context.Context, input ClaimFulfillmentInput) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Purchase{}).
		Where("id = ?", input.PurchaseID).
		Where("(fulfillment_key IS NULL OR fulfillment_claimed_at < ?)", input.StaleBefore).
		Where("(status IN ? OR (status = ? AND fulfillment_claimed_at < ?) OR (status = ? AND nft_mint IS NULL))",
			domain.ClaimableStatuses,
			domain.PurchaseStatusMinting, input.StaleBefore,
			domain.PurchaseStatusConfirmed).
		Updates(map[string]interface{}{
			"status":                 domain.PurchaseStatusMinting,
			"fulfillment_key":        input.FulfillmentKey,
			"fulfillment_claimed_at": input.ClaimedAt,
			"minting_started_at":     input.ClaimedAt,
			"updated_at":             input.ClaimedAt,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to claim fulfillment: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ReleaseClaim gives the lease back and resets the purchase to a retryable status
func (s *pgStore) ReleaseClaim(ctx context.Context, input ReleaseClaimInput) (bool, error) {
	updates := map[string]interface{}{
		"status":                 input.RetryStatus,
		"fulfillment_key":        nil,
		"fulfillment_claimed_at": nil,
		"updated_at":             time.Now(),
	}
	if input.ErrorMessage != "" {
		updates["error_message"] = truncateErrorMessage(input.ErrorMessage)
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Purchase{}).
		Where("id = ? AND fulfillment_key = ? AND status IN ? AND nft_mint IS NULL", input.PurchaseID, input.FulfillmentKey, []domain.PurchaseStatus{
			domain.PurchaseStatusMinting,
			domain.PurchaseStatusMasterCreated,
		}).
		Updates(updates)
	if result.Error != nil {
		return false, fmt.Errorf("failed to release fulfillment claim: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// MarkMasterCreated records the collection creation on the purchase holding the claim.
// The claim is kept so no other caller can start minting in between.
func (s *pgStore) MarkMasterCreated(ctx context.Context, purchaseID string, fulfillmentKey string, masterTxSignature string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Purchase{}).
		Where("id = ? AND fulfillment_key = ? AND status = ?", purchaseID, fulfillmentKey, domain.PurchaseStatusMinting).
		Updates(map[string]interface{}{
			"status":              domain.PurchaseStatusMasterCreated,
			"master_tx_signature": masterTxSignature,
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark master created: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ConfirmPurchaseMint records the minted edition and releases the claim.
// The edition already exists on-chain at this point, so the guard only refuses a second mint address.
func (s *pgStore) ConfirmPurchaseMint(ctx context.Context, input ConfirmPurchaseMintInput) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Purchase{}).
		Where("id = ? AND nft_mint IS NULL AND status IN ?", input.PurchaseID, domain.MintRecordableStatuses).
		Updates(map[string]interface{}{
			"status":                 domain.PurchaseStatusConfirmed,
			"nft_mint":               input.NFTMint,
			"print_tx_signature":     input.PrintTxSignature,
			"mint_confirmed_at":      input.ConfirmedAt,
			"fulfillment_key":        nil,
			"fulfillment_claimed_at": nil,
			"error_message":          nil,
			"updated_at":             input.ConfirmedAt,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to confirm purchase mint: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// RecoverStaleMinting resets a minting purchase whose attempt went stale
func (s *pgStore) RecoverStaleMinting(ctx context.Context, input RecoverStaleMintingInput) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Purchase{}).
		Where("id = ? AND status = ? AND nft_mint IS NULL", input.PurchaseID, domain.PurchaseStatusMinting).
		Where("COALESCE(minting_started_at, fulfillment_claimed_at, payment_confirmed_at, submitted_at) < ?", input.StaleBefore).
		Updates(map[string]interface{}{
			"status":                 input.RetryStatus,
			"fulfillment_key":        nil,
			"fulfillment_claimed_at": nil,
			"updated_at":             time.Now(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to recover stale minting: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// RecoverOrphanedConfirmation resets a confirmed purchase without a mint address
func (s *pgStore) RecoverOrphanedConfirmation(ctx context.Context, purchaseID string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Purchase{}).
		Where("id = ? AND status = ? AND nft_mint IS NULL", purchaseID, domain.PurchaseStatusConfirmed).
		Updates(map[string]interface{}{
			"status":                 domain.PurchaseStatusAwaitingFulfillment,
			"fulfillment_key":        nil,
			"fulfillment_claimed_at": nil,
			"updated_at":             time.Now(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to recover orphaned confirmation: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// GetStaleReservations lists unsigned reserved purchases reserved before the cutoff
func (s *pgStore) GetStaleReservations(ctx context.Context, reservedBefore time.Time, limit int) ([]schema.Purchase, error) {
	var purchases []schema.Purchase
	err := s.db.WithContext(ctx).
		Where("status = ? AND tx_signature IS NULL AND reserved_at < ?", domain.PurchaseStatusReserved, reservedBefore).
		Order("reserved_at ASC").
		Limit(limit).
		Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get stale reservations: %w", err)
	}
	return purchases, nil
}

// GetStaleMinting lists minting purchases whose attempt started before the cutoff
func (s *pgStore) GetStaleMinting(ctx context.Context, startedBefore time.Time, limit int) ([]schema.Purchase, error) {
	var purchases []schema.Purchase
	err := s.db.WithContext(ctx).
		Where("status = ? AND nft_mint IS NULL", domain.PurchaseStatusMinting).
		Where("COALESCE(minting_started_at, fulfillment_claimed_at, payment_confirmed_at, submitted_at) < ?", startedBefore).
		Order("minting_started_at ASC").
		Limit(limit).
		Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get stale minting purchases: %w", err)
	}
	return purchases, nil
}

// =============================================================================
// Side effects
// =============================================================================

// CreateNotification inserts an in-app notification, once per purchase and type
func (s *pgStore) CreateNotification(ctx context.Context, input CreateNotificationInput) error {
	notification := schema.Notification{
		UserID:     input.UserID,
		ActorID:    input.ActorID,
		Type:       input.Type,
		PostID:     input.PostID,
		PurchaseID: input.PurchaseID,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&notification).Error
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// CreateMintedMetadata stores the metadata snapshot of a minted edition, once per purchase
func (s *pgStore) CreateMintedMetadata(ctx context.Context, input CreateMintedMetadataInput) error {
	snapshot := schema.MintedMetadata{
		PurchaseID:  input.PurchaseID,
		NFTMint:     input.NFTMint,
		MetadataURI: input.MetadataURI,
		Metadata:    input.Metadata,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "purchase_id"}},
			DoNothing: true,
		}).
		Create(&snapshot).Error
	if err != nil {
		return fmt.Errorf("failed to create minted metadata: %w", err)
	}
	return nil
}
