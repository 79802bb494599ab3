package purchase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-editions/internal/domain"
	"github.com/feral-file/ff-editions/internal/logger"
	"github.com/feral-file/ff-editions/internal/metadata"
	"github.com/feral-file/ff-editions/internal/notification"
	"github.com/feral-file/ff-editions/internal/providers/minter"
	"github.com/feral-file/ff-editions/internal/store"
	"github.com/feral-file/ff-editions/internal/store/schema"
)

// errClaimLost is returned when the lease was reclaimed by another caller mid-fulfillment
var errClaimLost = errors.New("fulfillment claim lost")

// fulfillment carries the state of one fulfillment attempt
type fulfillment struct {
	key           string
	purchase      *schema.Purchase
	post          *schema.Post
	buyer         *schema.User
	creator       *schema.User
	buyerWallet   string
	hasCollection bool
	editionNumber int64
	mint          *minter.MintResult
}

// mintedSnapshot is the stored record of what was minted for a purchase
type mintedSnapshot struct {
	Name             string `json:"name"`
	Symbol           string `json:"symbol"`
	MetadataURI      string `json:"metadataUri"`
	Collection       string `json:"collection"`
	EditionNumber    int64  `json:"editionNumber"`
	NFTMint          string `json:"nftMint"`
	PrintTxSignature string `json:"printTxSignature"`
}

// fulfill mints the edition of a claimed purchase.
// Retryable errors give the claim back, anything else fails the purchase and releases its supply.
func (s *service) fulfill(ctx context.Context, c *Claim) (*PollResult, error) {
	f := &fulfillment{key: c.Key, purchase: c.Purchase}

	err := s.runFulfillment(ctx, f)
	if err == nil {
		return s.completeFulfillment(ctx, f)
	}

	if errors.Is(err, errClaimLost) {
		logger.WarnCtx(ctx, "Fulfillment claim lost, leaving purchase to the new holder",
			zap.String("purchase_id", f.purchase.ID))
		return s.currentResult(ctx, f.purchase.ID)
	}

	if domain.IsRetryable(err) {
		retryStatus := domain.RetryStatus(f.hasCollection)
		released, releaseErr := s.store.ReleaseClaim(ctx, store.ReleaseClaimInput{
			PurchaseID:     f.purchase.ID,
			FulfillmentKey: f.key,
			RetryStatus:    retryStatus,
			ErrorMessage:   err.Error(),
		})
		if releaseErr != nil {
			return nil, fmt.Errorf("failed to release fulfillment claim: %w", releaseErr)
		}

		logger.WarnCtx(ctx, "Fulfillment failed, will retry",
			zap.String("purchase_id", f.purchase.ID),
			zap.String("post_id", f.purchase.PostID),
			zap.String("status", string(retryStatus)),
			zap.Bool("released", released),
			zap.Error(err))

		result, loadErr := s.currentResult(ctx, f.purchase.ID)
		if loadErr != nil {
			return nil, loadErr
		}
		result.Retry = true
		return result, nil
	}

	failed, failErr := s.store.FailPurchase(ctx, store.FailPurchaseInput{
		PurchaseID:     f.purchase.ID,
		FulfillmentKey: &f.key,
		ErrorMessage:   err.Error(),
		FailedAt:       s.clock.Now(),
	})
	if failErr != nil {
		return nil, fmt.Errorf("failed to fail purchase: %w", failErr)
	}

	logger.ErrorCtx(ctx, fmt.Errorf("fulfillment failed permanently: %w", err),
		zap.String("purchase_id", f.purchase.ID),
		zap.String("post_id", f.purchase.PostID),
		zap.String("status", string(domain.PurchaseStatusFailed)),
		zap.Bool("supply_released", failed))

	return s.currentResult(ctx, f.purchase.ID)
}

func (s *service) runFulfillment(ctx context.Context, f *fulfillment) error {
	if err := s.loadParticipants(ctx, f); err != nil {
		return err
	}
	if err := s.ensureMetadata(ctx, f); err != nil {
		return err
	}
	if err := s.ensureCollection(ctx, f); err != nil {
		return err
	}

	f.editionNumber = f.post.CurrentSupply
	if f.purchase.EditionNumber != nil {
		f.editionNumber = *f.purchase.EditionNumber
	}

	mint, err := s.minter.MintEdition(ctx, minter.MintEditionRequest{
		Buyer:             f.buyerWallet,
		Creator:           f.creator.Wallet(),
		CollectionAddress: *f.post.MasterMint,
		MetadataURI:       *f.post.MetadataURI,
		Name:              metadata.EditionName(f.post, f.editionNumber),
		EditionNumber:     f.editionNumber,
		IdempotencyKey:    f.purchase.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to mint edition: %w", err)
	}
	f.mint = mint

	return nil
}

func (s *service) loadParticipants(ctx context.Context, f *fulfillment) error {
	post, err := s.store.GetPostByID(ctx, f.purchase.PostID)
	if err != nil {
		return domain.NewTransientError(fmt.Errorf("failed to get post: %w", err))
	}
	if post == nil {
		return domain.NewPermanentError(domain.ErrPostNotFound)
	}
	f.post = post
	f.hasCollection = post.HasCollection()

	buyer, err := s.store.GetUserByID(ctx, f.purchase.UserID)
	if err != nil {
		return domain.NewTransientError(fmt.Errorf("failed to get buyer: %w", err))
	}
	f.buyer = buyer

	creator, err := s.store.GetUserByID(ctx, post.UserID)
	if err != nil {
		return domain.NewTransientError(fmt.Errorf("failed to get creator: %w", err))
	}
	f.creator = creator

	f.buyerWallet = f.purchase.BuyerWalletAddress
	if f.buyerWallet == "" {
		f.buyerWallet = buyer.Wallet()
	}
	if f.buyerWallet == "" {
		return fmt.Errorf("buyer %s: %w", f.purchase.UserID, domain.ErrMissingWallet)
	}
	if creator.Wallet() == "" {
		return fmt.Errorf("creator %s: %w", post.UserID, domain.ErrMissingWallet)
	}

	return nil
}

// ensureMetadata uploads the post metadata once. The URL is deterministic per post,
// so a concurrent upload writes the same document.
func (s *service) ensureMetadata(ctx context.Context, f *fulfillment) error {
	if f.post.MetadataURI != nil && *f.post.MetadataURI != "" {
		return nil
	}

	_, data, err := s.metadata.Build(ctx, f.post, f.creator)
	if err != nil {
		return fmt.Errorf("failed to build metadata: %w", err)
	}

	uri, err := s.uploader.Upload(ctx, f.post.ID, data)
	if err != nil {
		return fmt.Errorf("failed to upload metadata: %w", err)
	}

	if err := s.store.SetPostMetadataURI(ctx, f.post.ID, uri); err != nil {
		return domain.NewTransientError(fmt.Errorf("failed to set metadata uri: %w", err))
	}
	f.post.MetadataURI = &uri

	logger.InfoCtx(ctx, "Uploaded edition metadata",
		zap.String("post_id", f.post.ID),
		zap.String("metadata_uri", uri))

	return nil
}

// ensureCollection creates the post collection unless one exists.
// Only one collection address is ever stored; a loser adopts the winner's.
func (s *service) ensureCollection(ctx context.Context, f *fulfillment) error {
	if f.post.HasCollection() {
		f.hasCollection = true
		return nil
	}

	collection, err := s.minter.CreateCollection(ctx, minter.CreateCollectionRequest{
		Creator:     f.creator.Wallet(),
		MetadataURI: *f.post.MetadataURI,
		Name:        metadata.CollectionName(f.post),
		Symbol:      metadata.Symbol(f.post, s.config.NFTSymbol),
		MaxSupply:   f.post.MaxSupply,
		RoyaltyBps:  f.post.RoyaltyBps,
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	won, err := s.store.SetPostMasterMint(ctx, f.post.ID, collection.CollectionAddress)
	if err != nil {
		return domain.NewTransientError(fmt.Errorf("failed to set master mint: %w", err))
	}

	if !won {
		post, err := s.store.GetPostByID(ctx, f.post.ID)
		if err != nil {
			return domain.NewTransientError(fmt.Errorf("failed to get post: %w", err))
		}
		if post == nil || !post.HasCollection() {
			return domain.NewTransientError(errors.New("collection address not recorded"))
		}

		logger.WarnCtx(ctx, "Collection already created by a concurrent fulfillment, adopting it",
			zap.String("post_id", post.ID),
			zap.String("master_mint", *post.MasterMint),
			zap.String("orphaned_collection", collection.CollectionAddress))

		f.post.MasterMint = post.MasterMint
		f.post.CurrentSupply = post.CurrentSupply
		f.hasCollection = true
		return nil
	}

	f.post.MasterMint = &collection.CollectionAddress
	f.hasCollection = true

	kept, err := s.store.MarkMasterCreated(ctx, f.purchase.ID, f.key, collection.Signature)
	if err != nil {
		return domain.NewTransientError(fmt.Errorf("failed to mark master created: %w", err))
	}
	if !kept {
		return errClaimLost
	}

	logger.InfoCtx(ctx, "Collection created",
		zap.String("purchase_id", f.purchase.ID),
		zap.String("post_id", f.post.ID),
		zap.String("status", string(domain.PurchaseStatusMasterCreated)),
		zap.String("master_mint", collection.CollectionAddress))

	return nil
}

// completeFulfillment records the minted edition and schedules the side effects
func (s *service) completeFulfillment(ctx context.Context, f *fulfillment) (*PollResult, error) {
	now := s.clock.Now()

	recorded, err := s.store.ConfirmPurchaseMint(ctx, store.ConfirmPurchaseMintInput{
		PurchaseID:       f.purchase.ID,
		NFTMint:          f.mint.AssetAddress,
		PrintTxSignature: f.mint.Signature,
		ConfirmedAt:      now,
	})
	if err != nil {
		// The edition exists on-chain. Give the claim back; the minting service
		// deduplicates the next attempt by purchase ID.
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record minted edition: %w", err),
			zap.String("purchase_id", f.purchase.ID),
			zap.String("nft_mint", f.mint.AssetAddress))

		if _, releaseErr := s.store.ReleaseClaim(ctx, store.ReleaseClaimInput{
			PurchaseID:     f.purchase.ID,
			FulfillmentKey: f.key,
			RetryStatus:    domain.RetryStatus(true),
			ErrorMessage:   err.Error(),
		}); releaseErr != nil {
			return nil, fmt.Errorf("failed to release fulfillment claim: %w", releaseErr)
		}

		result, loadErr := s.currentResult(ctx, f.purchase.ID)
		if loadErr != nil {
			return nil, loadErr
		}
		result.Retry = true
		return result, nil
	}

	if !recorded {
		current, err := s.loadPurchase(ctx, f.purchase.ID)
		if err != nil {
			return nil, err
		}
		if !current.HasMint() {
			logger.ErrorCtx(ctx, errors.New("minted edition could not be recorded"),
				zap.String("purchase_id", f.purchase.ID),
				zap.String("status", string(current.Status)),
				zap.String("nft_mint", f.mint.AssetAddress))
		}
		return newPollResult(current), nil
	}

	p := *f.purchase
	p.Status = domain.PurchaseStatusConfirmed
	p.NFTMint = &f.mint.AssetAddress
	p.PrintTxSignature = &f.mint.Signature
	p.MintConfirmedAt = &now
	p.EditionNumber = &f.editionNumber
	p.FulfillmentKey = nil
	p.FulfillmentClaimedAt = nil
	p.ErrorMessage = nil

	logger.InfoCtx(ctx, "Edition minted",
		zap.String("purchase_id", p.ID),
		zap.String("post_id", p.PostID),
		zap.String("status", string(p.Status)),
		zap.String("nft_mint", f.mint.AssetAddress),
		zap.Int64("edition_number", f.editionNumber))

	s.scheduleSideEffects(ctx, f)

	return newPollResult(&p), nil
}

func (s *service) scheduleSideEffects(ctx context.Context, f *fulfillment) {
	snapshot := mintedSnapshot{
		Name:             metadata.EditionName(f.post, f.editionNumber),
		Symbol:           metadata.Symbol(f.post, s.config.NFTSymbol),
		MetadataURI:      *f.post.MetadataURI,
		Collection:       *f.post.MasterMint,
		EditionNumber:    f.editionNumber,
		NFTMint:          f.mint.AssetAddress,
		PrintTxSignature: f.mint.Signature,
	}
	s.effects.run(ctx, "minted_metadata", func(ctx context.Context) error {
		data, err := s.json.MarshalCanonical(snapshot)
		if err != nil {
			return fmt.Errorf("failed to encode minted metadata: %w", err)
		}
		return s.store.CreateMintedMetadata(ctx, store.CreateMintedMetadataInput{
			PurchaseID:  f.purchase.ID,
			NFTMint:     f.mint.AssetAddress,
			MetadataURI: snapshot.MetadataURI,
			Metadata:    data,
		})
	})

	var buyerUsername string
	if f.buyer != nil {
		buyerUsername = f.buyer.Username
	}
	sale := notification.EditionSold{
		PostID:        f.post.ID,
		PurchaseID:    f.purchase.ID,
		OwnerID:       f.post.UserID,
		BuyerID:       f.purchase.UserID,
		BuyerUsername: buyerUsername,
		EditionNumber: f.editionNumber,
	}
	s.effects.run(ctx, "edition_sold_notification", func(ctx context.Context) error {
		return s.dispatcher.NotifyEditionSold(ctx, sale)
	})
}

func (s *service) currentResult(ctx context.Context, purchaseID string) (*PollResult, error) {
	p, err := s.loadPurchase(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	return newPollResult(p), nil
}
