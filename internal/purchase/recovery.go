package purchase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-editions/internal/adapter"
	"github.com/feral-file/ff-editions/internal/domain"
	"github.com/feral-file/ff-editions/internal/logger"
	"github.com/feral-file/ff-editions/internal/store"
	"github.com/feral-file/ff-editions/internal/store/schema"
)

// Recoverer moves purchases out of states their owner abandoned.
// It is shared by the status poller and the background sweeper.
//
//go:generate mockgen -source=recovery.go -destination=../mocks/recoverer.go -package=mocks -mock_names=Recoverer=MockRecoverer
type Recoverer interface {
	// AbandonStaleReservation abandons an unsigned reservation older than the threshold
	// and releases its supply. Returns false when the purchase no longer qualifies.
	AbandonStaleReservation(ctx context.Context, p *schema.Purchase) (bool, error)

	// RecoverStaleMinting resets a minting purchase whose attempt is older than the threshold
	// to master_created or awaiting_fulfillment. Returns false when the purchase no longer qualifies.
	RecoverStaleMinting(ctx context.Context, p *schema.Purchase) (bool, error)
}

type recoverer struct {
	store     store.Store
	clock     adapter.Clock
	threshold time.Duration
}

// NewRecoverer creates a new recoverer
func NewRecoverer(st store.Store, clock adapter.Clock, threshold time.Duration) Recoverer {
	if threshold <= 0 {
		threshold = domain.DEFAULT_STALE_THRESHOLD
	}
	return &recoverer{store: st, clock: clock, threshold: threshold}
}

func (r *recoverer) AbandonStaleReservation(ctx context.Context, p *schema.Purchase) (bool, error) {
	now := r.clock.Now()
	if p.Status != domain.PurchaseStatusReserved || p.HasSignature() || !domain.IsStale(now, p.ReservedAt, r.threshold) {
		return false, nil
	}

	ok, err := r.store.AbandonPurchase(ctx, p.ID, now)
	if err != nil {
		return false, fmt.Errorf("failed to abandon purchase: %w", err)
	}

	if ok {
		logger.InfoCtx(ctx, "Abandoned stale reservation",
			zap.String("purchase_id", p.ID),
			zap.String("post_id", p.PostID),
			zap.String("status", string(domain.PurchaseStatusAbandoned)))
	}

	return ok, nil
}

func (r *recoverer) RecoverStaleMinting(ctx context.Context, p *schema.Purchase) (bool, error) {
	if p.Status != domain.PurchaseStatusMinting || p.HasMint() || !domain.IsStale(r.clock.Now(), p.MintingSince(), r.threshold) {
		return false, nil
	}

	post, err := r.store.GetPostByID(ctx, p.PostID)
	if err != nil {
		return false, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return false, domain.ErrPostNotFound
	}

	retryStatus := domain.RetryStatus(post.HasCollection())
	ok, err := r.store.RecoverStaleMinting(ctx, store.RecoverStaleMintingInput{
		PurchaseID:  p.ID,
		RetryStatus: retryStatus,
		StaleBefore: r.clock.Now().Add(-r.threshold),
	})
	if err != nil {
		return false, fmt.Errorf("failed to recover stale minting: %w", err)
	}

	if ok {
		logger.WarnCtx(ctx, "Recovered stale minting attempt",
			zap.String("purchase_id", p.ID),
			zap.String("post_id", p.PostID),
			zap.String("status", string(retryStatus)))
	}

	return ok, nil
}
