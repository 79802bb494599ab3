package purchase

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-editions/internal/domain"
	"github.com/feral-file/ff-editions/internal/logger"
	"github.com/feral-file/ff-editions/internal/store"
	"github.com/feral-file/ff-editions/internal/store/schema"
)

// ClaimOutcome is the result of trying to take the fulfillment lease
type ClaimOutcome string

const (
	// ClaimAcquired means the caller holds the lease and must fulfill
	ClaimAcquired ClaimOutcome = "acquired"
	// ClaimAlreadyConfirmed means the edition was already minted
	ClaimAlreadyConfirmed ClaimOutcome = "already_confirmed"
	// ClaimRetry means an orphaned confirmation was reset and the claim can be attempted again
	ClaimRetry ClaimOutcome = "retry"
	// ClaimInProgress means another caller holds a fresh lease
	ClaimInProgress ClaimOutcome = "in_progress"
	// ClaimNotClaimable means the purchase is in a status that cannot be fulfilled
	ClaimNotClaimable ClaimOutcome = "not_claimable"
)

// Claim is the fulfillment lease on a purchase
type Claim struct {
	Outcome ClaimOutcome
	// Key is set only when the lease was acquired
	Key string
	// Purchase is the purchase after the claim attempt
	Purchase *schema.Purchase
}

func (s *service) claim(ctx context.Context, purchaseID string) (*Claim, error) {
	now := s.clock.Now()
	key := ulid.MustNewDefault(now).String()

	ok, err := s.store.ClaimFulfillment(ctx, store.ClaimFulfillmentInput{
		PurchaseID:     purchaseID,
		FulfillmentKey: key,
		ClaimedAt:      now,
		StaleBefore:    s.staleBefore(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to claim fulfillment: %w", err)
	}

	p, err := s.loadPurchase(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	if ok {
		logger.InfoCtx(ctx, "Fulfillment claimed",
			zap.String("purchase_id", p.ID),
			zap.String("post_id", p.PostID),
			zap.String("status", string(p.Status)),
			zap.String("fulfillment_key", key))
		return &Claim{Outcome: ClaimAcquired, Key: key, Purchase: p}, nil
	}

	switch {
	case p.Status == domain.PurchaseStatusConfirmed && p.HasMint():
		return &Claim{Outcome: ClaimAlreadyConfirmed, Purchase: p}, nil

	case p.Status == domain.PurchaseStatusConfirmed:
		reset, err := s.store.RecoverOrphanedConfirmation(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to recover orphaned confirmation: %w", err)
		}
		if reset {
			logger.WarnCtx(ctx, "Reset confirmed purchase without a mint",
				zap.String("purchase_id", p.ID),
				zap.String("post_id", p.PostID),
				zap.String("status", string(domain.PurchaseStatusAwaitingFulfillment)))
		}
		return &Claim{Outcome: ClaimRetry, Purchase: p}, nil

	case p.Status == domain.PurchaseStatusMinting && !domain.IsStale(now, p.FulfillmentClaimedAt, s.config.StaleThreshold):
		return &Claim{Outcome: ClaimInProgress, Purchase: p}, nil

	default:
		return &Claim{Outcome: ClaimNotClaimable, Purchase: p}, nil
	}
}
