package purchase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-editions/internal/domain"
	"github.com/feral-file/ff-editions/internal/logger"
	solanaprovider "github.com/feral-file/ff-editions/internal/providers/solana"
)

func (s *service) SubmitSignature(ctx context.Context, userID, purchaseID, signature string) error {
	if _, err := solanaprovider.ParseSignature(signature); err != nil {
		return err
	}

	p, err := s.loadOwnedPurchase(ctx, userID, purchaseID)
	if err != nil {
		return err
	}

	ok, err := s.store.SubmitPurchaseSignature(ctx, p.ID, signature, s.clock.Now())
	if err != nil {
		return err
	}
	if !ok {
		// A repeated submit of the recorded signature is not an error
		current, err := s.loadPurchase(ctx, p.ID)
		if err != nil {
			return err
		}
		if current.TxSignature != nil && *current.TxSignature == signature {
			return nil
		}
		return domain.ErrPurchaseClosed
	}

	logger.InfoCtx(ctx, "Payment signature submitted",
		zap.String("purchase_id", p.ID),
		zap.String("post_id", p.PostID),
		zap.String("status", string(domain.PurchaseStatusSubmitted)),
		zap.String("tx_signature", signature))

	return nil
}

func (s *service) Cancel(ctx context.Context, userID, purchaseID string) error {
	p, err := s.loadOwnedPurchase(ctx, userID, purchaseID)
	if err != nil {
		return err
	}
	if p.Status == domain.PurchaseStatusAbandoned {
		return nil
	}

	ok, err := s.store.AbandonPurchase(ctx, p.ID, s.clock.Now())
	if err != nil {
		return fmt.Errorf("failed to cancel purchase: %w", err)
	}
	if !ok {
		return domain.ErrNotCancelable
	}

	logger.InfoCtx(ctx, "Reservation canceled",
		zap.String("purchase_id", p.ID),
		zap.String("post_id", p.PostID),
		zap.String("status", string(domain.PurchaseStatusAbandoned)))

	return nil
}
