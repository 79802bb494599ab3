package purchase

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/feral-file/ff-editions/internal/domain"
	"github.com/feral-file/ff-editions/internal/logger"
	"github.com/feral-file/ff-editions/internal/store"
	"github.com/feral-file/ff-editions/internal/store/schema"
)

// maxClaimAttempts bounds the claim loop when an orphaned confirmation is reset
const maxClaimAttempts = 2

func (s *service) Poll(ctx context.Context, userID, purchaseID string) (*PollResult, error) {
	p, err := s.loadOwnedPurchase(ctx, userID, purchaseID)
	if err != nil {
		return nil, err
	}

	return s.advance(logger.WithPurchase(ctx, p.ID), p)
}

// advance moves the purchase forward by at most one payment step or one fulfillment attempt
func (s *service) advance(ctx context.Context, p *schema.Purchase) (*PollResult, error) {
	if p.Status == domain.PurchaseStatusReserved && !p.HasSignature() {
		abandoned, err := s.recoverer.AbandonStaleReservation(ctx, p)
		if err != nil {
			return nil, err
		}
		if abandoned {
			return s.currentResult(ctx, p.ID)
		}
		return newPollResult(p), nil
	}

	if p.Status == domain.PurchaseStatusReserved {
		promoted, err := s.store.PromoteReservedToSubmitted(ctx, p.ID, s.clock.Now())
		if err != nil {
			return nil, err
		}
		if promoted {
			p.Status = domain.PurchaseStatusSubmitted
		}
	}

	if slices.Contains(domain.PaymentUpgradableStatuses, p.Status) {
		return s.trackPayment(ctx, p)
	}

	if p.Status == domain.PurchaseStatusMinting {
		recovered, err := s.recoverer.RecoverStaleMinting(ctx, p)
		if err != nil {
			return nil, err
		}
		if !recovered {
			return newPollResult(p), nil
		}

		p, err = s.loadPurchase(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if p.Status == domain.PurchaseStatusConfirmed {
			return newPollResult(p), nil
		}
	}

	if slices.Contains(domain.FulfillableStatuses, p.Status) {
		return s.claimAndFulfill(ctx, p.ID)
	}

	return newPollResult(p), nil
}

// trackPayment checks the payment signature on-chain. A landed payment only moves the
// purchase to awaiting_fulfillment; minting starts on the next poll.
func (s *service) trackPayment(ctx context.Context, p *schema.Purchase) (*PollResult, error) {
	status, err := s.chain.ConfirmationStatus(ctx, *p.TxSignature)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to check payment confirmation",
			zap.String("purchase_id", p.ID),
			zap.Error(err))
		return newPollResult(p), nil
	}

	now := s.clock.Now()

	switch {
	case status.Landed():
		if p.HasMint() {
			return newPollResult(p), nil
		}

		ok, err := s.store.MarkPaymentConfirmed(ctx, p.ID, now)
		if err != nil {
			return nil, err
		}
		if !ok {
			return s.currentResult(ctx, p.ID)
		}

		logger.InfoCtx(ctx, "Payment confirmed",
			zap.String("purchase_id", p.ID),
			zap.String("post_id", p.PostID),
			zap.String("status", string(domain.PurchaseStatusAwaitingFulfillment)),
			zap.String("confirmation", string(status)))

		p.Status = domain.PurchaseStatusAwaitingFulfillment
		p.PaymentConfirmedAt = &now
		return newPollResult(p), nil

	case status == domain.ConfirmationFailed:
		ok, err := s.store.FailPurchase(ctx, store.FailPurchaseInput{
			PurchaseID:   p.ID,
			ErrorMessage: "payment transaction failed on-chain",
			FailedAt:     now,
		})
		if err != nil {
			return nil, err
		}
		if ok {
			logger.InfoCtx(ctx, "Payment failed, supply released",
				zap.String("purchase_id", p.ID),
				zap.String("post_id", p.PostID),
				zap.String("status", string(domain.PurchaseStatusFailed)))
		}
		return s.currentResult(ctx, p.ID)

	default:
		return newPollResult(p), nil
	}
}

func (s *service) claimAndFulfill(ctx context.Context, purchaseID string) (*PollResult, error) {
	for attempt := 0; attempt < maxClaimAttempts; attempt++ {
		c, err := s.claim(ctx, purchaseID)
		if err != nil {
			return nil, err
		}

		switch c.Outcome {
		case ClaimAcquired:
			return s.fulfill(ctx, c)
		case ClaimRetry:
			continue
		default:
			return newPollResult(c.Purchase), nil
		}
	}

	return s.currentResult(ctx, purchaseID)
}

func (s *service) RetryFulfillment(ctx context.Context, userID, purchaseID string) (*PollResult, error) {
	p, err := s.loadOwnedPurchase(ctx, userID, purchaseID)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithPurchase(ctx, p.ID)

	if !p.HasSignature() {
		return nil, domain.ErrPaymentNotConfirmed
	}

	switch p.Status {
	case domain.PurchaseStatusConfirmed:
		if p.HasMint() {
			return newPollResult(p), nil
		}

	case domain.PurchaseStatusReserved, domain.PurchaseStatusSubmitted:
		status, err := s.chain.ConfirmationStatus(ctx, *p.TxSignature)
		if err != nil {
			return nil, fmt.Errorf("failed to check payment confirmation: %w", err)
		}
		if !status.Landed() {
			return nil, domain.ErrPaymentNotConfirmed
		}
		if _, err := s.store.MarkPaymentConfirmed(ctx, p.ID, s.clock.Now()); err != nil {
			return nil, err
		}

	case domain.PurchaseStatusMinting:
		recovered, err := s.recoverer.RecoverStaleMinting(ctx, p)
		if err != nil {
			return nil, err
		}
		if !recovered {
			return newPollResult(p), nil
		}

	case domain.PurchaseStatusFailed, domain.PurchaseStatusAbandoned, domain.PurchaseStatusBlockedMissingMaster:
		return nil, domain.ErrPurchaseClosed
	}

	return s.claimAndFulfill(ctx, p.ID)
}
