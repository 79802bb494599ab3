package purchase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-editions/internal/domain"
	"github.com/feral-file/ff-editions/internal/logger"
	solanaprovider "github.com/feral-file/ff-editions/internal/providers/solana"
	"github.com/feral-file/ff-editions/internal/store"
)

func (s *service) Reserve(ctx context.Context, input ReserveInput) (*ReserveResult, error) {
	post, err := s.loadPost(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	if post.Type != domain.PostTypeEdition {
		return nil, domain.ErrNotEdition
	}
	if post.IsSoldOut() {
		return &ReserveResult{Status: ReserveStatusSoldOut}, nil
	}

	wallet, err := s.resolveBuyerWallet(ctx, input.UserID, input.WalletAddress)
	if err != nil {
		return nil, err
	}

	ok, err := s.balance.sufficient(ctx, wallet, uint64(post.Price), post.Currency)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.InfoCtx(ctx, "Reservation refused, insufficient funds",
			zap.String("post_id", post.ID),
			zap.String("wallet", wallet))
		return &ReserveResult{Status: ReserveStatusInsufficientFunds}, nil
	}

	creator, err := s.store.GetUserByID(ctx, post.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get creator: %w", err)
	}
	if creator.Wallet() == "" {
		return nil, fmt.Errorf("creator %s: %w", post.UserID, domain.ErrMissingWallet)
	}

	purchase, err := s.store.ReservePurchase(ctx, store.ReservePurchaseInput{
		PurchaseID:         uuid.New().String(),
		UserID:             input.UserID,
		PostID:             post.ID,
		BuyerWalletAddress: wallet,
		AmountPaid:         post.Price,
		Currency:           post.Currency,
		ReservedAt:         s.clock.Now(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrSoldOut) {
			return &ReserveResult{Status: ReserveStatusSoldOut}, nil
		}
		return nil, fmt.Errorf("failed to reserve purchase: %w", err)
	}

	tx, err := s.txBuilder.BuildPayment(ctx, solanaprovider.PaymentParams{
		PurchaseID: purchase.ID,
		Buyer:      wallet,
		Creator:    creator.Wallet(),
		Price:      uint64(post.Price),
		Currency:   post.Currency,
	})
	if err != nil {
		// Nobody can sign a transaction that was never built; give the unit back now
		if _, abandonErr := s.store.AbandonPurchase(ctx, purchase.ID, s.clock.Now()); abandonErr != nil {
			logger.ErrorCtx(ctx, abandonErr, zap.String("purchase_id", purchase.ID))
		}
		return nil, fmt.Errorf("failed to build payment transaction: %w", err)
	}

	logger.InfoCtx(ctx, "Reserved edition",
		zap.String("purchase_id", purchase.ID),
		zap.String("post_id", post.ID),
		zap.String("status", string(purchase.Status)),
		zap.Int64p("edition_number", purchase.EditionNumber))

	return &ReserveResult{
		Status:        ReserveStatusReserved,
		PurchaseID:    purchase.ID,
		Transaction:   tx,
		EditionNumber: purchase.EditionNumber,
	}, nil
}

// resolveBuyerWallet returns the wallet the buyer pays with.
// An explicit address must be a verified wallet of the user or the user's primary wallet.
func (s *service) resolveBuyerWallet(ctx context.Context, userID, address string) (string, error) {
	if userID == "" {
		return "", domain.ErrAuthRequired
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get buyer: %w", err)
	}
	if user == nil {
		return "", domain.ErrAuthRequired
	}

	if address == "" {
		if user.Wallet() == "" {
			return "", domain.ErrAuthRequired
		}
		return user.Wallet(), nil
	}

	if _, err := solanaprovider.ParsePublicKey(address); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrWalletNotVerified, err)
	}

	verified, err := s.store.IsWalletVerifiedForUser(ctx, userID, address)
	if err != nil {
		return "", fmt.Errorf("failed to check wallet: %w", err)
	}
	if verified || address == user.Wallet() {
		return address, nil
	}

	return "", domain.ErrWalletNotVerified
}
