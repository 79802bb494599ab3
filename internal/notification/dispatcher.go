package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-editions/internal/adapter"
	"github.com/feral-file/ff-editions/internal/logger"
	"github.com/feral-file/ff-editions/internal/messaging"
	"github.com/feral-file/ff-editions/internal/store"
	"github.com/feral-file/ff-editions/internal/store/schema"
)

// EditionSold describes a completed edition sale
type EditionSold struct {
	PostID        string
	PurchaseID    string
	OwnerID       string
	BuyerID       string
	BuyerUsername string
	EditionNumber int64
}

// Dispatcher delivers notifications about purchases
//
//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher.go -package=mocks -mock_names=Dispatcher=MockDispatcher
type Dispatcher interface {
	// NotifyEditionSold tells the post owner that an edition was sold.
	// Nothing is sent when the buyer owns the post.
	NotifyEditionSold(ctx context.Context, sale EditionSold) error
}

type dispatcher struct {
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewDispatcher creates a new dispatcher. publisher may be nil, in which case
// only the in-app notification is written.
func NewDispatcher(st store.Store, publisher messaging.Publisher, clock adapter.Clock) Dispatcher {
	return &dispatcher{
		store:     st,
		publisher: publisher,
		clock:     clock,
	}
}

func (d *dispatcher) NotifyEditionSold(ctx context.Context, sale EditionSold) error {
	if sale.OwnerID == "" || sale.OwnerID == sale.BuyerID {
		return nil
	}

	var errs []error

	err := d.store.CreateNotification(ctx, store.CreateNotificationInput{
		UserID:     sale.OwnerID,
		ActorID:    sale.BuyerID,
		Type:       schema.NotificationTypeEditionSold,
		PostID:     &sale.PostID,
		PurchaseID: &sale.PurchaseID,
	})
	if err != nil {
		errs = append(errs, fmt.Errorf("failed to create in-app notification: %w", err))
	}

	if d.publisher != nil {
		now := d.clock.Now()
		event := &messaging.PushEvent{
			ID:         ulid.MustNewDefault(now).String(),
			Type:       string(schema.NotificationTypeEditionSold),
			UserID:     sale.OwnerID,
			ActorID:    sale.BuyerID,
			PostID:     sale.PostID,
			PurchaseID: sale.PurchaseID,
			Title:      "Edition sold",
			Body:       pushBody(sale),
			CreatedAt:  now,
		}
		if err := d.publisher.PublishPush(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("failed to send push notification: %w", err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	logger.InfoCtx(ctx, "Notified owner of edition sale",
		zap.String("owner_id", sale.OwnerID),
		zap.String("post_id", sale.PostID))

	return nil
}

func pushBody(sale EditionSold) string {
	buyer := sale.BuyerUsername
	if buyer == "" {
		buyer = "Someone"
	}
	if sale.EditionNumber > 0 {
		return fmt.Sprintf("%s collected edition #%d of your post", buyer, sale.EditionNumber)
	}
	return fmt.Sprintf("%s collected an edition of your post", buyer)
}
