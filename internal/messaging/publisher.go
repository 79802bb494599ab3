package messaging

import (
	"context"
	"time"
)

// PushEvent is a push notification addressed to one user
type PushEvent struct {
	// ID is a ULID, unique per event and sortable by creation time
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	UserID     string    `json:"userId"`
	ActorID    string    `json:"actorId"`
	PostID     string    `json:"postId,omitempty"`
	PurchaseID string    `json:"purchaseId,omitempty"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Publisher defines the interface for publishing push notifications to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishPush publishes a push notification
	PublishPush(ctx context.Context, event *PushEvent) error
	// Close closes the connection
	Close()
}
