package schema

import "time"

// NotificationType is the kind of in-app notification
type NotificationType string

const (
	// NotificationTypeEditionSold is sent to the creator when an edition is minted for a buyer
	NotificationTypeEditionSold NotificationType = "edition_sold"
)

// Notification represents the notifications table - in-app notifications
type Notification struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID is the recipient
	UserID string `gorm:"column:user_id;not null;type:uuid"`
	// ActorID is the user who triggered the notification
	ActorID string `gorm:"column:actor_id;not null;type:uuid"`
	// Type is the notification kind
	Type NotificationType `gorm:"column:type;not null;type:varchar(32)"`
	// PostID is the related post
	PostID *string `gorm:"column:post_id;type:uuid"`
	// PurchaseID is the related purchase
	PurchaseID *string `gorm:"column:purchase_id;type:uuid"`
	// ReadAt is set when the recipient opened the notification
	ReadAt *time.Time `gorm:"column:read_at;type:timestamptz"`
	// CreatedAt is the timestamp when the notification was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
