package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeError   NotificationType = "error"
)

// Notification is one entry in a user's event feed. The same JSON shape is
// pushed over the websocket and served from the history endpoints.
type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"userId" db:"user_id"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Type      NotificationType `json:"type" db:"type"`
	IsRead    bool             `json:"isRead" db:"is_read"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
}

func NewNotification(userID uuid.UUID, title, message string, t NotificationType) *Notification {
	return &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      t,
		CreatedAt: time.Now(),
	}
}

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Notification, error)
	MarkAsRead(ctx context.Context, notificationID, userID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
}
