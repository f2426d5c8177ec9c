package application

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/modules/notification/domain"
)

const publishTimeout = 5 * time.Second

// Sender pushes a payload to every open session of one user. Satisfied by the
// websocket hub.
type Sender interface {
	SendToUser(userID uuid.UUID, message []byte)
}

type NotificationService struct {
	repo   domain.NotificationRepository
	hub    Sender
	logger *zap.Logger
}

func NewNotificationService(repo domain.NotificationRepository, hub Sender, logger *zap.Logger) *NotificationService {
	return &NotificationService{repo: repo, hub: hub, logger: logger}
}

// Publish stores a notification and pushes it to the user's open sessions.
// A persistence failure does not block the push; the feed is best effort.
func (s *NotificationService) Publish(ctx context.Context, userID uuid.UUID, title, message string, t domain.NotificationType) {
	n := domain.NewNotification(userID, title, message, t)

	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("failed to store notification",
			zap.String("user_id", userID.String()), zap.Error(err))
	}

	payload, err := json.Marshal(n)
	if err != nil {
		s.logger.Error("failed to encode notification", zap.Error(err))
		return
	}
	s.hub.SendToUser(userID, payload)
}

// ExportStarted, ExportCompleted and ExportFailed let the service act as the
// export pipeline's lifecycle sink.

func (s *NotificationService) ExportStarted(userID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	s.Publish(ctx, userID, "Export started", "Your page export is being prepared.", domain.NotificationTypeInfo)
}

func (s *NotificationService) ExportCompleted(userID uuid.UUID, filename string) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	s.Publish(ctx, userID, "Export ready", filename, domain.NotificationTypeSuccess)
}

func (s *NotificationService) ExportFailed(userID uuid.UUID, reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	s.Publish(ctx, userID, "Export failed", reason, domain.NotificationTypeError)
}

func (s *NotificationService) GetUserNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Notification, error) {
	return s.repo.GetByUserID(ctx, userID, limit, offset)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.UnreadCount(ctx, userID)
}
