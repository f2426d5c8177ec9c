package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/gateway/middleware"
	"github.com/Nexora712/linkbio-backend/internal/modules/notification/domain"
	ws "github.com/Nexora712/linkbio-backend/internal/modules/notification/infrastructure/websocket"
	"github.com/Nexora712/linkbio-backend/internal/shared/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NotificationService is the application surface the handler depends on.
type NotificationService interface {
	GetUserNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, notificationID, userID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
}

type NotificationHandler struct {
	service NotificationService
	hub     *ws.Hub
	logger  *zap.Logger
}

func NewNotificationHandler(service NotificationService, hub *ws.Hub, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{service: service, hub: hub, logger: logger}
}

// Subscribe upgrades the request to a websocket pushing the user's events.
func (h *NotificationHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	ws.ServeWs(h.hub, w, r, userID)
}

// List returns a page of the user's notification history, newest first.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	limit := defaultPageSize
	offset := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= maxPageSize {
			limit = v
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	notifications, err := h.service.GetUserNotifications(r.Context(), userID, limit, offset)
	if err != nil {
		h.logger.Error("notification listing failed",
			zap.String("user_id", userID.String()), zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch notifications", nil)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"data": notifications})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	notificationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid notification id", err)
		return
	}

	if err := h.service.MarkAsRead(r.Context(), notificationID, userID); err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			utils.WriteError(w, http.StatusNotFound, "notification not found", nil)
			return
		}
		h.logger.Error("mark as read failed",
			zap.String("notification_id", notificationID.String()), zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "failed to mark notification as read", nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	if err := h.service.MarkAllAsRead(r.Context(), userID); err != nil {
		h.logger.Error("mark all as read failed",
			zap.String("user_id", userID.String()), zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "failed to mark notifications as read", nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	count, err := h.service.UnreadCount(r.Context(), userID)
	if err != nil {
		h.logger.Error("unread count failed",
			zap.String("user_id", userID.String()), zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "failed to get unread count", nil)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]int{"count": count})
}
