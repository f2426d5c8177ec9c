package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/gateway/middleware"
	"github.com/Nexora712/linkbio-backend/internal/modules/payment/domain"
	"github.com/Nexora712/linkbio-backend/internal/modules/payment/infrastructure/paypal"
	"github.com/Nexora712/linkbio-backend/internal/shared/utils"
)

const maxWebhookBodyBytes = 1 << 20

// OrderService is the application surface the handler depends on.
type OrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, themeID string) (*domain.Order, error)
	CaptureOrder(ctx context.Context, userID, orderID uuid.UUID) (*domain.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	HandleWebhook(ctx context.Context, headers domain.WebhookHeaders, body []byte) error
}

type PaymentHandler struct {
	service OrderService
	logger  *zap.Logger
}

func NewPaymentHandler(service OrderService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{service: service, logger: logger}
}

// CreateOrder opens a PayPal order for a premium theme.
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req struct {
		ThemeID string `json:"themeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), userID, req.ThemeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotPremiumTheme) {
			utils.WriteError(w, http.StatusBadRequest, "theme is not purchasable", nil)
			return
		}
		h.logger.Error("order creation failed",
			zap.String("user_id", userID.String()), zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "failed to create order", nil)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, order)
}

// CaptureOrder finalizes an approved order.
func (h *PaymentHandler) CaptureOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	orderID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid order id", err)
		return
	}

	order, err := h.service.CaptureOrder(r.Context(), userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			utils.WriteError(w, http.StatusNotFound, "order not found", nil)
		case errors.Is(err, domain.ErrOrderNotCompleted):
			utils.WriteError(w, http.StatusConflict, "payment has not completed", nil)
		default:
			h.logger.Error("order capture failed",
				zap.String("order_id", orderID.String()), zap.Error(err))
			utils.WriteError(w, http.StatusInternalServerError, "failed to capture order", nil)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, order)
}

// ListOrders returns the authenticated user's purchase history.
func (h *PaymentHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	orders, err := h.service.ListOrders(r.Context(), userID)
	if err != nil {
		h.logger.Error("order listing failed",
			zap.String("user_id", userID.String()), zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "failed to list orders", nil)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

// Webhook receives PayPal event deliveries. Everything except a failed
// signature check is acknowledged with 200 so PayPal stops retrying.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "unreadable body", err)
		return
	}

	headers := paypal.WebhookHeadersFromRequest(r)
	if err := h.service.HandleWebhook(r.Context(), headers, body); err != nil {
		if errors.Is(err, domain.ErrWebhookUnverified) {
			h.logger.Warn("rejected webhook with invalid signature")
			utils.WriteError(w, http.StatusBadRequest, "invalid signature", nil)
			return
		}
		h.logger.Error("webhook handling failed", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "webhook processing failed", nil)
		return
	}

	w.WriteHeader(http.StatusOK)
}
