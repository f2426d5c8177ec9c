package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/modules/payment/domain"
	themedomain "github.com/Nexora712/linkbio-backend/internal/modules/theme/domain"
)

// Premium themes share a single price point.
const (
	premiumThemePrice    = 499 // minor units
	premiumThemeCurrency = "USD"
)

// PayPalClient is the slice of the PayPal REST API the order flow needs.
type PayPalClient interface {
	CreateOrder(ctx context.Context, amount int, currency, description string) (string, error)
	CaptureOrder(ctx context.Context, paypalOrderID string) (string, error)
	VerifyWebhookSignature(ctx context.Context, headers domain.WebhookHeaders, event []byte) (bool, error)
}

// ThemeCatalog lists the selectable themes so orders can be validated against
// the premium subset.
type ThemeCatalog interface {
	Catalog() []themedomain.Info
}

type OrderService struct {
	repo   domain.OrderRepository
	paypal PayPalClient
	themes ThemeCatalog
	logger *zap.Logger
}

func NewOrderService(repo domain.OrderRepository, paypal PayPalClient, themes ThemeCatalog, logger *zap.Logger) *OrderService {
	return &OrderService{
		repo:   repo,
		paypal: paypal,
		themes: themes,
		logger: logger,
	}
}

// CreateOrder opens a PayPal order for a premium theme and persists it in the
// pending state. The returned order carries the PayPal order id the client
// needs for the approval flow.
func (s *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID, themeID string) (*domain.Order, error) {
	theme, ok := s.premiumTheme(themeID)
	if !ok {
		return nil, domain.ErrNotPremiumTheme
	}

	order := domain.NewOrder(userID, themeID, premiumThemePrice, premiumThemeCurrency)

	paypalID, err := s.paypal.CreateOrder(ctx, order.Amount, order.Currency, theme.Name+" theme")
	if err != nil {
		s.logger.Error("paypal order creation failed",
			zap.String("theme_id", themeID), zap.Error(err))
		return nil, fmt.Errorf("create order: %w", err)
	}
	order.PayPalOrderID = &paypalID

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("paypal_order_id", paypalID),
		zap.String("theme_id", themeID))
	return order, nil
}

// CaptureOrder captures an approved PayPal order on behalf of its owner and
// marks it completed. A capture PayPal does not report as COMPLETED leaves the
// stored status untouched.
func (s *OrderService) CaptureOrder(ctx context.Context, userID, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrOrderNotFound
	}
	if order.PayPalOrderID == nil {
		return nil, domain.ErrOrderNotCompleted
	}

	status, err := s.paypal.CaptureOrder(ctx, *order.PayPalOrderID)
	if err != nil {
		s.logger.Error("paypal capture failed",
			zap.String("order_id", orderID.String()), zap.Error(err))
		return nil, fmt.Errorf("capture order: %w", err)
	}
	if status != "COMPLETED" {
		s.logger.Warn("paypal capture not completed",
			zap.String("order_id", orderID.String()), zap.String("paypal_status", status))
		return nil, domain.ErrOrderNotCompleted
	}

	if order.Status.CanTransitionTo(domain.OrderStatusCompleted) {
		if err := s.repo.UpdateStatus(ctx, order.ID, domain.OrderStatusCompleted); err != nil {
			return nil, fmt.Errorf("capture order: %w", err)
		}
		order.Status = domain.OrderStatusCompleted
	}
	return order, nil
}

// ListOrders returns the user's orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

type webhookEvent struct {
	EventType string `json:"event_type"`
	Resource  struct {
		ID                string `json:"id"`
		SupplementaryData struct {
			RelatedIDs struct {
				OrderID string `json:"order_id"`
			} `json:"related_ids"`
		} `json:"supplementary_data"`
	} `json:"resource"`
}

// HandleWebhook verifies a PayPal webhook delivery and applies the matching
// status transition. Unknown event types, unknown orders and stale transitions
// are all acknowledged without error; only a failed signature check is
// rejected.
func (s *OrderService) HandleWebhook(ctx context.Context, headers domain.WebhookHeaders, body []byte) error {
	verified, err := s.paypal.VerifyWebhookSignature(ctx, headers, body)
	if err != nil {
		return fmt.Errorf("handle webhook: %w", err)
	}
	if !verified {
		return domain.ErrWebhookUnverified
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("handle webhook: decode event: %w", err)
	}

	var next domain.OrderStatus
	switch event.EventType {
	case domain.EventOrderApproved:
		next = domain.OrderStatusApproved
	case domain.EventCaptureComplete:
		next = domain.OrderStatusCompleted
	case domain.EventCaptureDenied:
		next = domain.OrderStatusDenied
	default:
		s.logger.Debug("ignoring webhook event", zap.String("event_type", event.EventType))
		return nil
	}

	paypalOrderID := event.Resource.ID
	if event.EventType != domain.EventOrderApproved {
		// capture events reference the order through supplementary data
		paypalOrderID = event.Resource.SupplementaryData.RelatedIDs.OrderID
	}
	if paypalOrderID == "" {
		s.logger.Warn("webhook event without an order reference",
			zap.String("event_type", event.EventType))
		return nil
	}

	order, err := s.repo.GetByPayPalID(ctx, paypalOrderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			s.logger.Warn("webhook for unknown order",
				zap.String("paypal_order_id", paypalOrderID))
			return nil
		}
		return fmt.Errorf("handle webhook: %w", err)
	}

	if !order.Status.CanTransitionTo(next) {
		s.logger.Info("stale webhook transition ignored",
			zap.String("order_id", order.ID.String()),
			zap.String("from", string(order.Status)),
			zap.String("to", string(next)))
		return nil
	}

	if err := s.repo.UpdateStatus(ctx, order.ID, next); err != nil {
		return fmt.Errorf("handle webhook: %w", err)
	}
	s.logger.Info("order status updated from webhook",
		zap.String("order_id", order.ID.String()), zap.String("status", string(next)))
	return nil
}

func (s *OrderService) premiumTheme(themeID string) (themedomain.Info, bool) {
	for _, info := range s.themes.Catalog() {
		if info.ID == themeID && info.Premium {
			return info, true
		}
	}
	return themedomain.Info{}, false
}
