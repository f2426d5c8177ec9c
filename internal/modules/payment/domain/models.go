package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusApproved  OrderStatus = "approved"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusDenied    OrderStatus = "denied"
)

// CanTransitionTo encodes the order status machine. Webhook events can arrive
// out of order, so callers treat a rejected transition as stale, not fatal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusApproved || next == OrderStatusCompleted || next == OrderStatusDenied
	case OrderStatusApproved:
		return next == OrderStatusCompleted || next == OrderStatusDenied
	default:
		// completed and denied are terminal
		return false
	}
}

// Order is a premium theme purchase.
type Order struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	UserID        uuid.UUID   `json:"userId" db:"user_id"`
	ThemeID       string      `json:"themeId" db:"theme_id"`
	Amount        int         `json:"amount" db:"amount"` // minor units
	Currency      string      `json:"currency" db:"currency"`
	PayPalOrderID *string     `json:"paypalOrderId,omitempty" db:"paypal_order_id"`
	Status        OrderStatus `json:"status" db:"status"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" db:"updated_at"`
}

func NewOrder(userID uuid.UUID, themeID string, amount int, currency string) *Order {
	now := time.Now()
	return &Order{
		ID:        uuid.New(),
		UserID:    userID,
		ThemeID:   themeID,
		Amount:    amount,
		Currency:  currency,
		Status:    OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	GetByPayPalID(ctx context.Context, paypalOrderID string) (*Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)
}
