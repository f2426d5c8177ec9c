package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Nexora712/linkbio-backend/internal/modules/payment/domain"
)

type PgOrderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *PgOrderRepository {
	return &PgOrderRepository{db: db}
}

func (r *PgOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (id, user_id, theme_id, amount, currency, paypal_order_id, status, created_at, updated_at)
		VALUES (:id, :user_id, :theme_id, :amount, :currency, :paypal_order_id, :status, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *PgOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var order domain.Order
	err := r.db.GetContext(ctx, &order, `SELECT * FROM orders WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

func (r *PgOrderRepository) GetByPayPalID(ctx context.Context, paypalOrderID string) (*domain.Order, error) {
	var order domain.Order
	err := r.db.GetContext(ctx, &order, `SELECT * FROM orders WHERE paypal_order_id = $1`, paypalOrderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order by paypal id: %w", err)
	}
	return &order, nil
}

func (r *PgOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *PgOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	orders := []domain.Order{}
	err := r.db.SelectContext(ctx, &orders,
		`SELECT * FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
