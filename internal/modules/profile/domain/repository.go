package domain

import (
	"context"

	"github.com/google/uuid"
)

// PageRepository persists pages. Implementations return ErrPageNotFound when
// the user has no page row.
type PageRepository interface {
	Create(ctx context.Context, page *Page) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Page, error)
	Update(ctx context.Context, page *Page) error
}
