package domain

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}
