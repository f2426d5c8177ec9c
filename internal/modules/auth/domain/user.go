package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns exactly one page. OAuth accounts carry an
// empty password hash and can only sign in through their provider.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
