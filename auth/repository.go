package auth

import (
	"context"
	"time"
)

// UserRepository is the Credential Store. Implementations exist for PostgreSQL,
// MongoDB and memory; all of them enforce email uniqueness themselves so that two
// concurrent registrations for one email cannot both succeed.
type UserRepository interface {
	// Create assigns ID and CreatedAt and persists the user.
	// It returns apperror.ErrDuplicateRecord when the email is taken.
	Create(ctx context.Context, user *User) error
	// GetByEmail returns apperror.ErrRecordNotFound when no user has that email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByID returns apperror.ErrRecordNotFound when no user has that id.
	GetByID(ctx context.Context, id string) (*User, error)
}

// SessionRepository persists server-side sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	// Delete is a no-op for unknown ids.
	Delete(ctx context.Context, id string) error
	// DeleteExpired removes sessions whose expiry is at or before now and returns how many.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
