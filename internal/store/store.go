package store

import (
	"context"
	"errors"
	"time"
)

// User is the persisted premium-status record, keyed by normalized email.
type User struct {
	ID        string
	Email     string
	IsPremium bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ErrUnavailable is returned by every operation when no database is connected.
var ErrUnavailable = errors.New("store: baza de date nu este conectată")

// UserStore persists premium status per email. Callers must pass emails
// already normalized (lowercase, trimmed).
// Implementations: PostgresStore, Unavailable.
type UserStore interface {
	// FindByEmail returns the user for the given email, or nil if absent.
	// It returns an error only for database failures, not for missing rows.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// UpsertPremium atomically creates or updates the record for the given
	// email and returns the post-write state.
	UpsertPremium(ctx context.Context, email string, premium bool) (*User, error)

	Close() error
}

// Unavailable is the store used when DATABASE_URL is missing or the database
// could not be reached at startup. Every call fails fast with ErrUnavailable.
type Unavailable struct{}

func (Unavailable) FindByEmail(ctx context.Context, email string) (*User, error) {
	return nil, ErrUnavailable
}

func (Unavailable) UpsertPremium(ctx context.Context, email string, premium bool) (*User, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Close() error { return nil }
