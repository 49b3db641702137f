// Package user holds the premium-status business rules: email normalization,
// the missing-record default and the premium-flag coercion.
package user

import (
	"context"
	"errors"
	"strings"

	"github.com/Nutujean/lumina-vietii-backend/internal/store"
)

// ErrInvalidEmail is returned when an email is empty after normalization.
var ErrInvalidEmail = errors.New("user: email gol")

// Status is the canonical read/write response for a user's premium flag.
type Status struct {
	Email     string `json:"email"`
	IsPremium bool   `json:"isPremium"`
}

// NormalizeEmail lowercases the email and trims surrounding whitespace. Every
// lookup and write goes through this, so "Foo@Bar.com " and "foo@bar.com"
// resolve to the same record.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Truthy coerces a decoded JSON value to a strict boolean, matching how the
// frontend has always sent the premium flag: false, 0, "", null and a missing
// field are false, everything else (including "0" and "false") is true.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0
	default:
		// objects and arrays
		return true
	}
}

// Service mediates between the HTTP handlers and the record store. It keeps
// no state across calls; every request re-reads or re-writes the store.
type Service struct {
	store store.UserStore
}

// NewService creates a service backed by the given store.
func NewService(st store.UserStore) *Service {
	return &Service{store: st}
}

// GetStatus reports the premium flag for the given email. An absent record
// reads as not premium; nothing is persisted on the read path.
func (s *Service) GetStatus(ctx context.Context, rawEmail string) (*Status, error) {
	email := NormalizeEmail(rawEmail)
	if email == "" {
		return nil, ErrInvalidEmail
	}

	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return &Status{Email: email, IsPremium: false}, nil
	}

	return &Status{Email: u.Email, IsPremium: u.IsPremium}, nil
}

// SetStatus writes the premium flag for the given email, creating the record
// if it does not exist yet. The write is idempotent.
func (s *Service) SetStatus(ctx context.Context, rawEmail string, premium bool) (*Status, error) {
	email := NormalizeEmail(rawEmail)
	if email == "" {
		return nil, ErrInvalidEmail
	}

	u, err := s.store.UpsertPremium(ctx, email, premium)
	if err != nil {
		return nil, err
	}

	return &Status{Email: u.Email, IsPremium: u.IsPremium}, nil
}
