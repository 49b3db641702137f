// Package payment wraps the Stripe API behind a small gateway interface so
// handlers can be wired with either a live client or a disabled stand-in.
package payment

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by every operation when no Stripe secret key
// was configured at startup. No network call is attempted in that state.
var ErrNotConfigured = errors.New("payment: stripe not configured")

// Amount is a per-currency balance amount.
type Amount struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Balance is the account balance reported by the payment provider. It is
// only used by the operator-facing connectivity smoke test.
type Balance struct {
	Livemode  bool     `json:"livemode"`
	Available []Amount `json:"available"`
	Pending   []Amount `json:"pending"`
}

// CheckoutParams describes a checkout session to create. PriceID references
// a price pre-configured on the provider's side and is required; Email is
// optional and pre-fills the payer's address on the hosted page.
type CheckoutParams struct {
	PriceID    string
	Email      string
	SuccessURL string
	CancelURL  string
}

// Gateway is the payment provider surface the handlers depend on.
// Implementations: StripeGateway, Disabled.
type Gateway interface {
	// RetrieveBalance fetches the account balance as a connectivity and
	// credentials check.
	RetrieveBalance(ctx context.Context) (*Balance, error)

	// CreateCheckoutSession creates a hosted payment session and returns its
	// one-time redirect URL.
	CreateCheckoutSession(ctx context.Context, p CheckoutParams) (string, error)
}

// Disabled is the gateway used when STRIPE_SECRET_KEY is not set. Every call
// fails fast with ErrNotConfigured.
type Disabled struct{}

func (Disabled) RetrieveBalance(ctx context.Context) (*Balance, error) {
	return nil, ErrNotConfigured
}

func (Disabled) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (string, error) {
	return "", ErrNotConfigured
}
