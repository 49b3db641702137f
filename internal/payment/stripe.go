package payment

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

const stripeTimeout = 30 * time.Second

// StripeGateway calls the Stripe API with a per-instance key, so the key
// never leaks into the SDK's package-level state.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a gateway using the given secret key.
func NewStripeGateway(secretKey string) *StripeGateway {
	return newStripeGateway(secretKey, "")
}

// newStripeGateway allows tests to point the client at a local server.
func newStripeGateway(secretKey, baseURL string) *StripeGateway {
	cfg := &stripe.BackendConfig{
		HTTPClient: &http.Client{Timeout: stripeTimeout},
	}
	if baseURL != "" {
		cfg.URL = stripe.String(baseURL)
	}

	api := &client.API{}
	api.Init(secretKey, &stripe.Backends{
		API: stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
	})

	return &StripeGateway{api: api}
}

// RetrieveBalance fetches the account balance as a connectivity and
// credentials check.
func (g *StripeGateway) RetrieveBalance(ctx context.Context) (*Balance, error) {
	bal, err := g.api.Balance.Get(&stripe.BalanceParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, upstreamError(err)
	}

	return &Balance{
		Livemode:  bal.Livemode,
		Available: amounts(bal.Available),
		Pending:   amounts(bal.Pending),
	}, nil
}

// CreateCheckoutSession creates a one-item payment-mode checkout session and
// returns the hosted page URL.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		Mode:   stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
	}
	if p.Email != "" {
		params.CustomerEmail = stripe.String(p.Email)
	}

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return "", upstreamError(err)
	}

	return sess.URL, nil
}

func amounts(in []*stripe.Amount) []Amount {
	out := make([]Amount, 0, len(in))
	for _, a := range in {
		if a == nil {
			continue
		}
		out = append(out, Amount{Amount: a.Amount, Currency: string(a.Currency)})
	}
	return out
}

// upstreamError unwraps the SDK error envelope so callers see the provider's
// message instead of a serialized error blob.
func upstreamError(err error) error {
	var sErr *stripe.Error
	if errors.As(err, &sErr) && sErr.Msg != "" {
		return errors.New(sErr.Msg)
	}
	return err
}
