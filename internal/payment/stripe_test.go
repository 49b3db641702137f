package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDisabled(t *testing.T) {
	ctx := context.Background()
	var g Gateway = Disabled{}

	if _, err := g.RetrieveBalance(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("RetrieveBalance: expected ErrNotConfigured, got %v", err)
	}
	if _, err := g.CreateCheckoutSession(ctx, CheckoutParams{PriceID: "price_1"}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("CreateCheckoutSession: expected ErrNotConfigured, got %v", err)
	}
}

func TestStripeGateway_RetrieveBalance(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/balance" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_key" {
			t.Errorf("unexpected authorization header %q", got)
		}
		fmt.Fprint(w, `{
			"livemode": false,
			"available": [{"amount": 1234, "currency": "ron"}],
			"pending": [{"amount": 50, "currency": "ron"}]
		}`)
	}))
	defer ts.Close()

	g := newStripeGateway("sk_test_key", ts.URL)

	bal, err := g.RetrieveBalance(context.Background())
	if err != nil {
		t.Fatalf("RetrieveBalance: %v", err)
	}
	if bal.Livemode {
		t.Error("expected livemode=false")
	}
	if len(bal.Available) != 1 || bal.Available[0].Amount != 1234 || bal.Available[0].Currency != "ron" {
		t.Errorf("available = %+v", bal.Available)
	}
	if len(bal.Pending) != 1 || bal.Pending[0].Amount != 50 {
		t.Errorf("pending = %+v", bal.Pending)
	}
}

func TestStripeGateway_CreateCheckoutSession(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/checkout/sessions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.Form.Get("mode"); got != "payment" {
			t.Errorf("mode = %q, want payment", got)
		}
		if got := r.Form.Get("line_items[0][price]"); got != "price_123" {
			t.Errorf("price = %q, want price_123", got)
		}
		if got := r.Form.Get("line_items[0][quantity]"); got != "1" {
			t.Errorf("quantity = %q, want 1", got)
		}
		if got := r.Form.Get("customer_email"); got != "a@b.com" {
			t.Errorf("customer_email = %q, want a@b.com", got)
		}
		if got := r.Form.Get("success_url"); got != "https://lumina-vietii.ro/plata-succes" {
			t.Errorf("success_url = %q", got)
		}
		if got := r.Form.Get("cancel_url"); got != "https://lumina-vietii.ro/plata-anulata" {
			t.Errorf("cancel_url = %q", got)
		}
		fmt.Fprint(w, `{"id": "cs_test_123", "url": "https://checkout.stripe.com/c/pay/cs_test_123"}`)
	}))
	defer ts.Close()

	g := newStripeGateway("sk_test_key", ts.URL)

	url, err := g.CreateCheckoutSession(context.Background(), CheckoutParams{
		PriceID:    "price_123",
		Email:      "a@b.com",
		SuccessURL: "https://lumina-vietii.ro/plata-succes",
		CancelURL:  "https://lumina-vietii.ro/plata-anulata",
	})
	if err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}
	if url != "https://checkout.stripe.com/c/pay/cs_test_123" {
		t.Errorf("url = %q", url)
	}
}

func TestStripeGateway_OmitsEmptyEmail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if _, ok := r.Form["customer_email"]; ok {
			t.Error("customer_email must be omitted when empty")
		}
		fmt.Fprint(w, `{"id": "cs_test_123", "url": "https://checkout.stripe.com/c/pay/cs_test_123"}`)
	}))
	defer ts.Close()

	g := newStripeGateway("sk_test_key", ts.URL)

	if _, err := g.CreateCheckoutSession(context.Background(), CheckoutParams{PriceID: "price_123"}); err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}
}

func TestStripeGateway_SurfacesUpstreamMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": {"type": "invalid_request_error", "message": "No such price: 'price_nope'"}}`)
	}))
	defer ts.Close()

	g := newStripeGateway("sk_test_key", ts.URL)

	_, err := g.CreateCheckoutSession(context.Background(), CheckoutParams{PriceID: "price_nope"})
	if err == nil {
		t.Fatal("expected an error for a rejected price")
	}
	if !strings.Contains(err.Error(), "No such price") {
		t.Errorf("error should carry the provider message, got %q", err.Error())
	}
}
