package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
	"github.com/Jordanjay551/BitesNearU/internal/core/ports"
)

type stubCheckout struct {
	attemptFn func(ctx context.Context, input ports.CheckoutInput) (*ports.CheckoutResult, error)
	quoteFn   func(ctx context.Context, promoCode string) (*ports.PromoQuote, error)
}

func (s *stubCheckout) Attempt(ctx context.Context, input ports.CheckoutInput) (*ports.CheckoutResult, error) {
	return s.attemptFn(ctx, input)
}

func (s *stubCheckout) Quote(ctx context.Context, promoCode string) (*ports.PromoQuote, error) {
	return s.quoteFn(ctx, promoCode)
}

func TestCheckoutPlace(t *testing.T) {
	stub := &stubCheckout{
		attemptFn: func(_ context.Context, input ports.CheckoutInput) (*ports.CheckoutResult, error) {
			if input.CardID != "c1" || input.PromoCode != "SAVE5" {
				t.Errorf("unexpected input: %+v", input)
			}
			return &ports.CheckoutResult{
				Subtotal: 12.00,
				Discount: 5.00,
				Total:    7.00,
				Units:    2,
				Loyalty:  ports.LoyaltySnapshot{Points: 70, Saved: 7.004, Meals: 2, VisitedStores: 1},
			}, nil
		},
	}
	h := NewCheckoutHandler(stub)

	c, rec := newEchoContext(http.MethodPost, "/v1/checkout",
		`{"card_id":"c1","promo_code":"SAVE5"}`)
	if err := h.Place(c); err != nil {
		t.Fatalf("Place returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"total":7`) || !strings.Contains(body, `"units":2`) {
		t.Errorf("unexpected body: %s", body)
	}
	// Monetary fields are rounded to pennies at the edge.
	if !strings.Contains(body, `"saved":7`) || strings.Contains(body, "7.004") {
		t.Errorf("loyalty saved not rounded: %s", body)
	}
}

func TestCheckoutPlaceRequiresCardID(t *testing.T) {
	h := NewCheckoutHandler(&stubCheckout{
		attemptFn: func(_ context.Context, _ ports.CheckoutInput) (*ports.CheckoutResult, error) {
			t.Fatal("service must not be called without a card id")
			return nil, nil
		},
	})

	c, _ := newEchoContext(http.MethodPost, "/v1/checkout", `{"promo_code":"SAVE5"}`)
	err := h.Place(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestCheckoutPlaceFailurePropagates(t *testing.T) {
	h := NewCheckoutHandler(&stubCheckout{
		attemptFn: func(_ context.Context, _ ports.CheckoutInput) (*ports.CheckoutResult, error) {
			return nil, domain.ErrEmptyCart
		},
	})

	c, _ := newEchoContext(http.MethodPost, "/v1/checkout", `{"card_id":"c1"}`)
	if err := h.Place(c); err != domain.ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart to propagate, got %v", err)
	}
}

func TestCheckoutQuote(t *testing.T) {
	h := NewCheckoutHandler(&stubCheckout{
		quoteFn: func(_ context.Context, promoCode string) (*ports.PromoQuote, error) {
			if promoCode != "SAVE5" {
				t.Errorf("unexpected code: %q", promoCode)
			}
			return &ports.PromoQuote{Subtotal: 12.00, Discount: 5.00, Total: 7.00}, nil
		},
	})

	c, rec := newEchoContext(http.MethodPost, "/v1/checkout/quote", `{"promo_code":"SAVE5"}`)
	if err := h.Quote(c); err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"discount":5`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestCheckoutOutcomeLabels(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrNotAuthenticated, "not_authenticated"},
		{domain.ErrEmptyCart, "empty_cart"},
		{domain.ErrNoPaymentMethod, "no_payment_method"},
		{domain.ErrInvalidPromo, "invalid_promo"},
		{context.DeadlineExceeded, "error"},
	}
	for _, tt := range tests {
		if got := checkoutOutcome(tt.err); got != tt.want {
			t.Errorf("checkoutOutcome(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
