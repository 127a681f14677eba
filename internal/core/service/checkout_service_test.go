package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
	"github.com/Jordanjay551/BitesNearU/internal/core/ports"
)

func TestCheckoutHappyPath(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	signIn(t, st, "andy@example.com")

	cart := NewCartService(st, testLogger())
	if err := cart.AddLine(ctx, "o1", 2); err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	svc := NewCheckoutService(st, testLogger())
	res, err := svc.Attempt(ctx, ports.CheckoutInput{CardID: "c1"})
	if err != nil {
		t.Fatalf("Attempt returned error: %v", err)
	}

	if res.Subtotal != 12.00 || res.Discount != 0 || res.Total != 12.00 {
		t.Errorf("unexpected totals: %+v", res)
	}
	if res.Units != 2 {
		t.Errorf("expected 2 units, got %d", res.Units)
	}
	if res.Loyalty.Points != 120 {
		t.Errorf("expected 120 points, got %d", res.Loyalty.Points)
	}
	if res.Loyalty.Meals != 2 || res.Loyalty.VisitedStores != 1 {
		t.Errorf("unexpected loyalty snapshot: %+v", res.Loyalty)
	}

	// Stock for o1 started at 2 and was fully consumed.
	offers, _ := st.Offers(ctx)
	for _, o := range offers {
		if o.ID == "o1" && o.Qty != 0 {
			t.Errorf("expected o1 stock 0, got %d", o.Qty)
		}
	}

	lines, _ := st.CartLines(ctx)
	if len(lines) != 0 {
		t.Errorf("expected cart cleared, got %d lines", len(lines))
	}

	users, _ := st.Users(ctx)
	if users[0].Points != 120 || users[0].Saved != 12.00 || users[0].Meals != 2 || users[0].VisitedStores != 1 {
		t.Errorf("accrual not persisted: %+v", users[0])
	}
}

func TestCheckoutRequiresSession(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	cart := NewCartService(st, testLogger())
	if err := cart.AddLine(ctx, "o1", 1); err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	svc := NewCheckoutService(st, testLogger())
	_, err := svc.Attempt(ctx, ports.CheckoutInput{CardID: "c1"})
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	// The failed attempt must leave every collection untouched.
	offers, _ := st.Offers(ctx)
	for _, o := range offers {
		if o.ID == "o1" && o.Qty != 2 {
			t.Errorf("stock mutated on failed checkout: %d", o.Qty)
		}
	}
	lines, _ := st.CartLines(ctx)
	if len(lines) != 1 {
		t.Errorf("cart mutated on failed checkout: %d lines", len(lines))
	}
	users, _ := st.Users(ctx)
	if users[0].Points != 0 {
		t.Errorf("points accrued on failed checkout: %d", users[0].Points)
	}
}

func TestCheckoutSessionWithoutUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	signIn(t, st, "ghost@example.com")

	cart := NewCartService(st, testLogger())
	if err := cart.AddLine(ctx, "o1", 1); err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	svc := NewCheckoutService(st, testLogger())
	_, err := svc.Attempt(ctx, ports.CheckoutInput{CardID: "c1"})
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestCheckoutRequiresNonEmptyCart(t *testing.T) {
	st := newTestStore(t)
	signIn(t, st, "andy@example.com")

	svc := NewCheckoutService(st, testLogger())
	_, err := svc.Attempt(context.Background(), ports.CheckoutInput{CardID: "c1"})
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckoutRequiresPaymentCard(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	signIn(t, st, "andy@example.com")

	cart := NewCartService(st, testLogger())
	if err := cart.AddLine(ctx, "o1", 1); err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	svc := NewCheckoutService(st, testLogger())

	_, err := svc.Attempt(ctx, ports.CheckoutInput{CardID: ""})
	if !errors.Is(err, domain.ErrNoPaymentMethod) {
		t.Fatalf("expected ErrNoPaymentMethod for empty card id, got %v", err)
	}

	// A card id that resolves to nothing is treated the same as none.
	_, err = svc.Attempt(ctx, ports.CheckoutInput{CardID: "deleted-card"})
	if !errors.Is(err, domain.ErrNoPaymentMethod) {
		t.Fatalf("expected ErrNoPaymentMethod for dangling card id, got %v", err)
	}
}

func TestCheckoutAppliesPromo(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	signIn(t, st, "andy@example.com")

	cart := NewCartService(st, testLogger())
	if err := cart.AddLine(ctx, "o1", 2); err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	svc := NewCheckoutService(st, testLogger())
	res, err := svc.Attempt(ctx, ports.CheckoutInput{CardID: "c1", PromoCode: "save5"})
	if err != nil {
		t.Fatalf("Attempt returned error: %v", err)
	}
	if res.Subtotal != 12.00 || res.Discount != 5.00 || res.Total != 7.00 {
		t.Errorf("unexpected promo totals: %+v", res)
	}

	// Accrual follows the discounted total.
	if res.Loyalty.Points != 70 {
		t.Errorf("expected 70 points from 7.00 total, got %d", res.Loyalty.Points)
	}
	users, _ := st.Users(ctx)
	if users[0].Saved != 7.00 {
		t.Errorf("expected saved 7.00, got %.2f", users[0].Saved)
	}
}

func TestCheckoutInvalidPromoLeavesStateAlone(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	signIn(t, st, "andy@example.com")

	cart := NewCartService(st, testLogger())
	if err := cart.AddLine(ctx, "o1", 1); err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	svc := NewCheckoutService(st, testLogger())
	_, err := svc.Attempt(ctx, ports.CheckoutInput{CardID: "c1", PromoCode: "SAVE50"})
	if !errors.Is(err, domain.ErrInvalidPromo) {
		t.Fatalf("expected ErrInvalidPromo, got %v", err)
	}

	lines, _ := st.CartLines(ctx)
	if len(lines) != 1 {
		t.Errorf("cart mutated on invalid promo: %d lines", len(lines))
	}
	users, _ := st.Users(ctx)
	if users[0].Points != 0 {
		t.Errorf("points accrued on invalid promo: %d", users[0].Points)
	}
}

func TestCheckoutDiscountCappedAtSubtotal(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	signIn(t, st, "andy@example.com")

	cart := NewCartService(st, testLogger())
	if err := cart.AddLine(ctx, "o2", 1); err != nil { // 3.50
		t.Fatalf("AddLine: %v", err)
	}

	svc := NewCheckoutService(st, testLogger())
	res, err := svc.Attempt(ctx, ports.CheckoutInput{CardID: "c1", PromoCode: "SAVE5"})
	if err != nil {
		t.Fatalf("Attempt returned error: %v", err)
	}
	if res.Discount != 3.50 || res.Total != 0 {
		t.Errorf("expected discount capped at subtotal, got %+v", res)
	}
	if res.Loyalty.Points != 0 {
		t.Errorf("expected no points on zero total, got %d", res.Loyalty.Points)
	}
}

func TestCheckoutClampsOversoldStock(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	signIn(t, st, "andy@example.com")

	cart := NewCartService(st, testLogger())
	if err := cart.AddLine(ctx, "o1", 5); err != nil { // stock is only 2
		t.Fatalf("AddLine: %v", err)
	}

	svc := NewCheckoutService(st, testLogger())
	if _, err := svc.Attempt(ctx, ports.CheckoutInput{CardID: "c1"}); err != nil {
		t.Fatalf("Attempt returned error: %v", err)
	}

	offers, _ := st.Offers(ctx)
	for _, o := range offers {
		if o.ID == "o1" && o.Qty != 0 {
			t.Errorf("expected stock clamped at 0, got %d", o.Qty)
		}
	}
}

func TestCheckoutPointsRounding(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	signIn(t, st, "andy@example.com")

	cart := NewCartService(st, testLogger())
	if err := cart.AddLine(ctx, "o3", 1); err != nil { // 8.99
		t.Fatalf("AddLine: %v", err)
	}

	svc := NewCheckoutService(st, testLogger())
	res, err := svc.Attempt(ctx, ports.CheckoutInput{CardID: "c1"})
	if err != nil {
		t.Fatalf("Attempt returned error: %v", err)
	}
	if res.Loyalty.Points != 90 {
		t.Errorf("expected round(89.9) = 90 points, got %d", res.Loyalty.Points)
	}
}

func TestQuote(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	cart := NewCartService(st, testLogger())
	if err := cart.AddLine(ctx, "o1", 2); err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	svc := NewCheckoutService(st, testLogger())
	q, err := svc.Quote(ctx, "SAVE5")
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}
	if q.Subtotal != 12.00 || q.Discount != 5.00 || q.Total != 7.00 {
		t.Errorf("unexpected quote: %+v", q)
	}

	// Quote is a preview: cart and catalog are untouched.
	lines, _ := st.CartLines(ctx)
	if len(lines) != 1 {
		t.Errorf("cart mutated by quote: %d lines", len(lines))
	}

	if _, err := svc.Quote(ctx, "BOGUS"); !errors.Is(err, domain.ErrInvalidPromo) {
		t.Errorf("expected ErrInvalidPromo, got %v", err)
	}

	// Blank and lowercase codes behave like the checkout path.
	q, err = svc.Quote(ctx, "")
	if err != nil {
		t.Fatalf("Quote blank returned error: %v", err)
	}
	if q.Discount != 0 || q.Total != 12.00 {
		t.Errorf("expected no discount on blank code, got %+v", q)
	}
	q, err = svc.Quote(ctx, "  save5 ")
	if err != nil {
		t.Fatalf("Quote lowercase returned error: %v", err)
	}
	if q.Discount != 5.00 {
		t.Errorf("expected case-insensitive code, got %+v", q)
	}
}
