package ports

import "context"

// CheckoutInput names the payment card and optional promo code for a
// checkout attempt.
type CheckoutInput struct {
	CardID    string
	PromoCode string
}

// LoyaltySnapshot is the user's accumulated metrics after a checkout.
type LoyaltySnapshot struct {
	Points        int     `json:"points"`
	Saved         float64 `json:"saved"`
	Meals         int     `json:"meals"`
	VisitedStores int     `json:"visited_stores"`
}

// CheckoutResult carries the finalized totals of a successful checkout.
type CheckoutResult struct {
	Subtotal float64
	Discount float64
	Total    float64
	Units    int
	Loyalty  LoyaltySnapshot
}

// PromoQuote is a display-only evaluation of a promo code against the
// current cart subtotal. Nothing is persisted.
type PromoQuote struct {
	Subtotal float64
	Discount float64
	Total    float64
}

// CheckoutService performs the single state transition of the system.
type CheckoutService interface {
	// Attempt validates preconditions in order (active session, non-empty
	// cart, resolvable payment card), then atomically decrements stock,
	// accrues the user's loyalty metrics, persists, and clears the cart.
	Attempt(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)
	// Quote evaluates a promo code against the current subtotal without
	// mutating any state. Fails with domain.ErrInvalidPromo on unknown codes.
	Quote(ctx context.Context, promoCode string) (*PromoQuote, error)
}
