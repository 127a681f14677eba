package ports

import (
	"context"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
)

// CartSummary is the derived view of the cart ledger. Subtotal and Savings
// are full-precision accumulations; rounding happens at display time only.
type CartSummary struct {
	Lines    []domain.CartLine
	Subtotal float64
	Savings  float64
	Units    int
}

// CartService owns the active session's cart ledger. Every mutation
// persists immediately.
type CartService interface {
	// AddLine adds qty units of an offer. A second add for the same offer
	// increments the existing line instead of creating a duplicate. Stock is
	// not checked here; it is enforced only at checkout.
	AddLine(ctx context.Context, offerID string, qty int) error
	// SetQty sets a line's quantity, clamping non-positive input to 1.
	// Silently does nothing when no line exists for the offer.
	SetQty(ctx context.Context, offerID string, qty int) error
	// RemoveLine deletes the line if present; no-op otherwise.
	RemoveLine(ctx context.Context, offerID string) error
	// Clear empties the ledger.
	Clear(ctx context.Context) error
	// Summary returns the lines with derived subtotal, savings and unit count.
	Summary(ctx context.Context) (*CartSummary, error)
}
