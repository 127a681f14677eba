package service

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
	"github.com/Jordanjay551/BitesNearU/internal/core/ports"
)

// CheckoutService performs the one true state transition of the system:
// consuming the cart ledger into stock decrements and loyalty accrual.
type CheckoutService struct {
	store ports.Store
	log   zerolog.Logger

	// mu serializes the multi-step transition. Two concurrent checkouts
	// against the same cart would otherwise double-decrement stock and
	// double-accrue points.
	mu sync.Mutex
}

func NewCheckoutService(store ports.Store, log zerolog.Logger) *CheckoutService {
	return &CheckoutService{store: store, log: log}
}

// Attempt runs the checkout transition. Preconditions are checked in order
// and the first failure wins; no state is mutated until all of them, plus
// promo resolution, have passed.
func (s *CheckoutService) Attempt(ctx context.Context, input ports.CheckoutInput) (*ports.CheckoutResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// (a) active session resolving to a user
	sess, err := s.store.Session(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	if sess == nil {
		return nil, domain.ErrNotAuthenticated
	}
	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	userIdx := -1
	for i := range users {
		if users[i].Email == sess.Email {
			userIdx = i
			break
		}
	}
	if userIdx < 0 {
		return nil, domain.ErrNotAuthenticated
	}

	// (b) non-empty cart
	lines, err := s.store.CartLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	// (c) payment card resolves
	if input.CardID == "" {
		return nil, domain.ErrNoPaymentMethod
	}
	cards, err := s.store.Cards(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	cardOK := false
	for _, c := range cards {
		if c.ID == input.CardID {
			cardOK = true
			break
		}
	}
	if !cardOK {
		return nil, domain.ErrNoPaymentMethod
	}

	discount, err := promoDiscount(input.PromoCode)
	if err != nil {
		return nil, err
	}

	subtotal := 0.0
	units := 0
	for _, l := range lines {
		subtotal += l.Price * float64(l.Qty)
		units += l.Qty
	}
	if discount > subtotal {
		discount = subtotal
	}
	total := subtotal - discount

	// Stock decrements clamp at zero rather than failing; the permissive
	// policy of the source system is preserved deliberately.
	offers, err := s.store.Offers(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	byID := make(map[string]int, len(offers))
	for i := range offers {
		byID[offers[i].ID] = i
	}
	for _, l := range lines {
		if i, ok := byID[l.OfferID]; ok {
			offers[i].Qty = max(0, offers[i].Qty-l.Qty)
		}
	}

	user := &users[userIdx]
	user.Points += int(math.Round(total * 10))
	user.Saved += total
	user.Meals += units
	user.VisitedStores++

	if err := s.store.SaveOffers(ctx, offers); err != nil {
		return nil, fmt.Errorf("checkout: persist offers: %w", err)
	}
	if err := s.store.SaveUsers(ctx, users); err != nil {
		return nil, fmt.Errorf("checkout: persist user: %w", err)
	}
	if err := s.store.SaveCartLines(ctx, nil); err != nil {
		return nil, fmt.Errorf("checkout: clear cart: %w", err)
	}

	s.log.Info().
		Str("email", user.Email).
		Float64("subtotal", subtotal).
		Float64("total", total).
		Int("units", units).
		Msg("checkout completed")

	return &ports.CheckoutResult{
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
		Units:    units,
		Loyalty: ports.LoyaltySnapshot{
			Points:        user.Points,
			Saved:         user.Saved,
			Meals:         user.Meals,
			VisitedStores: user.VisitedStores,
		},
	}, nil
}

// Quote previews a promo against the current subtotal. It is presentation
// state only: navigating away and back resets it, and nothing is persisted.
func (s *CheckoutService) Quote(ctx context.Context, promoCode string) (*ports.PromoQuote, error) {
	discount, err := promoDiscount(promoCode)
	if err != nil {
		return nil, err
	}

	lines, err := s.store.CartLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("promo quote: %w", err)
	}
	subtotal := 0.0
	for _, l := range lines {
		subtotal += l.Price * float64(l.Qty)
	}
	if discount > subtotal {
		discount = subtotal
	}

	return &ports.PromoQuote{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal - discount,
	}, nil
}
