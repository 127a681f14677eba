package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
	"github.com/Jordanjay551/BitesNearU/internal/core/ports"
)

// CartService mutates the cart ledger. Each mutation rewrites the whole
// persisted collection immediately; there is no batching.
type CartService struct {
	store ports.Store
	log   zerolog.Logger
}

func NewCartService(store ports.Store, log zerolog.Logger) *CartService {
	return &CartService{store: store, log: log}
}

// AddLine snapshots the offer's title, store and price into a new line, or
// increments the existing line for the same offer. Stock is deliberately
// not checked here; checkout is the only enforcement point.
func (s *CartService) AddLine(ctx context.Context, offerID string, qty int) error {
	if qty < 1 {
		qty = 1
	}

	offers, err := s.store.Offers(ctx)
	if err != nil {
		return fmt.Errorf("add line: %w", err)
	}
	var offer *domain.Offer
	for i := range offers {
		if offers[i].ID == offerID {
			offer = &offers[i]
			break
		}
	}
	if offer == nil {
		return domain.ErrOfferNotFound
	}

	lines, err := s.store.CartLines(ctx)
	if err != nil {
		return fmt.Errorf("add line: %w", err)
	}

	found := false
	for i := range lines {
		if lines[i].OfferID == offerID {
			lines[i].Qty += qty
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, domain.CartLine{
			OfferID: offer.ID,
			Title:   offer.Title,
			Store:   offer.Store,
			Price:   offer.Price,
			Qty:     qty,
		})
	}

	if err := s.store.SaveCartLines(ctx, lines); err != nil {
		return fmt.Errorf("add line: %w", err)
	}
	s.log.Debug().Str("offer_id", offerID).Int("qty", qty).Msg("cart line added")
	return nil
}

// SetQty clamps non-positive quantities to 1 and silently ignores offers
// that have no line in the ledger.
func (s *CartService) SetQty(ctx context.Context, offerID string, qty int) error {
	if qty < 1 {
		qty = 1
	}

	lines, err := s.store.CartLines(ctx)
	if err != nil {
		return fmt.Errorf("set qty: %w", err)
	}
	for i := range lines {
		if lines[i].OfferID == offerID {
			lines[i].Qty = qty
			if err := s.store.SaveCartLines(ctx, lines); err != nil {
				return fmt.Errorf("set qty: %w", err)
			}
			return nil
		}
	}
	return nil
}

func (s *CartService) RemoveLine(ctx context.Context, offerID string) error {
	lines, err := s.store.CartLines(ctx)
	if err != nil {
		return fmt.Errorf("remove line: %w", err)
	}
	kept := lines[:0]
	for _, l := range lines {
		if l.OfferID != offerID {
			kept = append(kept, l)
		}
	}
	if err := s.store.SaveCartLines(ctx, kept); err != nil {
		return fmt.Errorf("remove line: %w", err)
	}
	return nil
}

func (s *CartService) Clear(ctx context.Context) error {
	if err := s.store.SaveCartLines(ctx, nil); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Summary derives subtotal, savings and unit count. Subtotal uses the
// snapshotted line price, while savings looks up the offer's current
// original price live, an intentional asymmetry inherited from the
// source system.
func (s *CartService) Summary(ctx context.Context) (*ports.CartSummary, error) {
	lines, err := s.store.CartLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("cart summary: %w", err)
	}
	offers, err := s.store.Offers(ctx)
	if err != nil {
		return nil, fmt.Errorf("cart summary: %w", err)
	}

	originals := make(map[string]float64, len(offers))
	for _, o := range offers {
		originals[o.ID] = o.Original
	}

	sum := &ports.CartSummary{Lines: lines}
	for _, l := range lines {
		sum.Subtotal += l.Price * float64(l.Qty)
		sum.Units += l.Qty
		if orig, ok := originals[l.OfferID]; ok {
			sum.Savings += (orig - l.Price) * float64(l.Qty)
		}
	}
	return sum, nil
}
