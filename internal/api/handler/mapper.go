package handler

import (
	"math"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
	"github.com/Jordanjay551/BitesNearU/internal/core/ports"
)

// round2 rounds a monetary value to 2 decimal places. This is the only
// place money is rounded; services accumulate at full precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		Name:          u.Name,
		Email:         u.Email,
		Avatar:        u.Avatar,
		Points:        u.Points,
		Saved:         round2(u.Saved),
		Meals:         u.Meals,
		VisitedStores: u.VisitedStores,
	}
}

func toOfferResponse(o domain.Offer) offerResponse {
	return offerResponse{
		ID:              o.ID,
		Store:           o.Store,
		Title:           o.Title,
		Categories:      o.Categories,
		Price:           round2(o.Price),
		Original:        round2(o.Original),
		Distance:        o.Distance,
		Pickup:          o.Pickup,
		Qty:             o.Qty,
		Tags:            o.Tags,
		DiscountPercent: o.DiscountPercent(),
	}
}

func toOfferResponses(offers []domain.Offer) []offerResponse {
	out := make([]offerResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, toOfferResponse(o))
	}
	return out
}

func toCartResponse(sum *ports.CartSummary) cartResponse {
	items := make([]cartLineResponse, 0, len(sum.Lines))
	for _, l := range sum.Lines {
		items = append(items, cartLineResponse{
			OfferID:   l.OfferID,
			Title:     l.Title,
			Store:     l.Store,
			Price:     round2(l.Price),
			Qty:       l.Qty,
			LineTotal: round2(l.Price * float64(l.Qty)),
		})
	}
	return cartResponse{
		Items:    items,
		Subtotal: round2(sum.Subtotal),
		Savings:  round2(sum.Savings),
		Units:    sum.Units,
	}
}
