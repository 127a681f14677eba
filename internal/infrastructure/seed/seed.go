// Package seed populates empty collections with the demo data set so a
// fresh store behaves like a first app launch.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
	"github.com/Jordanjay551/BitesNearU/internal/core/ports"
)

func demoUsers() []domain.User {
	return []domain.User{
		{Name: "Andy", Email: "andy@example.com", Pass: "demo123", Points: 450, Saved: 127.50, Meals: 34, Avatar: "🍕"},
		{Name: "Emma", Email: "emma@example.com", Pass: "pass123", Points: 120, Saved: 40.0, Meals: 12, Avatar: "🍓"},
	}
}

func demoOffers() []domain.Offer {
	return []domain.Offer{
		{ID: "o1", Store: "Sakura Sushi", Title: "Salmon Bento", Categories: []string{"Ready Meals"}, Price: 8.99, Original: 22.00, Distance: 0.9, Pickup: "7:00 PM - 8:30 PM", Qty: 3, Tags: []string{"Japanese", "Healthy"}},
		{ID: "o2", Store: "Bella Italia", Title: "Pasta Carbonara", Categories: []string{"Ready Meals"}, Price: 6.00, Original: 15.00, Distance: 1.2, Pickup: "6:30 PM - 8:00 PM", Qty: 2, Tags: []string{"Italian"}},
		{ID: "o3", Store: "Green Leaf Market", Title: "Fruit Pack", Categories: []string{"Fresh Produce", "Beverages"}, Price: 3.50, Original: 6.00, Distance: 0.6, Pickup: "Anytime", Qty: 10, Tags: []string{"Produce", "Healthy", "Vegetarian"}},
		{ID: "o4", Store: "FreshBake", Title: "Pastry Bundle (x3)", Categories: []string{"Bakery & Pastries"}, Price: 2.00, Original: 6.50, Distance: 0.4, Pickup: "5:00 PM - 6:30 PM", Qty: 8, Tags: []string{"Bakery"}},
		{ID: "o5", Store: "Spice Route", Title: "Curry & Rice Combo", Categories: []string{"Ready Meals"}, Price: 5.49, Original: 13.99, Distance: 1.6, Pickup: "7:30 PM - 9:00 PM", Qty: 3, Tags: []string{"Indian"}},
	}
}

func demoCards() []domain.PaymentCard {
	return []domain.PaymentCard{
		{ID: "c1", Label: "Visa •••• 4242", IsDefault: true},
		{ID: "c2", Label: "Mastercard •••• 5678", IsDefault: false},
	}
}

// Run seeds each collection that is currently empty. Non-empty collections
// are left untouched, so repeated startups are safe.
func Run(ctx context.Context, store ports.Store, log zerolog.Logger) error {
	users, err := store.Users(ctx)
	if err != nil {
		return fmt.Errorf("seed: read users: %w", err)
	}
	if len(users) == 0 {
		if err := store.SaveUsers(ctx, demoUsers()); err != nil {
			return fmt.Errorf("seed: users: %w", err)
		}
		log.Info().Int("count", len(demoUsers())).Msg("seeded demo users")
	}

	offers, err := store.Offers(ctx)
	if err != nil {
		return fmt.Errorf("seed: read offers: %w", err)
	}
	if len(offers) == 0 {
		if err := store.SaveOffers(ctx, demoOffers()); err != nil {
			return fmt.Errorf("seed: offers: %w", err)
		}
		log.Info().Int("count", len(demoOffers())).Msg("seeded demo offers")
	}

	cards, err := store.Cards(ctx)
	if err != nil {
		return fmt.Errorf("seed: read cards: %w", err)
	}
	if len(cards) == 0 {
		if err := store.SaveCards(ctx, demoCards()); err != nil {
			return fmt.Errorf("seed: cards: %w", err)
		}
		log.Info().Int("count", len(demoCards())).Msg("seeded demo cards")
	}

	return nil
}
