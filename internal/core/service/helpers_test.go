package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
	"github.com/Jordanjay551/BitesNearU/internal/infrastructure/store/memory"
)

// newTestStore returns a memory store seeded with a small catalog, one
// registered user and one payment card.
func newTestStore(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	st := memory.New()

	offers := []domain.Offer{
		{ID: "o1", Store: "Bella Italia", Title: "Pasta Carbonara", Categories: []string{"Ready Meals"}, Price: 6.00, Original: 15.00, Distance: 1.2, Pickup: "6:30 PM - 8:00 PM", Qty: 2, Tags: []string{"Italian"}},
		{ID: "o2", Store: "Green Leaf Market", Title: "Fruit Pack", Categories: []string{"Fresh Produce"}, Price: 3.50, Original: 6.00, Distance: 0.6, Pickup: "Anytime", Qty: 10, Tags: []string{"Produce", "Healthy", "Vegetarian"}},
		{ID: "o3", Store: "Sakura Sushi", Title: "Salmon Bento", Categories: []string{"Ready Meals"}, Price: 8.99, Original: 22.00, Distance: 0.9, Pickup: "7:00 PM - 8:30 PM", Qty: 3, Tags: []string{"Japanese", "Healthy"}},
	}
	if err := st.SaveOffers(ctx, offers); err != nil {
		t.Fatalf("seed offers: %v", err)
	}

	users := []domain.User{
		{Name: "Andy", Email: "andy@example.com", Pass: "demo123", Avatar: "🍕"},
	}
	if err := st.SaveUsers(ctx, users); err != nil {
		t.Fatalf("seed users: %v", err)
	}

	cards := []domain.PaymentCard{
		{ID: "c1", Label: "Visa •••• 4242", IsDefault: true},
	}
	if err := st.SaveCards(ctx, cards); err != nil {
		t.Fatalf("seed cards: %v", err)
	}

	return st
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func signIn(t *testing.T, st *memory.Store, email string) {
	t.Helper()
	if err := st.SaveSession(context.Background(), &domain.Session{Email: email}); err != nil {
		t.Fatalf("activate session: %v", err)
	}
}
