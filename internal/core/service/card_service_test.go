package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
)

func TestCardAdd(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewCardService(st, testLogger())
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	card, err := svc.Add(ctx, "4000123412345678", "Mastercard")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if card.ID != "card-1700000000000" {
		t.Errorf("unexpected card id: %q", card.ID)
	}
	if card.Label != "Mastercard •••• 5678" {
		t.Errorf("unexpected label: %q", card.Label)
	}
	// A card already exists, so the new one is not the default.
	if card.IsDefault {
		t.Errorf("expected new card to keep the existing default")
	}

	cards, _ := svc.List(ctx)
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
}

func TestCardAddFirstBecomesDefault(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	if err := st.SaveCards(ctx, nil); err != nil {
		t.Fatalf("clear cards: %v", err)
	}
	svc := NewCardService(st, testLogger())

	card, err := svc.Add(ctx, "4242424242424242", "Visa")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if !card.IsDefault {
		t.Errorf("expected the first card to be the default")
	}
}

func TestCardAddValidation(t *testing.T) {
	st := newTestStore(t)
	svc := NewCardService(st, testLogger())

	if _, err := svc.Add(context.Background(), "", "Visa"); err == nil {
		t.Errorf("expected error for blank number")
	}
	if _, err := svc.Add(context.Background(), "4242", "  "); err == nil {
		t.Errorf("expected error for blank holder")
	}
}

func TestCardRemove(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewCardService(st, testLogger())

	if err := svc.Remove(ctx, "c1"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	cards, _ := svc.List(ctx)
	if len(cards) != 0 {
		t.Errorf("expected no cards after removal, got %d", len(cards))
	}

	if err := svc.Remove(ctx, "c1"); !errors.Is(err, domain.ErrCardNotFound) {
		t.Errorf("expected ErrCardNotFound, got %v", err)
	}
}

func TestCardSetDefaultIsExclusive(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewCardService(st, testLogger())
	svc.now = func() time.Time { return time.UnixMilli(1700000000001) }

	added, err := svc.Add(ctx, "5678567856785678", "Mastercard")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if err := svc.SetDefault(ctx, added.ID); err != nil {
		t.Fatalf("SetDefault returned error: %v", err)
	}

	cards, _ := svc.List(ctx)
	defaults := 0
	for _, c := range cards {
		if c.IsDefault {
			defaults++
			if c.ID != added.ID {
				t.Errorf("wrong card is default: %+v", c)
			}
		}
	}
	if defaults != 1 {
		t.Errorf("expected exactly one default card, got %d", defaults)
	}

	if err := svc.SetDefault(ctx, "nope"); !errors.Is(err, domain.ErrCardNotFound) {
		t.Errorf("expected ErrCardNotFound, got %v", err)
	}
}
