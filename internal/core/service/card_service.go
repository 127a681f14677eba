package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
	"github.com/Jordanjay551/BitesNearU/internal/core/ports"
)

// CardService manages the process-wide payment-card list.
type CardService struct {
	store ports.Store
	log   zerolog.Logger

	// now is swappable in tests; card ids are derived from wall-clock time.
	now func() time.Time
}

func NewCardService(store ports.Store, log zerolog.Logger) *CardService {
	return &CardService{store: store, log: log, now: time.Now}
}

func (s *CardService) List(ctx context.Context) ([]domain.PaymentCard, error) {
	cards, err := s.store.Cards(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

func (s *CardService) Add(ctx context.Context, number, holder string) (*domain.PaymentCard, error) {
	number = strings.TrimSpace(number)
	holder = strings.TrimSpace(holder)
	if number == "" || holder == "" {
		return nil, fmt.Errorf("add card: number and holder are required")
	}

	cards, err := s.store.Cards(ctx)
	if err != nil {
		return nil, fmt.Errorf("add card: %w", err)
	}

	last4 := number
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	card := domain.PaymentCard{
		ID:        fmt.Sprintf("card-%d", s.now().UnixMilli()),
		Label:     fmt.Sprintf("%s •••• %s", holder, last4),
		IsDefault: len(cards) == 0,
	}

	cards = append(cards, card)
	if err := s.store.SaveCards(ctx, cards); err != nil {
		return nil, fmt.Errorf("add card: %w", err)
	}
	s.log.Info().Str("card_id", card.ID).Msg("payment card added")
	return &card, nil
}

func (s *CardService) Remove(ctx context.Context, id string) error {
	cards, err := s.store.Cards(ctx)
	if err != nil {
		return fmt.Errorf("remove card: %w", err)
	}

	kept := cards[:0]
	found := false
	for _, c := range cards {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return domain.ErrCardNotFound
	}

	if err := s.store.SaveCards(ctx, kept); err != nil {
		return fmt.Errorf("remove card: %w", err)
	}
	return nil
}

// SetDefault marks one card as default and clears every other card's flag
// in the same write, so the single-default invariant can never be observed
// broken.
func (s *CardService) SetDefault(ctx context.Context, id string) error {
	cards, err := s.store.Cards(ctx)
	if err != nil {
		return fmt.Errorf("set default card: %w", err)
	}

	found := false
	for i := range cards {
		cards[i].IsDefault = cards[i].ID == id
		if cards[i].IsDefault {
			found = true
		}
	}
	if !found {
		return domain.ErrCardNotFound
	}

	if err := s.store.SaveCards(ctx, cards); err != nil {
		return fmt.Errorf("set default card: %w", err)
	}
	return nil
}
