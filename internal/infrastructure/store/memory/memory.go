// Package memory provides an in-process Store. It is the default backend
// for the single-process demo and the substrate for service tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
)

// Store keeps all five collections in memory behind a single lock.
// Reads return clones so callers can never alias persisted state.
type Store struct {
	mu      sync.RWMutex
	users   []domain.User
	offers  []domain.Offer
	lines   []domain.CartLine
	cards   []domain.PaymentCard
	session *domain.Session
}

func New() *Store {
	return &Store{}
}

func (s *Store) Users(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users), nil
}

func (s *Store) SaveUsers(_ context.Context, users []domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = slices.Clone(users)
	return nil
}

func (s *Store) Offers(_ context.Context) ([]domain.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOffers(s.offers), nil
}

func (s *Store) SaveOffers(_ context.Context, offers []domain.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers = cloneOffers(offers)
	return nil
}

func (s *Store) CartLines(_ context.Context) ([]domain.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.lines), nil
}

func (s *Store) SaveCartLines(_ context.Context, lines []domain.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = slices.Clone(lines)
	return nil
}

func (s *Store) Cards(_ context.Context) ([]domain.PaymentCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.cards), nil
}

func (s *Store) SaveCards(_ context.Context, cards []domain.PaymentCard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = slices.Clone(cards)
	return nil
}

func (s *Store) Session(_ context.Context) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, nil
	}
	sess := *s.session
	return &sess, nil
}

func (s *Store) SaveSession(_ context.Context, sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess == nil {
		s.session = nil
		return nil
	}
	clone := *sess
	s.session = &clone
	return nil
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

// cloneOffers deep-copies the inner category and tag slices too.
func cloneOffers(offers []domain.Offer) []domain.Offer {
	out := slices.Clone(offers)
	for i := range out {
		out[i].Categories = slices.Clone(out[i].Categories)
		out[i].Tags = slices.Clone(out[i].Tags)
	}
	return out
}
