package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
)

// Collection keys. The version suffix mirrors the record namespacing of the
// original storage layout.
const (
	keyUsers   = "bnu:users:v1"
	keySession = "bnu:auth:v1"
	keyOffers  = "bnu:offers:v1"
	keyCart    = "bnu:cart:v1"
	keyCards   = "bnu:cards:v1"
)

// Store persists each collection as one JSON blob under its own key.
// SET replaces the whole collection on every write, matching the
// no-partial-writes contract of the store port.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Users(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := s.get(ctx, keyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) SaveUsers(ctx context.Context, users []domain.User) error {
	return s.put(ctx, keyUsers, users)
}

func (s *Store) Offers(ctx context.Context) ([]domain.Offer, error) {
	var offers []domain.Offer
	if err := s.get(ctx, keyOffers, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (s *Store) SaveOffers(ctx context.Context, offers []domain.Offer) error {
	return s.put(ctx, keyOffers, offers)
}

func (s *Store) CartLines(ctx context.Context) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	if err := s.get(ctx, keyCart, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *Store) SaveCartLines(ctx context.Context, lines []domain.CartLine) error {
	return s.put(ctx, keyCart, lines)
}

func (s *Store) Cards(ctx context.Context) ([]domain.PaymentCard, error) {
	var cards []domain.PaymentCard
	if err := s.get(ctx, keyCards, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *Store) SaveCards(ctx context.Context, cards []domain.PaymentCard) error {
	return s.put(ctx, keyCards, cards)
}

func (s *Store) Session(ctx context.Context) (*domain.Session, error) {
	var sess *domain.Session
	if err := s.get(ctx, keySession, &sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Store) SaveSession(ctx context.Context, sess *domain.Session) error {
	if sess == nil {
		if err := s.client.Del(ctx, keySession).Err(); err != nil {
			return fmt.Errorf("store del %s: %w", keySession, err)
		}
		return nil
	}
	return s.put(ctx, keySession, sess)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// get unmarshals the blob at key into out. A missing key leaves out at its
// zero value, which reads as an empty collection or a cleared session.
func (s *Store) get(ctx context.Context, key string, out any) error {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("store get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("store decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store encode %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("store set %s: %w", key, err)
	}
	return nil
}
