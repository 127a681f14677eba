package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
)

const storeCollection = "collections"

// Record names inside the collections collection.
const (
	recUsers   = "users"
	recSession = "session"
	recOffers  = "offers"
	recCart    = "cart"
	recCards   = "cards"
)

// Store keeps each collection as a single document keyed by record name.
// ReplaceOne with upsert rewrites the document wholesale, preserving the
// whole-collection-replace contract of the store port.
type Store struct {
	coll *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{coll: db.Collection(storeCollection)}
}

type record struct {
	ID   string        `bson:"_id"`
	Data bson.RawValue `bson:"data"`
}

func (s *Store) Users(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := s.get(ctx, recUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) SaveUsers(ctx context.Context, users []domain.User) error {
	return s.put(ctx, recUsers, users)
}

func (s *Store) Offers(ctx context.Context) ([]domain.Offer, error) {
	var offers []domain.Offer
	if err := s.get(ctx, recOffers, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (s *Store) SaveOffers(ctx context.Context, offers []domain.Offer) error {
	return s.put(ctx, recOffers, offers)
}

func (s *Store) CartLines(ctx context.Context) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	if err := s.get(ctx, recCart, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *Store) SaveCartLines(ctx context.Context, lines []domain.CartLine) error {
	return s.put(ctx, recCart, lines)
}

func (s *Store) Cards(ctx context.Context) ([]domain.PaymentCard, error) {
	var cards []domain.PaymentCard
	if err := s.get(ctx, recCards, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *Store) SaveCards(ctx context.Context, cards []domain.PaymentCard) error {
	return s.put(ctx, recCards, cards)
}

func (s *Store) Session(ctx context.Context) (*domain.Session, error) {
	var sess *domain.Session
	if err := s.get(ctx, recSession, &sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Store) SaveSession(ctx context.Context, sess *domain.Session) error {
	if sess == nil {
		if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": recSession}); err != nil {
			return fmt.Errorf("store delete %s: %w", recSession, err)
		}
		return nil
	}
	return s.put(ctx, recSession, sess)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, nil)
}

// get decodes the named record into out. A missing document leaves out at
// its zero value (empty collection, cleared session).
func (s *Store) get(ctx context.Context, name string, out any) error {
	var rec record
	err := s.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("store get %s: %w", name, err)
	}
	if rec.Data.IsZero() {
		return nil
	}
	if err := rec.Data.Unmarshal(out); err != nil {
		return fmt.Errorf("store decode %s: %w", name, err)
	}
	return nil
}

func (s *Store) put(ctx context.Context, name string, v any) error {
	doc := bson.M{"_id": name, "data": v}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": name}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("store put %s: %w", name, err)
	}
	return nil
}
