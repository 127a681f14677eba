package ports

import (
	"context"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
)

// Store is the persistence substrate beneath the catalog, cart ledger,
// identity and payment-card collections. Every Save replaces the whole
// collection; there are no partial writes. Implementations must guarantee
// write-then-read equality.
type Store interface {
	Users(ctx context.Context) ([]domain.User, error)
	SaveUsers(ctx context.Context, users []domain.User) error

	Offers(ctx context.Context) ([]domain.Offer, error)
	SaveOffers(ctx context.Context, offers []domain.Offer) error

	CartLines(ctx context.Context) ([]domain.CartLine, error)
	SaveCartLines(ctx context.Context, lines []domain.CartLine) error

	Cards(ctx context.Context) ([]domain.PaymentCard, error)
	SaveCards(ctx context.Context, cards []domain.PaymentCard) error

	// Session returns the active session pointer, or nil when signed out.
	Session(ctx context.Context) (*domain.Session, error)
	// SaveSession stores the session pointer; nil clears it.
	SaveSession(ctx context.Context, s *domain.Session) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
