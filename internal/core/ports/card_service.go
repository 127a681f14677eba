package ports

import (
	"context"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
)

// CardService manages the stored payment-card list.
type CardService interface {
	List(ctx context.Context) ([]domain.PaymentCard, error)
	// Add stores a card labelled "<holder> •••• <last4>". The first card
	// added to an empty collection becomes the default.
	Add(ctx context.Context, number, holder string) (*domain.PaymentCard, error)
	// Remove deletes the card, or fails with domain.ErrCardNotFound.
	Remove(ctx context.Context, id string) error
	// SetDefault marks the card as default and clears the flag on all
	// others, keeping the single-default invariant.
	SetDefault(ctx context.Context, id string) error
}
