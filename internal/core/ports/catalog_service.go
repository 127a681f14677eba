package ports

import (
	"context"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
)

// OfferSort selects the ordering of catalog listings. Ties preserve the
// catalog's insertion order.
type OfferSort string

const (
	// SortNone returns offers in insertion order.
	SortNone OfferSort = ""
	// SortBestDeal orders by ascending price/original ratio.
	SortBestDeal OfferSort = "deals"
	// SortPopular orders by ascending distance.
	SortPopular OfferSort = "popular"
)

// OfferFilter carries the search/filter parameters for the catalog.
// Zero values mean "no constraint".
type OfferFilter struct {
	Query      string    // case-insensitive substring match on title or store
	MaxPrice   float64   // <= 0 means no price cap
	Budget     bool      // price <= 6
	Healthy    bool      // must carry the "Healthy" tag
	Vegetarian bool      // must carry the "Vegetarian" tag
	Categories []string  // offer must belong to at least one
	Sort       OfferSort
}

// Restaurant is the per-store grouping of catalog offers.
type Restaurant struct {
	Store      string   `json:"store"`
	Items      int      `json:"items"`
	Categories []string `json:"categories"` // lead category of each offer, in order
}

// CatalogService exposes the session-immutable offer set.
type CatalogService interface {
	// List returns the full offer set in insertion order.
	List(ctx context.Context) ([]domain.Offer, error)
	// FindByID returns the offer or domain.ErrOfferNotFound.
	FindByID(ctx context.Context, id string) (*domain.Offer, error)
	// Search applies filter constraints and ordering.
	Search(ctx context.Context, filter OfferFilter) ([]domain.Offer, error)
	// Restaurants groups offers by store name, insertion-ordered.
	Restaurants(ctx context.Context) ([]Restaurant, error)
	// DecrementStock subtracts amount from the offer's remaining stock and
	// persists. Fails with domain.ErrInsufficientStock when amount exceeds
	// the remaining quantity.
	DecrementStock(ctx context.Context, id string, amount int) error
}
