package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
	"github.com/Jordanjay551/BitesNearU/internal/core/ports"
)

// budgetCeiling is the price cap applied by the "budget" quick filter.
const budgetCeiling = 6

// CatalogService serves the offer set and its filtering/sorting primitives.
// It holds no state of its own; every read goes to the store.
type CatalogService struct {
	store ports.Store
	log   zerolog.Logger
}

func NewCatalogService(store ports.Store, log zerolog.Logger) *CatalogService {
	return &CatalogService{store: store, log: log}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Offer, error) {
	offers, err := s.store.Offers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return offers, nil
}

func (s *CatalogService) FindByID(ctx context.Context, id string) (*domain.Offer, error) {
	offers, err := s.store.Offers(ctx)
	if err != nil {
		return nil, fmt.Errorf("find offer: %w", err)
	}
	for i := range offers {
		if offers[i].ID == id {
			return &offers[i], nil
		}
	}
	return nil, domain.ErrOfferNotFound
}

func (s *CatalogService) Search(ctx context.Context, filter ports.OfferFilter) ([]domain.Offer, error) {
	offers, err := s.store.Offers(ctx)
	if err != nil {
		return nil, fmt.Errorf("search offers: %w", err)
	}

	res := make([]domain.Offer, 0, len(offers))
	q := strings.ToLower(strings.TrimSpace(filter.Query))
	for _, o := range offers {
		if filter.MaxPrice > 0 && o.Price > filter.MaxPrice {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(o.Title), q) &&
			!strings.Contains(strings.ToLower(o.Store), q) {
			continue
		}
		if filter.Budget && o.Price > budgetCeiling {
			continue
		}
		if filter.Healthy && !o.HasTag("Healthy") {
			continue
		}
		if filter.Vegetarian && !o.HasTag("Vegetarian") {
			continue
		}
		if len(filter.Categories) > 0 && !o.InAnyCategory(filter.Categories) {
			continue
		}
		res = append(res, o)
	}

	// Stable sorts preserve insertion order for equal keys.
	switch filter.Sort {
	case ports.SortBestDeal:
		sort.SliceStable(res, func(i, j int) bool { return res[i].DealRatio() < res[j].DealRatio() })
	case ports.SortPopular:
		sort.SliceStable(res, func(i, j int) bool { return res[i].Distance < res[j].Distance })
	}

	return res, nil
}

func (s *CatalogService) Restaurants(ctx context.Context) ([]ports.Restaurant, error) {
	offers, err := s.store.Offers(ctx)
	if err != nil {
		return nil, fmt.Errorf("group restaurants: %w", err)
	}

	order := make([]string, 0)
	grouped := make(map[string]*ports.Restaurant)
	for _, o := range offers {
		r, ok := grouped[o.Store]
		if !ok {
			r = &ports.Restaurant{Store: o.Store}
			grouped[o.Store] = r
			order = append(order, o.Store)
		}
		r.Items++
		if len(o.Categories) > 0 {
			r.Categories = append(r.Categories, o.Categories[0])
		}
	}

	res := make([]ports.Restaurant, 0, len(order))
	for _, store := range order {
		res = append(res, *grouped[store])
	}
	return res, nil
}

// DecrementStock subtracts amount from an offer's remaining stock and
// persists the whole offer collection. Unlike the checkout engine's
// clamping policy, a direct caller asking for more than is available gets
// domain.ErrInsufficientStock and no state change.
func (s *CatalogService) DecrementStock(ctx context.Context, id string, amount int) error {
	offers, err := s.store.Offers(ctx)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}

	idx := -1
	for i := range offers {
		if offers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrOfferNotFound
	}
	if amount > offers[idx].Qty {
		return domain.ErrInsufficientStock
	}

	offers[idx].Qty -= amount
	if err := s.store.SaveOffers(ctx, offers); err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}

	s.log.Debug().Str("offer_id", id).Int("amount", amount).Int("remaining", offers[idx].Qty).Msg("stock decremented")
	return nil
}
