package domain

import (
	"errors"
	"math"
)

var ErrOfferNotFound = errors.New("offer not found")
var ErrInsufficientStock = errors.New("insufficient stock")

// Offer is a discounted surplus-food listing with bounded stock.
// Qty is the only field mutated after seeding, and it only ever decreases.
type Offer struct {
	ID         string   `json:"id" bson:"id"`
	Store      string   `json:"store" bson:"store"`
	Title      string   `json:"title" bson:"title"`
	Categories []string `json:"cat" bson:"cat"`
	Price      float64  `json:"price" bson:"price"`
	Original   float64  `json:"original" bson:"original"`
	Distance   float64  `json:"dist" bson:"dist"`
	Pickup     string   `json:"pickup" bson:"pickup"`
	Qty        int      `json:"qty" bson:"qty"`
	Tags       []string `json:"tags" bson:"tags"`
}

// DealRatio is the discounted-to-original price ratio used by the
// "best deal" sort: lower means a deeper discount.
func (o Offer) DealRatio() float64 {
	if o.Original <= 0 {
		return 1
	}
	return o.Price / o.Original
}

// DiscountPercent is the rounded percentage off the original price.
func (o Offer) DiscountPercent() int {
	if o.Original <= 0 {
		return 0
	}
	return int(math.Round((1 - o.Price/o.Original) * 100))
}

// HasTag reports whether the offer carries the given tag.
func (o Offer) HasTag(tag string) bool {
	for _, t := range o.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// InAnyCategory reports whether the offer belongs to at least one of cats.
func (o Offer) InAnyCategory(cats []string) bool {
	for _, c := range o.Categories {
		for _, want := range cats {
			if c == want {
				return true
			}
		}
	}
	return false
}
