package domain

import "errors"

var ErrEmptyCart = errors.New("cart is empty")

// CartLine is a cart entry referencing one offer with a quantity.
// Title, store and price are snapshotted at add time so later catalog
// changes do not retroactively alter cart math.
type CartLine struct {
	OfferID string  `json:"id" bson:"id"`
	Title   string  `json:"title" bson:"title"`
	Store   string  `json:"store" bson:"store"`
	Price   float64 `json:"price" bson:"price"`
	Qty     int     `json:"qty" bson:"qty"`
}
