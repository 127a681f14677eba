package domain

import "errors"

var ErrNoPaymentMethod = errors.New("no payment method selected")
var ErrCardNotFound = errors.New("payment card not found")
var ErrInvalidPromo = errors.New("invalid promo code")

// PaymentCard is a stored payment method. At most one card in the
// collection is the default at any time.
type PaymentCard struct {
	ID        string `json:"id" bson:"id"`
	Label     string `json:"label" bson:"label"`
	IsDefault bool   `json:"isDefault" bson:"is_default"`
}
