package handler

import "github.com/Jordanjay551/BitesNearU/internal/core/ports"

type checkoutRequest struct {
	CardID    string `json:"card_id"    validate:"required"`
	PromoCode string `json:"promo_code"`
}

type quoteRequest struct {
	PromoCode string `json:"promo_code" validate:"required"`
}

type checkoutResponse struct {
	Subtotal float64               `json:"subtotal"`
	Discount float64               `json:"discount"`
	Total    float64               `json:"total"`
	Units    int                   `json:"units"`
	Loyalty  ports.LoyaltySnapshot `json:"loyalty"`
}

type quoteResponse struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}
