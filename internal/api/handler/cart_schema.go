package handler

type addCartItemRequest struct {
	OfferID string `json:"offer_id" validate:"required"`
	// Qty defaults to 1 when omitted.
	Qty int `json:"qty" validate:"gte=0"`
}

type updateCartItemRequest struct {
	Qty int `json:"qty" validate:"required"`
}

type cartLineResponse struct {
	OfferID   string  `json:"offer_id"`
	Title     string  `json:"title"`
	Store     string  `json:"store"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	LineTotal float64 `json:"line_total"`
}

type cartResponse struct {
	Items    []cartLineResponse `json:"items"`
	Subtotal float64            `json:"subtotal"`
	Savings  float64            `json:"savings"`
	Units    int                `json:"units"`
}
