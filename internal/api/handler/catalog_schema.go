package handler

// offerResponse is the transport view of a catalog offer.
type offerResponse struct {
	ID              string   `json:"id"`
	Store           string   `json:"store"`
	Title           string   `json:"title"`
	Categories      []string `json:"categories"`
	Price           float64  `json:"price"`
	Original        float64  `json:"original"`
	Distance        float64  `json:"distance"`
	Pickup          string   `json:"pickup"`
	Qty             int      `json:"qty"`
	Tags            []string `json:"tags"`
	DiscountPercent int      `json:"discount_percent"`
}

type listOffersResponse struct {
	Data []offerResponse `json:"data"`
}
