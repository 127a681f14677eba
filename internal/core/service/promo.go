package service

import (
	"strings"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
)

// promoCodes is the fixed promo table: code → flat deduction from subtotal.
var promoCodes = map[string]float64{
	"SAVE5": 5,
}

// promoDiscount resolves a promo code to its flat deduction. An empty code
// means no promo and is not an error; an unknown code is rejected.
func promoDiscount(code string) (float64, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return 0, nil
	}
	d, ok := promoCodes[code]
	if !ok {
		return 0, domain.ErrInvalidPromo
	}
	return d, nil
}
