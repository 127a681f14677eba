package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Jordanjay551/BitesNearU/internal/api/metrics"
	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
	"github.com/Jordanjay551/BitesNearU/internal/core/ports"
)

// CheckoutHandler exposes the checkout transition and promo preview.
type CheckoutHandler struct {
	checkout ports.CheckoutService
}

func NewCheckoutHandler(checkout ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Place handles POST /v1/checkout.
//
// @Summary      Place the order
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      checkoutRequest  true  "Payment card and optional promo code"
// @Success      200   {object}  checkoutResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/checkout [post]
func (h *CheckoutHandler) Place(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.checkout.Attempt(c.Request().Context(), ports.CheckoutInput{
		CardID:    req.CardID,
		PromoCode: req.PromoCode,
	})
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues(checkoutOutcome(err)).Inc()
		return err
	}

	metrics.CheckoutsTotal.WithLabelValues("success").Inc()
	metrics.CheckoutAmount.Observe(result.Total)

	loyalty := result.Loyalty
	loyalty.Saved = round2(loyalty.Saved)
	return c.JSON(http.StatusOK, checkoutResponse{
		Subtotal: round2(result.Subtotal),
		Discount: round2(result.Discount),
		Total:    round2(result.Total),
		Units:    result.Units,
		Loyalty:  loyalty,
	})
}

// Quote handles POST /v1/checkout/quote: a display-only promo evaluation.
//
// @Summary      Preview a promo code
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      quoteRequest  true  "Promo code"
// @Success      200   {object}  quoteResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/checkout/quote [post]
func (h *CheckoutHandler) Quote(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	quote, err := h.checkout.Quote(c.Request().Context(), req.PromoCode)
	if err != nil {
		metrics.PromoQuotesTotal.WithLabelValues("invalid").Inc()
		return err
	}

	metrics.PromoQuotesTotal.WithLabelValues("applied").Inc()
	return c.JSON(http.StatusOK, quoteResponse{
		Subtotal: round2(quote.Subtotal),
		Discount: round2(quote.Discount),
		Total:    round2(quote.Total),
	})
}

// checkoutOutcome maps a checkout failure to its metric label.
func checkoutOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "not_authenticated"
	case errors.Is(err, domain.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, domain.ErrNoPaymentMethod):
		return "no_payment_method"
	case errors.Is(err, domain.ErrInvalidPromo):
		return "invalid_promo"
	default:
		return "error"
	}
}
