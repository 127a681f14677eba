package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Jordanjay551/BitesNearU/internal/api/metrics"
	"github.com/Jordanjay551/BitesNearU/internal/core/ports"
)

// CartHandler exposes the cart ledger operations.
type CartHandler struct {
	cart ports.CartService
}

func NewCartHandler(cart ports.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// Get handles GET /v1/cart.
//
// @Summary      Get the cart with derived totals
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	sum, err := h.cart.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(sum))
}

// AddItem handles POST /v1/cart/items.
//
// @Summary      Add an offer to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addCartItemRequest  true  "Offer and quantity"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Qty == 0 {
		req.Qty = 1
	}

	ctx := c.Request().Context()
	if err := h.cart.AddLine(ctx, req.OfferID, req.Qty); err != nil {
		return err
	}
	metrics.CartMutationsTotal.WithLabelValues("add").Inc()

	sum, err := h.cart.Summary(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(sum))
}

// UpdateItem handles PATCH /v1/cart/items/:offer_id.
//
// @Summary      Change a cart line's quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        offer_id  path      string                 true  "Offer id"
// @Param        body      body      updateCartItemRequest  true  "New quantity"
// @Success      200       {object}  cartResponse
// @Failure      400       {object}  errorResponse
// @Router       /v1/cart/items/{offer_id} [patch]
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	ctx := c.Request().Context()
	if err := h.cart.SetQty(ctx, c.Param("offer_id"), req.Qty); err != nil {
		return err
	}
	metrics.CartMutationsTotal.WithLabelValues("update").Inc()

	sum, err := h.cart.Summary(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(sum))
}

// RemoveItem handles DELETE /v1/cart/items/:offer_id.
//
// @Summary      Remove a cart line
// @Tags         cart
// @Produce      json
// @Param        offer_id  path      string  true  "Offer id"
// @Success      200       {object}  cartResponse
// @Router       /v1/cart/items/{offer_id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.cart.RemoveLine(ctx, c.Param("offer_id")); err != nil {
		return err
	}
	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()

	sum, err := h.cart.Summary(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(sum))
}

// Clear handles DELETE /v1/cart.
//
// @Summary      Empty the cart
// @Tags         cart
// @Success      204
// @Router       /v1/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.cart.Clear(c.Request().Context()); err != nil {
		return err
	}
	metrics.CartMutationsTotal.WithLabelValues("clear").Inc()
	return c.NoContent(http.StatusNoContent)
}
