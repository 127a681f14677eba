package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Jordanjay551/BitesNearU/internal/core/ports"
)

type addCardRequest struct {
	Number string `json:"number" validate:"required,min=4"`
	Holder string `json:"holder" validate:"required"`
}

// CardsHandler manages the stored payment-card list.
type CardsHandler struct {
	cards ports.CardService
}

func NewCardsHandler(cards ports.CardService) *CardsHandler {
	return &CardsHandler{cards: cards}
}

// List handles GET /v1/cards.
//
// @Summary      List payment cards
// @Tags         cards
// @Produce      json
// @Success      200  {array}  domain.PaymentCard
// @Router       /v1/cards [get]
func (h *CardsHandler) List(c echo.Context) error {
	cards, err := h.cards.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cards)
}

// Add handles POST /v1/cards.
//
// @Summary      Add a payment card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        body  body      addCardRequest  true  "Card number and holder name"
// @Success      201   {object}  domain.PaymentCard
// @Failure      400   {object}  errorResponse
// @Router       /v1/cards [post]
func (h *CardsHandler) Add(c echo.Context) error {
	var req addCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	card, err := h.cards.Add(c.Request().Context(), req.Number, req.Holder)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, card)
}

// Remove handles DELETE /v1/cards/:id.
//
// @Summary      Remove a payment card
// @Tags         cards
// @Param        id  path  string  true  "Card id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/cards/{id} [delete]
func (h *CardsHandler) Remove(c echo.Context) error {
	if err := h.cards.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SetDefault handles PUT /v1/cards/:id/default.
//
// @Summary      Make a card the default
// @Tags         cards
// @Produce      json
// @Param        id  path  string  true  "Card id"
// @Success      200  {array}  domain.PaymentCard
// @Failure      404  {object}  errorResponse
// @Router       /v1/cards/{id}/default [put]
func (h *CardsHandler) SetDefault(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.cards.SetDefault(ctx, c.Param("id")); err != nil {
		return err
	}
	cards, err := h.cards.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cards)
}
