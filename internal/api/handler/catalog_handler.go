package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Jordanjay551/BitesNearU/internal/core/ports"
)

// CatalogHandler serves offer listings, search and the restaurant grouping.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List handles GET /v1/offers with optional filter/sort query parameters.
//
// @Summary      List or search offers
// @Tags         catalog
// @Produce      json
// @Param        q           query     string   false  "Substring match on title or store"
// @Param        max_price   query     number   false  "Maximum price"
// @Param        budget      query     bool     false  "Only offers at £6 or less"
// @Param        healthy     query     bool     false  "Only offers tagged Healthy"
// @Param        vegetarian  query     bool     false  "Only offers tagged Vegetarian"
// @Param        cat         query     []string false  "Category membership (repeatable)"
// @Param        sort        query     string   false  "Sort order: deals or popular"
// @Success      200  {object}  listOffersResponse
// @Router       /v1/offers [get]
func (h *CatalogHandler) List(c echo.Context) error {
	filter := ports.OfferFilter{
		Query:      c.QueryParam("q"),
		Budget:     c.QueryParam("budget") == "true",
		Healthy:    c.QueryParam("healthy") == "true",
		Vegetarian: c.QueryParam("vegetarian") == "true",
		Sort:       ports.OfferSort(c.QueryParam("sort")),
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "max_price must be a number")
		}
		filter.MaxPrice = maxPrice
	}
	if cats, ok := c.QueryParams()["cat"]; ok {
		filter.Categories = cats
	}

	offers, err := h.catalog.Search(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOffersResponse{Data: toOfferResponses(offers)})
}

// Get handles GET /v1/offers/:id, resolving a deep-linked offer detail view.
//
// @Summary      Get an offer by id
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Offer id (e.g. o1)"
// @Success      200  {object}  offerResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/offers/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	offer, err := h.catalog.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOfferResponse(*offer))
}

// Restaurants handles GET /v1/restaurants: offers grouped by store.
//
// @Summary      List restaurants
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  ports.Restaurant
// @Router       /v1/restaurants [get]
func (h *CatalogHandler) Restaurants(c echo.Context) error {
	restaurants, err := h.catalog.Restaurants(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, restaurants)
}
