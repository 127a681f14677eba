package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/Jordanjay551/BitesNearU/internal/api/handler"
	"github.com/Jordanjay551/BitesNearU/internal/api/middleware"
	"github.com/Jordanjay551/BitesNearU/internal/core/ports"
	"github.com/Jordanjay551/BitesNearU/internal/core/service"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store ports.Store, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("bitesnearu"))

	// --- Dependencies ---
	identity := service.NewIdentityService(store, log, jwtSecret, 24*time.Hour)
	catalog := service.NewCatalogService(store, log)
	cart := service.NewCartService(store, log)
	checkout := service.NewCheckoutService(store, log)
	cards := service.NewCardService(store, log)

	authHandler := handler.NewAuthHandler(identity)
	catalogHandler := handler.NewCatalogHandler(catalog)
	cartHandler := handler.NewCartHandler(cart)
	checkoutHandler := handler.NewCheckoutHandler(checkout)
	profileHandler := handler.NewProfileHandler(identity)
	cardsHandler := handler.NewCardsHandler(cards)
	authRequired := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authRequired)
	e.GET("/auth/me", authHandler.Me, authRequired)

	// --- Catalog ---
	e.GET("/v1/offers", catalogHandler.List)
	e.GET("/v1/offers/:id", catalogHandler.Get)
	e.GET("/v1/restaurants", catalogHandler.Restaurants)

	// --- Cart ledger ---
	e.GET("/v1/cart", cartHandler.Get)
	e.POST("/v1/cart/items", cartHandler.AddItem)
	e.PATCH("/v1/cart/items/:offer_id", cartHandler.UpdateItem)
	e.DELETE("/v1/cart/items/:offer_id", cartHandler.RemoveItem)
	e.DELETE("/v1/cart", cartHandler.Clear)

	// --- Checkout ---
	e.POST("/v1/checkout", checkoutHandler.Place)
	e.POST("/v1/checkout/quote", checkoutHandler.Quote)

	// --- Profile / loyalty ---
	e.GET("/v1/profile", profileHandler.Get, authRequired)
	e.PUT("/v1/profile/avatar", profileHandler.SetAvatar, authRequired)

	// --- Payment cards ---
	e.GET("/v1/cards", cardsHandler.List)
	e.POST("/v1/cards", cardsHandler.Add)
	e.DELETE("/v1/cards/:id", cardsHandler.Remove)
	e.PUT("/v1/cards/:id/default", cardsHandler.SetDefault)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(store)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
