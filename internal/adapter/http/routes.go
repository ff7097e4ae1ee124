package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all route offer API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *Handler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	api.GET("/routes", h.Routes)
	api.GET("/planets", h.Planets)
	api.GET("/companies", h.Companies)

	sessions := api.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.GET("/:id", h.GetSession)
	sessions.POST("/:id/search", h.Search)
	sessions.POST("/:id/sort", h.Sort)
	sessions.POST("/:id/filter", h.Filter)
	sessions.GET("/:id/offers/:index", h.GetOffer)
	sessions.POST("/:id/offers/:index/toggle", h.ToggleOffer)
	sessions.POST("/:id/offers/:index/book", h.BookOffer)

	booking := api.Group("/booking")
	booking.GET("", h.CurrentBooking)
	booking.GET("/stream", h.StreamBookings)
}
