package http

import (
	"context"
	"errors"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sony/gobreaker/v2"

	"github.com/cosmos-odyssey/route-offer-service/internal/adapter/http/middleware"
	"github.com/cosmos-odyssey/route-offer-service/internal/adapter/http/response"
	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/logger"
	"github.com/cosmos-odyssey/route-offer-service/internal/usecase"
)

// BookingStream delivers confirmed bookings to one subscriber until ctx ends.
type BookingStream interface {
	Subscribe(ctx context.Context) (<-chan domain.Booking, error)
}

// HandlerConfig contains optional handler settings.
type HandlerConfig struct {
	// AllowedOrigins restricts WebSocket origins; "*" or empty allows any
	AllowedOrigins []string

	Logger *logger.Logger
}

// Handler handles HTTP requests for the route offer API.
type Handler struct {
	sessions usecase.SessionService
	stream   BookingStream
	upgrader websocket.Upgrader
	origins  []string
	log      *logger.Logger
}

// NewHandler creates a new Handler. stream may be nil, in which case the
// booking stream endpoint answers 503.
func NewHandler(sessions usecase.SessionService, stream BookingStream, cfg HandlerConfig) *Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	h := &Handler{
		sessions: sessions,
		stream:   stream,
		origins:  cfg.AllowedOrigins,
		log:      log,
	}
	h.upgrader = newUpgrader(h.checkOrigin)
	return h
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *Handler) handleError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	var fieldErr *domain.ValidationError
	if errors.As(err, &fieldErr) {
		return response.ValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
	}

	switch {
	case domain.IsInvalidRequest(err):
		return response.ValidationErrorWithMessage(c, err.Error())

	case errors.Is(err, domain.ErrSessionNotFound):
		return response.SessionNotFound(c)

	case domain.IsIndexOutOfRange(err):
		return response.NotFound(c, response.CodeOfferNotFound, err.Error())

	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, response.CodeNotFound, response.MsgNotFound)

	case domain.IsStaleResult(err):
		return response.Conflict(c, response.MsgStaleResult)

	// Timeouts are checked before fetch errors, which may wrap them
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)

	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)

	case errors.Is(err, domain.ErrEmptyItinerary):
		return response.BadGateway(c)

	case domain.IsRetryableFetch(err),
		errors.Is(err, gobreaker.ErrOpenState),
		errors.Is(err, gobreaker.ErrTooManyRequests):
		return response.ServiceUnavailable(c)

	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return response.BadGateway(c)
	}

	h.log.WithRequestID(middleware.GetRequestID(c)).Error().Err(err).Str("path", c.Path()).Msg("Unhandled error")
	return response.InternalServerError(c)
}
