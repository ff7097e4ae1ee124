package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/cosmos-odyssey/route-offer-service/internal/adapter/http/response"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/metrics"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// EventBookingConfirmed is the type of booking stream messages.
const EventBookingConfirmed = "booking.confirmed"

// BookingEvent is one message of the booking stream.
type BookingEvent struct {
	Type    string           `json:"type" example:"booking.confirmed"`
	Booking *BookingResponse `json:"booking"`
}

func newUpgrader(checkOrigin func(r *http.Request) bool) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      checkOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkOrigin accepts requests without an Origin header (non-browser clients)
// and browser origins listed in the configuration.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.origins) == 0 {
		return true
	}
	for _, allowed := range h.origins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	h.log.Warn().Str("origin", origin).Msg("Booking stream rejected from unauthorized origin")
	return false
}

// StreamBookings handles GET /api/v1/booking/stream
//
// @Summary Stream confirmed bookings
// @Description Upgrades to a WebSocket that receives a booking.confirmed event for every booking made after connecting. Clients that fall behind are disconnected.
// @Tags booking
// @Success 101 {object} BookingEvent
// @Failure 503 {object} response.ErrorDetail "Booking stream disabled"
// @Router /booking/stream [get]
func (h *Handler) StreamBookings(c echo.Context) error {
	if h.stream == nil {
		return response.ServiceUnavailable(c)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		h.log.Debug().Err(err).Msg("Booking stream upgrade failed")
		return nil
	}
	defer func() {
		_ = conn.Close()
	}()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	bookings, err := h.stream.Subscribe(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Booking stream subscription failed")
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "subscription failed"),
			time.Now().Add(writeWait))
		return nil
	}

	metrics.BookingSubscribers.Inc()
	defer metrics.BookingSubscribers.Dec()

	go readUntilClosed(conn, cancel)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				time.Now().Add(writeWait))
			return nil

		case booking, ok := <-bookings:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(writeWait))
				return nil
			}
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return nil
			}
			event := BookingEvent{Type: EventBookingConfirmed, Booking: ToBookingResponse(booking)}
			if err := conn.WriteJSON(event); err != nil {
				h.log.Debug().Err(err).Msg("Dropped booking stream client")
				return nil
			}

		case <-ticker.C:
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return nil
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		}
	}
}

// readUntilClosed discards client messages and cancels the stream once the
// client goes away or stops answering pings.
func readUntilClosed(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}
