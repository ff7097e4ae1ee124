package http

import (
	"github.com/labstack/echo/v4"

	"github.com/cosmos-odyssey/route-offer-service/internal/adapter/http/response"
	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
)

// Routes handles GET /api/v1/routes
//
// @Summary List raw routes
// @Description Returns the raw itineraries of the route finder for an origin/destination pair
// @Tags routes
// @Produce json
// @Param from query string true "Departure planet"
// @Param to query string true "Destination planet"
// @Success 200 {object} RoutesResponse
// @Failure 400 {object} response.ErrorDetail "Invalid parameters"
// @Failure 502 {object} response.ErrorDetail "Upstream error"
// @Failure 503 {object} response.ErrorDetail "Upstream unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /routes [get]
func (h *Handler) Routes(c echo.Context) error {
	req := RouteQueryRequest{
		From: c.QueryParam("from"),
		To:   c.QueryParam("to"),
	}
	if err := req.Validate(); err != nil {
		return h.handleError(c, err)
	}

	query := req.ToDomain()
	itineraries, err := h.sessions.Routes(c.Request().Context(), query)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToRoutesResponse(query, itineraries))
}

// Planets handles GET /api/v1/planets
//
// @Summary List planets
// @Tags routes
// @Produce json
// @Success 200 {object} NamesResponse
// @Failure 502 {object} response.ErrorDetail "Upstream error"
// @Router /planets [get]
func (h *Handler) Planets(c echo.Context) error {
	names, err := h.sessions.Planets(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToNamesResponse(names))
}

// Companies handles GET /api/v1/companies
//
// @Summary List companies
// @Tags routes
// @Produce json
// @Success 200 {object} NamesResponse
// @Failure 502 {object} response.ErrorDetail "Upstream error"
// @Router /companies [get]
func (h *Handler) Companies(c echo.Context) error {
	names, err := h.sessions.Companies(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToNamesResponse(names))
}

// CreateSession handles POST /api/v1/sessions
//
// @Summary Open an offer view session
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Router /sessions [post]
func (h *Handler) CreateSession(c echo.Context) error {
	view, err := h.sessions.CreateSession(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Created(c, &SessionResponse{SessionID: view.SessionID})
}

// GetSession handles GET /api/v1/sessions/:id
//
// @Summary Get the offer view of a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ViewResponse
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /sessions/{id} [get]
func (h *Handler) GetSession(c echo.Context) error {
	view, err := h.sessions.View(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToViewResponse(view))
}

// Search handles POST /api/v1/sessions/:id/search
//
// @Summary Search routes into a session
// @Description Fetches routes and replaces the offers of the session. The sort resets to departure ascending and the carrier filter to all.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body RouteQueryRequest true "Origin and destination"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} response.ErrorDetail "Invalid parameters"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Failure 409 {object} response.ErrorDetail "Superseded by a newer search"
// @Failure 502 {object} response.ErrorDetail "Upstream error"
// @Failure 503 {object} response.ErrorDetail "Upstream unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /sessions/{id}/search [post]
func (h *Handler) Search(c echo.Context) error {
	var req RouteQueryRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleError(c, err)
	}

	view, err := h.sessions.Search(c.Request().Context(), c.Param("id"), req.ToDomain())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToViewResponse(view))
}

// Sort handles POST /api/v1/sessions/:id/sort
//
// @Summary Toggle the offer sort
// @Description A new field sorts descending first; the active field flips direction.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SortRequest true "Sort field"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} response.ErrorDetail "Invalid parameters"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /sessions/{id}/sort [post]
func (h *Handler) Sort(c echo.Context) error {
	var req SortRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleError(c, err)
	}

	view, err := h.sessions.Sort(c.Request().Context(), c.Param("id"), domain.SortField(req.Field))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToViewResponse(view))
}

// Filter handles POST /api/v1/sessions/:id/filter
//
// @Summary Filter offers by carrier
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body FilterRequest true "Carrier, or all"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} response.ErrorDetail "Invalid parameters"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /sessions/{id}/filter [post]
func (h *Handler) Filter(c echo.Context) error {
	var req FilterRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleError(c, err)
	}

	view, err := h.sessions.Filter(c.Request().Context(), c.Param("id"), req.Carrier)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToViewResponse(view))
}

// ToggleOffer handles POST /api/v1/sessions/:id/offers/:index/toggle
//
// @Summary Expand or collapse an offer row
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param index path int true "View position"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} response.ErrorDetail "Invalid parameters"
// @Failure 404 {object} response.ErrorDetail "Session or offer not found"
// @Router /sessions/{id}/offers/{index}/toggle [post]
func (h *Handler) ToggleOffer(c echo.Context) error {
	path, err := bindOfferPath(c)
	if err != nil {
		return h.handleError(c, err)
	}

	view, err := h.sessions.ToggleExpanded(c.Request().Context(), path.SessionID, path.Index)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToViewResponse(view))
}

// GetOffer handles GET /api/v1/sessions/:id/offers/:index
//
// @Summary Get an offer with its legs
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param index path int true "View position"
// @Success 200 {object} OfferDetailResponse
// @Failure 400 {object} response.ErrorDetail "Invalid parameters"
// @Failure 404 {object} response.ErrorDetail "Session or offer not found"
// @Router /sessions/{id}/offers/{index} [get]
func (h *Handler) GetOffer(c echo.Context) error {
	path, err := bindOfferPath(c)
	if err != nil {
		return h.handleError(c, err)
	}

	detail, err := h.sessions.OfferDetail(c.Request().Context(), path.SessionID, path.Index)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToOfferDetailResponse(path.Index, detail))
}

// BookOffer handles POST /api/v1/sessions/:id/offers/:index/book
//
// @Summary Book an offer
// @Description Confirms the offer, replaces the stored booking and notifies booking stream subscribers.
// @Tags booking
// @Produce json
// @Param id path string true "Session ID"
// @Param index path int true "View position"
// @Success 201 {object} BookingResponse
// @Failure 400 {object} response.ErrorDetail "Invalid parameters"
// @Failure 404 {object} response.ErrorDetail "Session or offer not found"
// @Failure 500 {object} response.ErrorDetail "Booking could not be stored"
// @Router /sessions/{id}/offers/{index}/book [post]
func (h *Handler) BookOffer(c echo.Context) error {
	path, err := bindOfferPath(c)
	if err != nil {
		return h.handleError(c, err)
	}

	booking, err := h.sessions.Book(c.Request().Context(), path.SessionID, path.Index)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Created(c, ToBookingResponse(booking))
}

// CurrentBooking handles GET /api/v1/booking
//
// @Summary Get the current booking
// @Tags booking
// @Produce json
// @Success 200 {object} BookingResponse
// @Failure 404 {object} response.ErrorDetail "No booking yet"
// @Router /booking [get]
func (h *Handler) CurrentBooking(c echo.Context) error {
	booking, err := h.sessions.CurrentBooking(c.Request().Context())
	if domain.IsNotFound(err) {
		return response.NotFound(c, response.CodeNotFound, response.MsgNoBooking)
	}
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToBookingResponse(booking))
}

// bindOfferPath reads and validates the session id and offer index path parameters.
func bindOfferPath(c echo.Context) (offerPath, error) {
	path := offerPath{SessionID: c.Param("id")}
	if err := echo.PathParamsBinder(c).MustInt("index", &path.Index).BindError(); err != nil {
		return path, domain.NewValidationError("index", "index must be an integer")
	}
	return path, validateStruct(&path)
}
