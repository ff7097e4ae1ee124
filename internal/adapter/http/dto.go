package http

import "time"

// SessionResponse is returned when a session is opened.
// @Description A freshly opened offer view session
type SessionResponse struct {
	// SessionID addresses the session in later calls
	SessionID string `json:"sessionId" example:"0b8f6c1e-4a59-4f1a-9d6e-0c1f2b7f3a10"`
}

// QueryResponse echoes the active origin/destination pair.
type QueryResponse struct {
	From string `json:"from" example:"Earth"`
	To   string `json:"to" example:"Saturn"`
}

// SortResponse is the active sort of a view.
type SortResponse struct {
	Field     string `json:"field" example:"departure"`
	Direction string `json:"direction" example:"asc"`
}

// ViewResponse is the client-facing state of one session.
// @Description Offers of a session in display order with the active sort and filter
type ViewResponse struct {
	SessionID string        `json:"sessionId"`
	Query     QueryResponse `json:"query"`
	Sort      SortResponse  `json:"sort"`

	// Carrier is the active carrier filter, "all" when unfiltered
	Carrier string `json:"carrier" example:"all"`

	// Carriers lists the distinct carriers of the loaded offers
	Carriers []string `json:"carriers" example:"SpaceX,Galaxy Express"`

	// Offers contains every offer in display order; hidden ones have visible=false
	Offers []OfferResponse `json:"offers"`

	// VisibleCount is the number of offers passing the carrier filter
	VisibleCount int `json:"visibleCount" example:"4"`
}

// OfferResponse is one offer row.
type OfferResponse struct {
	// Index is the position of the row in the view, used to address it
	Index int `json:"index" example:"0"`

	// SourceIndex is the position of the raw itinerary in the route result
	SourceIndex int    `json:"sourceIndex" example:"2"`
	ID          string `json:"id" example:"7d3e2a8c-3b7b-4d0f-8f57-2a9c1c4b9e51"`

	LegIDs      []string `json:"legIds" example:"leg-1,leg-2"`
	Carrier     string   `json:"carrier" example:"SpaceX"`
	Origin      string   `json:"origin" example:"Earth"`
	Destination string   `json:"destination" example:"Saturn"`

	// TotalPrice is the exact leg price sum with three decimals
	TotalPrice string `json:"totalPrice" example:"425.750"`

	StopCount int    `json:"stopCount" example:"1"`
	StopLabel string `json:"stopLabel" example:"1 stop"`

	Departure time.Time `json:"departure"`
	Arrival   time.Time `json:"arrival"`
	TimeRange string    `json:"timeRange" example:"Mar 5, 14:30 - Mar 7, 02:10"`

	DurationMinutes float64 `json:"durationMinutes" example:"2140"`
	Duration        string  `json:"duration" example:"1d 11h"`

	Expanded bool `json:"expanded" example:"false"`
	Visible  bool `json:"visible" example:"true"`
}

// LegResponse is one raw leg.
type LegResponse struct {
	ID          string    `json:"id" example:"leg-1"`
	From        string    `json:"from" example:"Earth"`
	To          string    `json:"to" example:"Jupiter"`
	FlightStart time.Time `json:"flightStart"`
	FlightEnd   time.Time `json:"flightEnd"`
	Carrier     string    `json:"carrier" example:"SpaceX"`
	Price       string    `json:"price" example:"100.500"`

	// Labels are only present on expanded offer rows
	StartLabel string `json:"startLabel,omitempty" example:"Mar 5, 14:30"`
	EndLabel   string `json:"endLabel,omitempty" example:"Mar 6, 08:00"`
	Duration   string `json:"duration,omitempty" example:"17h 30m"`
	Layover    string `json:"layover,omitempty" example:"2h"`
}

// OfferDetailResponse is an offer together with its raw legs.
// @Description An expanded offer row
type OfferDetailResponse struct {
	Offer OfferResponse `json:"offer"`
	Legs  []LegResponse `json:"legs"`
}

// BookingResponse is a confirmed booking.
// @Description The single current booking
type BookingResponse struct {
	Reference   string        `json:"reference" example:"BK-3FZ8K1Q2W0XA"`
	ConfirmedAt time.Time     `json:"confirmedAt"`
	Overview    OfferResponse `json:"overview"`
	Legs        []LegResponse `json:"legs"`
}

// RoutesResponse contains the raw itineraries of a route query.
// @Description Raw itineraries in upstream order
type RoutesResponse struct {
	Query       QueryResponse   `json:"query"`
	Itineraries [][]LegResponse `json:"itineraries"`
	Total       int             `json:"total" example:"6"`
}

// NamesResponse lists planet or company names.
type NamesResponse struct {
	Items []string `json:"items" example:"Earth,Mars,Saturn"`
	Total int      `json:"total" example:"3"`
}
