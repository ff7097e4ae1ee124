package domain

import "time"

// BookingKey is the fixed store key of the single booking slot.
const BookingKey = "booking"

// Booking pairs the offer a client confirmed with its raw legs.
// Only one booking is kept; each confirmation replaces the previous one.
type Booking struct {
	// Reference is the confirmation number shown to the client
	Reference string `json:"reference"`

	// Overview is the offer as displayed at confirmation time
	Overview Offer `json:"overview"`

	// Legs is the raw itinerary the offer was built from
	Legs Itinerary `json:"legs"`

	// ConfirmedAt is when the booking was made
	ConfirmedAt time.Time `json:"confirmedAt"`
}
