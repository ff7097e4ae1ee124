package domain

import "context"

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=domain

// RouteSource is the upstream route finder. Its lookup logic is opaque to the service.
type RouteSource interface {
	// FetchRoutes returns the candidate itineraries for a query, in upstream order.
	FetchRoutes(ctx context.Context, query RouteQuery) ([]Itinerary, error)

	// FetchPlanets returns the known locations.
	FetchPlanets(ctx context.Context) ([]string, error)

	// FetchCompanies returns the known carriers.
	FetchCompanies(ctx context.Context) ([]string, error)
}

// BookingRepository persists the single current booking.
type BookingRepository interface {
	// Save overwrites the current booking.
	Save(ctx context.Context, booking Booking) error

	// Current returns the stored booking or ErrNotFound.
	Current(ctx context.Context) (Booking, error)
}

// BookingPublisher notifies observers of a newly confirmed booking.
type BookingPublisher interface {
	PublishBooking(ctx context.Context, booking Booking) error
}

// KeyValueStore is a minimal byte store used for booking persistence.
type KeyValueStore interface {
	Put(ctx context.Context, key string, value []byte) error

	// Get returns ErrNotFound for a missing key.
	Get(ctx context.Context, key string) ([]byte, error)

	Close() error
}
