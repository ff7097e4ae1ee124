package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
)

// BookingRepository stores the single current booking under domain.BookingKey.
// Saving overwrites whatever was booked before.
type BookingRepository struct {
	kv domain.KeyValueStore
}

// NewBookingRepository creates a repository over kv.
func NewBookingRepository(kv domain.KeyValueStore) *BookingRepository {
	return &BookingRepository{kv: kv}
}

// Save implements domain.BookingRepository.
func (r *BookingRepository) Save(ctx context.Context, booking domain.Booking) error {
	data, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("marshal booking: %w", err)
	}
	if err := r.kv.Put(ctx, domain.BookingKey, data); err != nil {
		return fmt.Errorf("save booking: %w", err)
	}
	return nil
}

// Current implements domain.BookingRepository.
func (r *BookingRepository) Current(ctx context.Context) (domain.Booking, error) {
	data, err := r.kv.Get(ctx, domain.BookingKey)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Booking{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Booking{}, fmt.Errorf("load booking: %w", err)
	}

	var booking domain.Booking
	if err := json.Unmarshal(data, &booking); err != nil {
		return domain.Booking{}, fmt.Errorf("unmarshal booking: %w", err)
	}
	return booking, nil
}
