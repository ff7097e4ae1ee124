// Package events broadcasts confirmed bookings to in-process observers.
package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"

	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/logger"
)

// TopicBookingConfirmed carries every confirmed booking.
const TopicBookingConfirmed = "booking.confirmed"

// metadataReference is the message metadata key holding the booking reference.
const metadataReference = "reference"

// DefaultBufferSize is the per-subscriber channel buffer.
const DefaultBufferSize = 64

// BookingFeed is a pub/sub topic of confirmed bookings.
type BookingFeed struct {
	pubsub *gochannel.GoChannel
	log    *logger.Logger
}

// NewBookingFeed creates a feed. If log is nil, logging is disabled.
func NewBookingFeed(log *logger.Logger) *BookingFeed {
	if log == nil {
		log = logger.Nop()
	}
	return &BookingFeed{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: DefaultBufferSize,
		}, NewWatermillLogger(log)),
		log: log,
	}
}

// PublishBooking implements domain.BookingPublisher.
func (f *BookingFeed) PublishBooking(ctx context.Context, booking domain.Booking) error {
	payload, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(metadataReference, booking.Reference)
	msg.SetContext(ctx)

	if err := f.pubsub.Publish(TopicBookingConfirmed, msg); err != nil {
		return fmt.Errorf("publish booking event: %w", err)
	}
	return nil
}

// Subscribe streams bookings confirmed from now on until ctx is done.
// Delivery order between bookings published concurrently is not guaranteed.
// The returned channel is closed when the subscription ends.
func (f *BookingFeed) Subscribe(ctx context.Context) (<-chan domain.Booking, error) {
	messages, err := f.pubsub.Subscribe(ctx, TopicBookingConfirmed)
	if err != nil {
		return nil, fmt.Errorf("subscribe to %s: %w", TopicBookingConfirmed, err)
	}

	out := make(chan domain.Booking, DefaultBufferSize)
	go func() {
		defer close(out)
		for msg := range messages {
			var booking domain.Booking
			if err := json.Unmarshal(msg.Payload, &booking); err != nil {
				f.log.Error().Err(err).Str("message_id", msg.UUID).Msg("Dropped malformed booking event")
				msg.Ack()
				continue
			}
			msg.Ack()

			select {
			case out <- booking:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Close stops the feed and ends every subscription.
func (f *BookingFeed) Close() error {
	return f.pubsub.Close()
}
