package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/idgen"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/logger"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/metrics"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/timeutil"
)

// Default session settings.
const (
	DefaultSessionTTL    = 30 * time.Minute
	DefaultSearchTimeout = 10 * time.Second
)

//go:generate mockgen -source=session.go -destination=mock_session.go -package=usecase

// SessionService drives per-client offer views and booking confirmation.
type SessionService interface {
	// CreateSession opens an empty view.
	CreateSession(ctx context.Context) (domain.View, error)

	// View returns the current state of a session.
	View(ctx context.Context, sessionID string) (domain.View, error)

	// Search fetches routes for query and loads them into the session.
	// A result overtaken by a newer search of the same session fails with ErrStaleResult.
	Search(ctx context.Context, sessionID string, query domain.RouteQuery) (domain.View, error)

	// Sort applies the sort toggle for field.
	Sort(ctx context.Context, sessionID string, field domain.SortField) (domain.View, error)

	// Filter restricts the visible offers to one carrier, or all of them.
	Filter(ctx context.Context, sessionID string, carrier string) (domain.View, error)

	// ToggleExpanded flips the expanded flag of the offer at a view position.
	ToggleExpanded(ctx context.Context, sessionID string, index int) (domain.View, error)

	// OfferDetail returns the offer at a view position with its legs.
	OfferDetail(ctx context.Context, sessionID string, index int) (domain.OfferDetail, error)

	// Book confirms the offer at a view position, stores it and broadcasts it.
	Book(ctx context.Context, sessionID string, index int) (domain.Booking, error)

	// CurrentBooking returns the last confirmed booking or ErrNotFound.
	CurrentBooking(ctx context.Context) (domain.Booking, error)

	// Routes returns the raw itineraries for query without touching any session.
	Routes(ctx context.Context, query domain.RouteQuery) ([]domain.Itinerary, error)

	// Planets lists the known locations.
	Planets(ctx context.Context) ([]string, error)

	// Companies lists the known carriers.
	Companies(ctx context.Context) ([]string, error)

	// Sweep drops sessions idle for longer than the TTL and returns how many were removed.
	Sweep() int
}

// SessionConfig contains configuration options for the session service.
type SessionConfig struct {
	SessionTTL    time.Duration
	SearchTimeout time.Duration
	Clock         timeutil.Clock
	Builder       *OfferBuilder
	References    idgen.Generator
	Logger        *logger.Logger
}

// DefaultSessionConfig returns the default configuration.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		SessionTTL:    DefaultSessionTTL,
		SearchTimeout: DefaultSearchTimeout,
		Clock:         timeutil.RealClock{},
		Logger:        logger.Nop(),
	}
}

type session struct {
	mu       sync.Mutex
	view     *ViewState
	lastSeen time.Time
}

type sessionService struct {
	source    domain.RouteSource
	bookings  domain.BookingRepository
	publisher domain.BookingPublisher

	ttl           time.Duration
	searchTimeout time.Duration
	clock         timeutil.Clock
	builder       *OfferBuilder
	refs          idgen.Generator
	log           *logger.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// NewSessionService creates a SessionService. publisher may be nil when no one
// observes bookings. If config is nil, defaults are used.
func NewSessionService(
	source domain.RouteSource,
	bookings domain.BookingRepository,
	publisher domain.BookingPublisher,
	config *SessionConfig,
) (SessionService, error) {
	if source == nil {
		return nil, errors.New("route source is required")
	}
	if bookings == nil {
		return nil, errors.New("booking repository is required")
	}

	cfg := DefaultSessionConfig()
	if config != nil {
		if config.SessionTTL > 0 {
			cfg.SessionTTL = config.SessionTTL
		}
		if config.SearchTimeout > 0 {
			cfg.SearchTimeout = config.SearchTimeout
		}
		if config.Clock != nil {
			cfg.Clock = config.Clock
		}
		if config.Logger != nil {
			cfg.Logger = config.Logger
		}
		cfg.Builder = config.Builder
		cfg.References = config.References
	}
	if cfg.Builder == nil {
		cfg.Builder = NewOfferBuilder(nil)
	}
	if cfg.References == nil {
		refs, err := idgen.NewSnowflakeGenerator(0)
		if err != nil {
			return nil, err
		}
		cfg.References = refs
	}

	return &sessionService{
		source:        source,
		bookings:      bookings,
		publisher:     publisher,
		ttl:           cfg.SessionTTL,
		searchTimeout: cfg.SearchTimeout,
		clock:         cfg.Clock,
		builder:       cfg.Builder,
		refs:          cfg.References,
		log:           cfg.Logger,
		sessions:      make(map[string]*session),
	}, nil
}

func (s *sessionService) CreateSession(_ context.Context) (domain.View, error) {
	id := uuid.NewString()
	sess := &session{
		view:     NewViewState(s.builder),
		lastSeen: s.clock.Now(),
	}

	s.mu.Lock()
	s.sessions[id] = sess
	active := len(s.sessions)
	s.mu.Unlock()

	metrics.ActiveSessions.Set(float64(active))
	s.log.Debug().Str("session_id", id).Msg("Session created")

	return s.snapshot(id, sess), nil
}

func (s *sessionService) View(_ context.Context, sessionID string) (domain.View, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return domain.View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.viewLocked(sessionID, sess), nil
}

func (s *sessionService) Search(ctx context.Context, sessionID string, query domain.RouteQuery) (domain.View, error) {
	query = query.Normalize()
	if err := query.Validate(); err != nil {
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return domain.View{}, err
	}

	sess, err := s.session(sessionID)
	if err != nil {
		return domain.View{}, err
	}

	sess.mu.Lock()
	seq := sess.view.BeginQuery()
	sess.mu.Unlock()

	log := s.log.WithSession(sessionID)
	start := time.Now()

	fetchCtx, cancel := context.WithTimeout(ctx, s.searchTimeout)
	defer cancel()

	itineraries, err := s.source.FetchRoutes(fetchCtx, query)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeError).Inc()
		log.Warn().Err(err).
			Str("from", query.From).
			Str("to", query.To).
			Msg("Route fetch failed")
		return domain.View{}, fmt.Errorf("search %s to %s: %w", query.From, query.To, err)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.view.ApplyResult(seq, query, itineraries); err != nil {
		if domain.IsStaleResult(err) {
			metrics.SearchesTotal.WithLabelValues(metrics.OutcomeStale).Inc()
			log.Info().Uint64("seq", seq).Msg("Discarded stale route result")
		} else {
			metrics.SearchesTotal.WithLabelValues(metrics.OutcomeError).Inc()
			log.Error().Err(err).Msg("Failed to build offers")
		}
		return domain.View{}, err
	}

	metrics.SearchesTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.OffersPerSearch.Observe(float64(len(itineraries)))
	log.Info().
		Str("from", query.From).
		Str("to", query.To).
		Int("offers", len(itineraries)).
		Dur("duration", time.Since(start)).
		Msg("Route search completed")

	return s.viewLocked(sessionID, sess), nil
}

func (s *sessionService) Sort(_ context.Context, sessionID string, field domain.SortField) (domain.View, error) {
	return s.mutate(sessionID, func(v *ViewState) error {
		return v.SortBy(field)
	})
}

func (s *sessionService) Filter(_ context.Context, sessionID string, carrier string) (domain.View, error) {
	return s.mutate(sessionID, func(v *ViewState) error {
		v.FilterByCarrier(carrier)
		return nil
	})
}

func (s *sessionService) ToggleExpanded(_ context.Context, sessionID string, index int) (domain.View, error) {
	return s.mutate(sessionID, func(v *ViewState) error {
		return v.ToggleExpanded(index)
	})
}

func (s *sessionService) OfferDetail(_ context.Context, sessionID string, index int) (domain.OfferDetail, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return domain.OfferDetail{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view.Detail(index)
}

func (s *sessionService) Book(ctx context.Context, sessionID string, index int) (domain.Booking, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return domain.Booking{}, err
	}

	sess.mu.Lock()
	booking, err := sess.view.Confirm(index)
	sess.mu.Unlock()
	if err != nil {
		metrics.BookingsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return domain.Booking{}, err
	}

	booking.Reference = s.refs.NextReference()
	booking.ConfirmedAt = s.clock.Now().UTC()

	log := s.log.WithSession(sessionID)

	if err := s.bookings.Save(ctx, booking); err != nil {
		metrics.BookingsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		log.Error().Err(err).Str("reference", booking.Reference).Msg("Failed to store booking")
		return domain.Booking{}, fmt.Errorf("store booking: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishBooking(ctx, booking); err != nil {
			log.Warn().Err(err).Str("reference", booking.Reference).Msg("Failed to broadcast booking")
		}
	}

	metrics.BookingsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	log.Info().
		Str("reference", booking.Reference).
		Str("offer_id", booking.Overview.ID).
		Str("carrier", booking.Overview.Carrier).
		Str("total_price", booking.Overview.TotalPrice.StringFixed(domain.PricePrecision)).
		Msg("Booking confirmed")

	return booking, nil
}

func (s *sessionService) CurrentBooking(ctx context.Context) (domain.Booking, error) {
	return s.bookings.Current(ctx)
}

func (s *sessionService) Routes(ctx context.Context, query domain.RouteQuery) ([]domain.Itinerary, error) {
	query = query.Normalize()
	if err := query.Validate(); err != nil {
		return nil, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.searchTimeout)
	defer cancel()

	itineraries, err := s.source.FetchRoutes(fetchCtx, query)
	if err != nil {
		return nil, fmt.Errorf("routes %s to %s: %w", query.From, query.To, err)
	}
	return itineraries, nil
}

func (s *sessionService) Planets(ctx context.Context) ([]string, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.searchTimeout)
	defer cancel()
	return s.source.FetchPlanets(fetchCtx)
}

func (s *sessionService) Companies(ctx context.Context) ([]string, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.searchTimeout)
	defer cancel()
	return s.source.FetchCompanies(fetchCtx)
}

func (s *sessionService) Sweep() int {
	now := s.clock.Now()

	s.mu.Lock()
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	active := len(s.sessions)
	s.mu.Unlock()

	metrics.ActiveSessions.Set(float64(active))
	if removed > 0 {
		s.log.Debug().Int("removed", removed).Int("active", active).Msg("Expired sessions swept")
	}
	return removed
}

// session looks up a live session and refreshes its idle timer.
func (s *sessionService) session(id string) (*session, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	if s.expired(sess, now) {
		delete(s.sessions, id)
		metrics.ActiveSessions.Set(float64(len(s.sessions)))
		return nil, fmt.Errorf("%w: %s expired", domain.ErrSessionNotFound, id)
	}
	sess.lastSeen = now
	return sess, nil
}

// expired reads lastSeen, which is only written under s.mu.
func (s *sessionService) expired(sess *session, now time.Time) bool {
	return now.Sub(sess.lastSeen) > s.ttl
}

func (s *sessionService) mutate(sessionID string, fn func(*ViewState) error) (domain.View, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return domain.View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := fn(sess.view); err != nil {
		return domain.View{}, err
	}
	return s.viewLocked(sessionID, sess), nil
}

func (s *sessionService) snapshot(id string, sess *session) domain.View {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.viewLocked(id, sess)
}

func (s *sessionService) viewLocked(id string, sess *session) domain.View {
	view := sess.view.Snapshot()
	view.SessionID = id
	return view
}
