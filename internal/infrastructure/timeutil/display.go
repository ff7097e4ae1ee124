package timeutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/goodsign/monday"
)

// ClockLayout renders a short month, day and 24-hour time ("Mar 5, 14:30").
const ClockLayout = "Jan 2, 15:04"

// Default display settings.
const (
	DefaultLocale   = string(monday.LocaleEnUS)
	DefaultTimezone = "UTC"
)

// locationCache stores loaded timezone locations.
var locationCache sync.Map

// GetLocation returns a cached timezone location.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// IsSupportedLocale reports whether monday can translate month names for locale.
func IsSupportedLocale(locale string) bool {
	for _, l := range monday.ListLocales() {
		if string(l) == locale {
			return true
		}
	}
	return false
}

// ClockFormatter renders instants as localized labels in a fixed display timezone.
// Output is deterministic for a given locale and timezone.
type ClockFormatter struct {
	locale monday.Locale
	loc    *time.Location
}

// NewClockFormatter creates a formatter for the given locale (e.g. "en_US")
// and IANA timezone (e.g. "UTC").
func NewClockFormatter(locale, timezone string) (*ClockFormatter, error) {
	if !IsSupportedLocale(locale) {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}
	loc, err := GetLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &ClockFormatter{locale: monday.Locale(locale), loc: loc}, nil
}

// DefaultClockFormatter returns an en_US formatter in UTC.
func DefaultClockFormatter() *ClockFormatter {
	return &ClockFormatter{locale: monday.LocaleEnUS, loc: time.UTC}
}

// FormatClock renders t as "Mar 5, 14:30" in the formatter's locale and timezone.
func (f *ClockFormatter) FormatClock(t time.Time) string {
	return monday.Format(t.In(f.loc), ClockLayout, f.locale)
}

// FormatTimeRange renders "<start> - <end>".
func (f *ClockFormatter) FormatTimeRange(start, end time.Time) string {
	return f.FormatClock(start) + " - " + f.FormatClock(end)
}
