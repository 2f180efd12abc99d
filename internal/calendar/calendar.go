// Package calendar decides which (date, time) slots may be offered for booking.
// Nothing here looks at existing reservations.
package calendar

import (
	"fmt"
	"time"

	"consultdesk/internal/domain"
)

const (
	FirstSlotMinute   = 9 * 60
	LastSlotMinute    = 20*60 + 30
	SlotStep          = 30 * time.Minute
	DefaultWindowDays = 60
)

// ErrNotOfferable marks a well-formed slot that the calendar refuses.
var ErrNotOfferable = fmt.Errorf("%w: slot not offerable", domain.ErrInvalidInput)

// EnumerateSlots returns the fixed daily grid, 09:00 through 20:30 every 30 minutes.
// The grid does not depend on the date.
func EnumerateSlots(_ time.Time) []string {
	step := int(SlotStep / time.Minute)
	out := make([]string, 0, (LastSlotMinute-FirstSlotMinute)/step+1)
	for m := FirstSlotMinute; m <= LastSlotMinute; m += step {
		out = append(out, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return out
}

func IsBusinessDay(date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// IsWithinBookingWindow reports today <= date <= today+windowDays, compared as civil dates.
func IsWithinBookingWindow(date, today time.Time, windowDays int) bool {
	d := civil(date)
	t := civil(today)
	if d.Before(t) {
		return false
	}
	return !d.After(t.AddDate(0, 0, windowDays))
}

// IsSlotTime reports whether v is one of the grid values.
func IsSlotTime(v string) bool {
	t, err := time.Parse(domain.TimeLayout, v)
	if err != nil || t.Format(domain.TimeLayout) != v {
		return false
	}
	m := t.Hour()*60 + t.Minute()
	if m < FirstSlotMinute || m > LastSlotMinute {
		return false
	}
	return (m-FirstSlotMinute)%int(SlotStep/time.Minute) == 0
}

func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Calendar binds the pure rules to the business time zone and a clock.
type Calendar struct {
	loc        *time.Location
	windowDays int
	now        func() time.Time
}

type Option func(*Calendar)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Calendar) { c.now = now }
}

func New(loc *time.Location, windowDays int, opts ...Option) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	c := &Calendar{loc: loc, windowDays: windowDays, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Calendar) Location() *time.Location { return c.loc }

func (c *Calendar) WindowDays() int { return c.windowDays }

// Today is the current civil date in the business time zone.
func (c *Calendar) Today() time.Time {
	n := c.now().In(c.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, c.loc)
}

// ParseDate reads a YYYY-MM-DD value as a date in the business time zone.
func (c *Calendar) ParseDate(v string) (time.Time, error) {
	d, err := time.ParseInLocation(domain.DateLayout, v, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return d, nil
}

// IsOfferable is IsBusinessDay and IsWithinBookingWindow against Today.
func (c *Calendar) IsOfferable(date time.Time) bool {
	return IsBusinessDay(date) && IsWithinBookingWindow(date, c.Today(), c.windowDays)
}

// CheckSlot validates a requested (date, time) pair. It returns the parsed date
// or an error wrapping domain.ErrInvalidInput.
func (c *Calendar) CheckSlot(dateStr, timeStr string) (time.Time, error) {
	d, err := c.ParseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	if !IsSlotTime(timeStr) {
		return time.Time{}, fmt.Errorf("%w: %q is not a bookable time", domain.ErrInvalidInput, timeStr)
	}
	if !IsBusinessDay(d) {
		return time.Time{}, fmt.Errorf("%w: %s is not a business day", ErrNotOfferable, dateStr)
	}
	if !IsWithinBookingWindow(d, c.Today(), c.windowDays) {
		return time.Time{}, fmt.Errorf("%w: %s is outside the booking window", ErrNotOfferable, dateStr)
	}
	return d, nil
}

// OfferableDates lists the business days from today to the end of the window.
func (c *Calendar) OfferableDates() []time.Time {
	today := c.Today()
	out := make([]time.Time, 0, c.windowDays)
	for i := 0; i <= c.windowDays; i++ {
		d := today.AddDate(0, 0, i)
		if IsBusinessDay(d) {
			out = append(out, d)
		}
	}
	return out
}
