// Package availability computes bookable time slots for a therapist from a
// weekly working-hours policy and a set of existing bookings. It is pure:
// no I/O, no clocks, no storage. Callers load the inputs, the package does
// the interval math.
package availability

import (
	"fmt"
	"time"
)

// DefaultGranularity is the spacing between candidate slot starts.
const DefaultGranularity = 30 * time.Minute

// TimeOfDay is a wall-clock time within a single day, minute resolution.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (24-hour).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	t := TimeOfDay{Hour: h, Minute: m}
	if !t.valid() {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", s)
	}
	return t, nil
}

func (t TimeOfDay) valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// MinutesFromMidnight returns the offset of t from 00:00.
func (t TimeOfDay) MinutesFromMidnight() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// On anchors t on the calendar date of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// DayWindow is the open/close interval for one weekday. Same-day only:
// windows crossing midnight are rejected at validation, not wrapped.
type DayWindow struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Policy is a therapist's weekly schedule plus buffer rules. A weekday absent
// from Week means the practice is closed that day.
type Policy struct {
	Week map[time.Weekday]DayWindow

	// BufferMinutes is the minimum gap required before and after every
	// existing booking. Ignored entirely when AllowBackToBack is true.
	BufferMinutes   int
	AllowBackToBack bool

	// MaxDailyAppointments caps bookings per day when > 0. Stored and
	// reported but not enforced by slot computation; see resolver docs.
	MaxDailyAppointments int
}

// Validate rejects malformed policies before any slot math runs.
func (p Policy) Validate() error {
	if p.BufferMinutes < 0 {
		return fmt.Errorf("%w: buffer minutes must be non-negative", ErrInvalidPolicy)
	}
	if p.MaxDailyAppointments < 0 {
		return fmt.Errorf("%w: max daily appointments must be non-negative", ErrInvalidPolicy)
	}
	for day, w := range p.Week {
		if !w.Start.valid() || !w.End.valid() {
			return fmt.Errorf("%w: %s has an out-of-range time", ErrInvalidPolicy, day)
		}
		if w.Start.MinutesFromMidnight() >= w.End.MinutesFromMidnight() {
			return fmt.Errorf("%w: %s start %s is not before end %s", ErrInvalidPolicy, day, w.Start, w.End)
		}
	}
	return nil
}

// DayWindowFor returns the configured window for a weekday, if any.
func (p Policy) DayWindowFor(day time.Weekday) (DayWindow, bool) {
	w, ok := p.Week[day]
	return w, ok
}
