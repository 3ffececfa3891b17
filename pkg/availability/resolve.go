package availability

import "time"

// Booking is an existing appointment as the engine sees it: an occupied
// half-open interval [Start, Start+Duration). Cancelled bookings never block
// a slot and are skipped wherever they appear.
type Booking struct {
	Start     time.Time
	Duration  time.Duration
	Cancelled bool
}

func (b Booking) end() time.Time { return b.Start.Add(b.Duration) }

// Slot is one open candidate start of the requested duration. Derived, never
// persisted; recomputed on every query.
type Slot struct {
	Start    time.Time
	Duration time.Duration
}

func (s Slot) End() time.Time { return s.Start.Add(s.Duration) }

// busyWindow returns the blocking interval for b under p. When back-to-back
// booking is off and a buffer is configured, the existing booking's interval
// is expanded outward on both ends. The candidate's own interval is never
// expanded; the buffer protects existing bookings, not requested ones.
func busyWindow(p Policy, b Booking) (time.Time, time.Time) {
	start, end := b.Start, b.end()
	if !p.AllowBackToBack && p.BufferMinutes > 0 {
		pad := time.Duration(p.BufferMinutes) * time.Minute
		start = start.Add(-pad)
		end = end.Add(pad)
	}
	return start, end
}

// conflicts reports whether [candStart, candStart+duration) overlaps any
// non-cancelled booking's busy window. Half-open intervals: a candidate
// ending exactly where a busy window starts (or starting exactly where one
// ends) does not conflict.
func conflicts(p Policy, busy []Booking, candStart time.Time, duration time.Duration) bool {
	candEnd := candStart.Add(duration)
	for _, b := range busy {
		if b.Cancelled {
			continue
		}
		busyStart, busyEnd := busyWindow(p, b)
		if candStart.Before(busyEnd) && candEnd.After(busyStart) {
			return true
		}
	}
	return false
}

// OpenSlots filters the candidate starts for date down to those whose
// interval conflicts with no existing booking, in ascending time order.
// Deterministic for a given input snapshot.
func OpenSlots(date time.Time, p Policy, busy []Booking, granularity, duration time.Duration) []Slot {
	var out []Slot
	for t := range Candidates(date, p, granularity, duration) {
		if conflicts(p, busy, t, duration) {
			continue
		}
		out = append(out, Slot{Start: t, Duration: duration})
	}
	return out
}

// DateOpen reports whether date has at least one open slot. It is defined as
// non-emptiness of OpenSlots so the two can never disagree.
func DateOpen(date time.Time, p Policy, busy []Booking, granularity, duration time.Duration) bool {
	return len(OpenSlots(date, p, busy, granularity, duration)) > 0
}

// IntervalFree re-checks a single requested interval against current
// bookings, applying the same buffer rules as OpenSlots. This is the commit
// and approval gate: a slot judged open earlier may have been taken by a
// concurrent booking, and the engine itself holds no locks, so callers must
// run this against a fresh booking set right before persisting.
func IntervalFree(p Policy, busy []Booking, start time.Time, duration time.Duration) bool {
	return !conflicts(p, busy, start, duration)
}

// AtTimeOfDay moves t to tod on the same calendar date, preserving location.
// Used by series editing: every occurrence keeps its own date and only the
// wall-clock time changes.
func AtTimeOfDay(t time.Time, tod TimeOfDay) time.Time {
	return tod.On(t)
}
