package availability

import (
	"iter"
	"time"
)

// Candidates yields the raw candidate start times on date implied by the
// policy's window for that weekday, spaced granularity apart from the window
// start, while the whole session still fits before close. A candidate whose
// end would pass the close time is never yielded, even when its start is
// inside the window. Closed days yield nothing.
//
// The sequence is finite and restartable; ranging over it twice gives the
// same starts. Booking conflicts are not considered here.
func Candidates(date time.Time, p Policy, granularity, duration time.Duration) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if granularity <= 0 || duration <= 0 {
			return
		}
		w, open := p.DayWindowFor(date.Weekday())
		if !open {
			return
		}
		start := w.Start.On(date)
		end := w.End.On(date)
		for t := start; !t.Add(duration).After(end); t = t.Add(granularity) {
			if !yield(t) {
				return
			}
		}
	}
}
