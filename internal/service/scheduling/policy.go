package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/arnicahealth/arnica_backend/internal/repo"
	"github.com/arnicahealth/arnica_backend/internal/schema"
	"github.com/arnicahealth/arnica_backend/pkg/availability"
)

// weekdayKey is how the stored weekly map keys weekdays: "monday" … "sunday".
func weekdayKey(d time.Weekday) string {
	return strings.ToLower(d.String())
}

var weekdayByKey = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// toPolicy converts a stored policy row into the in-memory form the slot
// math operates on. The "HH:MM" strings are only ever parsed here, at the
// deserialization boundary.
func toPolicy(row *repo.WorkingHoursPolicy) (availability.Policy, error) {
	p := availability.Policy{
		Week:            make(map[time.Weekday]availability.DayWindow, len(row.Weekly)),
		BufferMinutes:   row.BufferMinutes,
		AllowBackToBack: row.AllowBackToBack,
	}
	if row.MaxDailyAppointments != nil {
		p.MaxDailyAppointments = *row.MaxDailyAppointments
	}

	for key, span := range row.Weekly {
		wd, ok := weekdayByKey[strings.ToLower(key)]
		if !ok {
			return availability.Policy{}, fmt.Errorf("%w: unknown weekday %q", ErrInvalidWorkingHours, key)
		}
		start, err := availability.ParseTimeOfDay(span.Start)
		if err != nil {
			return availability.Policy{}, fmt.Errorf("%w: %s start: %v", ErrInvalidWorkingHours, key, err)
		}
		end, err := availability.ParseTimeOfDay(span.End)
		if err != nil {
			return availability.Policy{}, fmt.Errorf("%w: %s end: %v", ErrInvalidWorkingHours, key, err)
		}
		p.Week[wd] = availability.DayWindow{Start: start, End: end}
	}

	if err := p.Validate(); err != nil {
		return availability.Policy{}, fmt.Errorf("%w: %v", ErrInvalidWorkingHours, err)
	}
	return p, nil
}

// validateWeekly checks an incoming weekly map without touching the DB,
// so a bad PUT is rejected before anything is written.
func validateWeekly(weekly map[string]schema.DaySpan, bufferMinutes int) error {
	row := &repo.WorkingHoursPolicy{
		Weekly:          weekly,
		BufferMinutes:   bufferMinutes,
		AllowBackToBack: true,
	}
	_, err := toPolicy(row)
	return err
}

// defaultWeekly is what a therapist gets before they have saved a schedule:
// weekdays nine to five, weekend closed.
func defaultWeekly() map[string]schema.DaySpan {
	span := schema.DaySpan{Start: "09:00", End: "17:00"}
	return map[string]schema.DaySpan{
		"monday":    span,
		"tuesday":   span,
		"wednesday": span,
		"thursday":  span,
		"friday":    span,
	}
}
