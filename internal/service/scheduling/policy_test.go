package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/arnicahealth/arnica_backend/internal/repo"
	"github.com/arnicahealth/arnica_backend/internal/schema"
)

func TestWeekdayKey(t *testing.T) {
	for key, wd := range weekdayByKey {
		if got := weekdayKey(wd); got != key {
			t.Errorf("weekdayKey(%v) = %q, want %q", wd, got, key)
		}
	}
}

func TestToPolicy(t *testing.T) {
	row := &repo.WorkingHoursPolicy{
		Weekly: map[string]schema.DaySpan{
			"monday":  {Start: "09:00", End: "17:00"},
			"tuesday": {Start: "10:30", End: "14:00"},
		},
		BufferMinutes:   15,
		AllowBackToBack: false,
	}

	p, err := toPolicy(row)
	if err != nil {
		t.Fatalf("toPolicy() failed: %v", err)
	}

	mon, open := p.DayWindowFor(time.Monday)
	if !open {
		t.Fatal("monday should be open")
	}
	if mon.Start.String() != "09:00" || mon.End.String() != "17:00" {
		t.Errorf("monday window = %s-%s, want 09:00-17:00", mon.Start, mon.End)
	}
	if _, open := p.DayWindowFor(time.Sunday); open {
		t.Error("absent weekday should be closed")
	}
	if p.BufferMinutes != 15 || p.AllowBackToBack {
		t.Errorf("buffer settings not carried over: %+v", p)
	}
}

func TestToPolicy_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		weekly map[string]schema.DaySpan
	}{
		{
			name:   "unknown weekday",
			weekly: map[string]schema.DaySpan{"moonday": {Start: "09:00", End: "17:00"}},
		},
		{
			name:   "malformed time",
			weekly: map[string]schema.DaySpan{"monday": {Start: "9am", End: "17:00"}},
		},
		{
			name:   "start at end",
			weekly: map[string]schema.DaySpan{"monday": {Start: "17:00", End: "17:00"}},
		},
		{
			name:   "start after end",
			weekly: map[string]schema.DaySpan{"monday": {Start: "18:00", End: "09:00"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWeekly(tt.weekly, 0)
			if err == nil {
				t.Fatal("validateWeekly() = nil, want error")
			}
			if !errors.Is(err, ErrInvalidWorkingHours) {
				t.Errorf("error = %v, want ErrInvalidWorkingHours", err)
			}
		})
	}
}

func TestDefaultWeekly(t *testing.T) {
	if err := validateWeekly(defaultWeekly(), 0); err != nil {
		t.Fatalf("default schedule must validate: %v", err)
	}

	weekly := defaultWeekly()
	for _, closed := range []string{"saturday", "sunday"} {
		if _, ok := weekly[closed]; ok {
			t.Errorf("%s should be absent (closed) in the default schedule", closed)
		}
	}
	if weekly["monday"].Start != "09:00" || weekly["monday"].End != "17:00" {
		t.Errorf("monday default = %+v, want 09:00-17:00", weekly["monday"])
	}
}
