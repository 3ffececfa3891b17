package availability

import (
	"testing"
	"time"
)

// monday is an arbitrary Monday used across tests.
var monday = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

func weekdayPolicy(buffer int, backToBack bool) Policy {
	return Policy{
		Week: map[time.Weekday]DayWindow{
			time.Monday: {Start: TimeOfDay{Hour: 9}, End: TimeOfDay{Hour: 17}},
		},
		BufferMinutes:   buffer,
		AllowBackToBack: backToBack,
	}
}

func at(day time.Time, h, m int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
}

func starts(slots []Slot) []time.Time {
	out := make([]time.Time, len(slots))
	for i, s := range slots {
		out[i] = s.Start
	}
	return out
}

func TestOpenSlotsEmptySchedule(t *testing.T) {
	p := weekdayPolicy(15, false)

	slots := OpenSlots(monday, p, nil, DefaultGranularity, 60*time.Minute)

	// 09:00 .. 16:00 at 30-minute spacing: every start whose +60m end <= 17:00.
	if len(slots) != 15 {
		t.Fatalf("expected 15 slots, got %d", len(slots))
	}
	if !slots[0].Start.Equal(at(monday, 9, 0)) {
		t.Errorf("first slot = %v, want 09:00", slots[0].Start)
	}
	if !slots[14].Start.Equal(at(monday, 16, 0)) {
		t.Errorf("last slot = %v, want 16:00", slots[14].Start)
	}
	for i := 1; i < len(slots); i++ {
		if got := slots[i].Start.Sub(slots[i-1].Start); got != 30*time.Minute {
			t.Errorf("spacing between slot %d and %d = %v, want 30m", i-1, i, got)
		}
	}
}

func TestOpenSlotsBufferedConflict(t *testing.T) {
	p := weekdayPolicy(15, false)
	busy := []Booking{{Start: at(monday, 10, 0), Duration: time.Hour}}

	slots := OpenSlots(monday, p, busy, DefaultGranularity, 60*time.Minute)

	// Buffered busy window is 09:45-11:15. Candidates from 09:00 through
	// 11:00 all overlap it; 11:30 onward are clear.
	blocked := map[string]bool{}
	for _, hm := range [][2]int{{9, 0}, {9, 30}, {10, 0}, {10, 30}, {11, 0}} {
		blocked[at(monday, hm[0], hm[1]).String()] = true
	}
	for _, s := range slots {
		if blocked[s.Start.String()] {
			t.Errorf("slot %v overlaps the buffered busy window but was returned", s.Start)
		}
	}
	if len(slots) == 0 || !slots[0].Start.Equal(at(monday, 11, 30)) {
		t.Fatalf("first open slot = %v, want 11:30", starts(slots))
	}
}

func TestOpenSlotsBoundaryTouchIsFree(t *testing.T) {
	// Busy window after expansion is exactly 10:00-11:30 (appointment
	// 10:15-11:15, 15m buffer). A 09:00 candidate ends exactly at the
	// buffered start; half-open intervals, so touching does not conflict.
	p := weekdayPolicy(15, false)
	busy := []Booking{{Start: at(monday, 10, 15), Duration: time.Hour}}

	slots := OpenSlots(monday, p, busy, DefaultGranularity, 60*time.Minute)

	if len(slots) == 0 || !slots[0].Start.Equal(at(monday, 9, 0)) {
		t.Fatalf("expected 09:00 to be retained, got first = %v", starts(slots))
	}
	if !slots[1].Start.Equal(at(monday, 11, 30)) {
		t.Errorf("second open slot = %v, want 11:30 (starts exactly at buffered end)", slots[1].Start)
	}
}

func TestBackToBackToggle(t *testing.T) {
	busy := []Booking{{Start: at(monday, 10, 0), Duration: time.Hour}}
	adjacent := at(monday, 9, 0) // ends 10:00, zero gap before the booking

	holds := func(slots []Slot, start time.Time) bool {
		for _, s := range slots {
			if s.Start.Equal(start) {
				return true
			}
		}
		return false
	}

	withB2B := OpenSlots(monday, weekdayPolicy(30, true), busy, DefaultGranularity, 60*time.Minute)
	if !holds(withB2B, adjacent) {
		t.Error("allow_back_to_back=true: adjacent slot should be returned, buffer ignored")
	}

	withoutB2B := OpenSlots(monday, weekdayPolicy(30, false), busy, DefaultGranularity, 60*time.Minute)
	if holds(withoutB2B, adjacent) {
		t.Error("allow_back_to_back=false with 30m buffer: adjacent slot must not be returned")
	}
}

func TestCancelledBookingNeverBlocks(t *testing.T) {
	p := weekdayPolicy(15, false)
	busy := []Booking{{Start: at(monday, 10, 0), Duration: time.Hour, Cancelled: true}}

	slots := OpenSlots(monday, p, busy, DefaultGranularity, 60*time.Minute)
	if len(slots) != 15 {
		t.Fatalf("cancelled booking blocked slots: got %d, want 15", len(slots))
	}
}

func TestDurationShrinksTail(t *testing.T) {
	p := weekdayPolicy(15, false)

	slots := OpenSlots(monday, p, nil, DefaultGranularity, 90*time.Minute)

	last := slots[len(slots)-1]
	if !last.Start.Equal(at(monday, 15, 30)) {
		t.Errorf("last 90m start = %v, want 15:30 (16:00 would end past close)", last.Start)
	}
	if last.End().After(at(monday, 17, 0)) {
		t.Errorf("slot end %v exceeds close time", last.End())
	}
}

func TestClosedDayYieldsNothing(t *testing.T) {
	p := weekdayPolicy(0, false)
	sunday := monday.AddDate(0, 0, -1)

	if got := OpenSlots(sunday, p, nil, DefaultGranularity, time.Hour); len(got) != 0 {
		t.Fatalf("closed day returned %d slots", len(got))
	}
	if DateOpen(sunday, p, nil, DefaultGranularity, time.Hour) {
		t.Error("closed day reported open")
	}
}

func TestDateOpenConsistentWithOpenSlots(t *testing.T) {
	p := weekdayPolicy(15, false)
	busy := []Booking{
		{Start: at(monday, 9, 0), Duration: 4 * time.Hour},
		{Start: at(monday, 13, 30), Duration: 3*time.Hour + 30*time.Minute},
	}

	for _, dur := range []time.Duration{30 * time.Minute, time.Hour, 2 * time.Hour, 9 * time.Hour} {
		open := DateOpen(monday, p, busy, DefaultGranularity, dur)
		n := len(OpenSlots(monday, p, busy, DefaultGranularity, dur))
		if open != (n > 0) {
			t.Errorf("duration %v: DateOpen=%v but OpenSlots len=%d", dur, open, n)
		}
	}
}

func TestOpenSlotsNeverOverlapBusy(t *testing.T) {
	p := weekdayPolicy(15, false)
	busy := []Booking{
		{Start: at(monday, 9, 30), Duration: 45 * time.Minute},
		{Start: at(monday, 12, 0), Duration: time.Hour},
		{Start: at(monday, 15, 15), Duration: 30 * time.Minute},
	}

	for _, s := range OpenSlots(monday, p, busy, DefaultGranularity, time.Hour) {
		for _, b := range busy {
			bs, be := busyWindow(p, b)
			if s.Start.Before(be) && s.End().After(bs) {
				t.Errorf("slot %v-%v overlaps buffered booking %v-%v", s.Start, s.End(), bs, be)
			}
		}
	}
}

func TestCandidatesRestartable(t *testing.T) {
	p := weekdayPolicy(0, false)
	seq := Candidates(monday, p, DefaultGranularity, time.Hour)

	var first, second []time.Time
	for t := range seq {
		first = append(first, t)
	}
	for t := range seq {
		second = append(second, t)
	}

	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("restarted sequence lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("restarted sequence diverges at %d: %v vs %v", i, first[i], second[i])
		}
	}

	// Granularity: every candidate is an integer number of steps from open.
	open := at(monday, 9, 0)
	for _, c := range first {
		if c.Sub(open)%DefaultGranularity != 0 {
			t.Errorf("candidate %v not reachable from %v by 30m steps", c, open)
		}
	}
}

func TestIntervalFree(t *testing.T) {
	p := weekdayPolicy(15, false)
	busy := []Booking{{Start: at(monday, 10, 0), Duration: time.Hour}}

	tests := []struct {
		name  string
		start time.Time
		dur   time.Duration
		want  bool
	}{
		{"well clear", at(monday, 13, 0), time.Hour, true},
		{"inside booking", at(monday, 10, 30), time.Hour, false},
		{"inside leading buffer", at(monday, 9, 0), time.Hour, false},
		{"ends at buffered start", at(monday, 8, 45), time.Hour, true},
		{"starts at buffered end", at(monday, 11, 15), time.Hour, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntervalFree(p, busy, tt.start, tt.dur); got != tt.want {
				t.Errorf("IntervalFree(%v, %v) = %v, want %v", tt.start, tt.dur, got, tt.want)
			}
		})
	}
}

func TestPolicyValidate(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		wantErr bool
	}{
		{
			name:   "valid week",
			policy: weekdayPolicy(15, false),
		},
		{
			name: "start equals end",
			policy: Policy{Week: map[time.Weekday]DayWindow{
				time.Tuesday: {Start: TimeOfDay{Hour: 9}, End: TimeOfDay{Hour: 9}},
			}},
			wantErr: true,
		},
		{
			name: "overnight window",
			policy: Policy{Week: map[time.Weekday]DayWindow{
				time.Friday: {Start: TimeOfDay{Hour: 22}, End: TimeOfDay{Hour: 2}},
			}},
			wantErr: true,
		},
		{
			name:    "negative buffer",
			policy:  Policy{BufferMinutes: -5},
			wantErr: true,
		},
		{
			name: "hour out of range",
			policy: Policy{Week: map[time.Weekday]DayWindow{
				time.Monday: {Start: TimeOfDay{Hour: 9}, End: TimeOfDay{Hour: 24}},
			}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMaxDailyAppointmentsNotEnforced(t *testing.T) {
	// The cap is representable on the policy but slot filtering ignores it.
	p := weekdayPolicy(0, true)
	p.MaxDailyAppointments = 1
	busy := []Booking{{Start: at(monday, 9, 0), Duration: time.Hour}}

	slots := OpenSlots(monday, p, busy, DefaultGranularity, time.Hour)
	if len(slots) == 0 {
		t.Fatal("cap should not gate slot generation; expected open slots")
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "09:00", want: TimeOfDay{Hour: 9}},
		{in: "17:30", want: TimeOfDay{Hour: 17, Minute: 30}},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "late", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeOfDay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAtTimeOfDayKeepsDate(t *testing.T) {
	occurrences := []time.Time{
		at(monday, 9, 0),
		at(monday.AddDate(0, 0, 7), 9, 0),
		at(monday.AddDate(0, 0, 14), 9, 0),
		at(monday.AddDate(0, 0, 21), 9, 0),
	}
	tod := TimeOfDay{Hour: 14}

	for _, occ := range occurrences {
		moved := AtTimeOfDay(occ, tod)
		y1, m1, d1 := occ.Date()
		y2, m2, d2 := moved.Date()
		if y1 != y2 || m1 != m2 || d1 != d2 {
			t.Errorf("date changed: %v -> %v", occ, moved)
		}
		if moved.Hour() != 14 || moved.Minute() != 0 {
			t.Errorf("time of day = %02d:%02d, want 14:00", moved.Hour(), moved.Minute())
		}
	}
}
