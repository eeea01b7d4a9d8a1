package dateutil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseStringRoundTrip(t *testing.T) {
	d, err := Parse("2024-01-03")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := d.String(); got != "2024-01-03" {
		t.Fatalf("String()=%q, want 2024-01-03", got)
	}
	if _, err := Parse("03-01-2024"); err == nil {
		t.Fatalf("expected error for wrong format")
	}
}

func TestWeekdayOrdinalsMondayFirst(t *testing.T) {
	// 2024-01-01 is a Monday.
	for i := 0; i < 7; i++ {
		d := MustParse("2024-01-01").AddDays(i)
		if got := d.Weekday(); got != Weekday(i) {
			t.Fatalf("%s Weekday()=%d, want %d", d, got, i)
		}
	}
	if got := MustParse("2024-01-07").Weekday().Name(); got != "Minggu" {
		t.Fatalf("Sunday name=%q, want Minggu", got)
	}
	names := DayNames()
	if names[0] != "Senin" || names[6] != "Minggu" {
		t.Fatalf("day order wrong: %v", names)
	}
}

func TestWeekStartMondayAnchored(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2024-01-01", "2024-01-01"}, // Monday maps to itself
		{"2024-01-03", "2024-01-01"}, // Wednesday
		{"2024-01-06", "2024-01-01"}, // Saturday
		{"2024-01-07", "2024-01-01"}, // Sunday belongs to the previous Monday
		{"2024-01-08", "2024-01-08"}, // next Monday starts a new week
	}
	for _, c := range cases {
		if got := MustParse(c.in).WeekStart().String(); got != c.want {
			t.Fatalf("WeekStart(%s)=%s, want %s", c.in, got, c.want)
		}
	}
	if got := MustParse("2024-01-03").WeekEnd().String(); got != "2024-01-07" {
		t.Fatalf("WeekEnd=%s, want 2024-01-07", got)
	}
}

func TestDaysUntilNeverNegative(t *testing.T) {
	today := MustParse("2024-01-10")
	if got := DaysUntil(today, MustParse("2024-01-15")); got != 5 {
		t.Fatalf("DaysUntil future=%d, want 5", got)
	}
	if got := DaysUntil(today, today); got != 0 {
		t.Fatalf("DaysUntil today=%d, want 0", got)
	}
	if got := DaysUntil(today, MustParse("2024-01-01")); got != 0 {
		t.Fatalf("DaysUntil past=%d, want 0", got)
	}
}

func TestIsOverdueStrictlyBefore(t *testing.T) {
	today := MustParse("2024-01-10")
	if IsOverdue(today, today) {
		t.Fatalf("a deadline equal to today must not be overdue")
	}
	if !IsOverdue(today, MustParse("2024-01-09")) {
		t.Fatalf("yesterday's deadline must be overdue")
	}
	if IsOverdue(today, MustParse("2024-01-11")) {
		t.Fatalf("tomorrow's deadline must not be overdue")
	}
}

func TestFromTimeTruncatesClock(t *testing.T) {
	late := time.Date(2024, 1, 3, 23, 59, 59, 0, time.Local)
	if got := FromTime(late).String(); got != "2024-01-03" {
		t.Fatalf("FromTime=%s, want 2024-01-03", got)
	}
}

func TestWeekLabel(t *testing.T) {
	if got := WeekLabel(MustParse("2024-01-01")); got != "Minggu ke-1, Jan 2024" {
		t.Fatalf("WeekLabel=%q", got)
	}
	if got := WeekLabel(MustParse("2024-05-20")); got != "Minggu ke-3, Mei 2024" {
		t.Fatalf("WeekLabel=%q", got)
	}
}

func TestMonthName(t *testing.T) {
	if got := MonthName(MustParse("2024-08-15")); got != "Agustus 2024" {
		t.Fatalf("MonthName=%q", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type wrap struct {
		On Date `json:"on"`
	}
	data, err := json.Marshal(wrap{On: MustParse("2024-01-03")})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"on":"2024-01-03"}` {
		t.Fatalf("marshal=%s", data)
	}

	var w wrap
	if err := json.Unmarshal([]byte(`{"on":"2024-02-29"}`), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if w.On.String() != "2024-02-29" {
		t.Fatalf("unmarshal got %s", w.On)
	}

	// The zero date travels as "" and comes back zero.
	data, _ = json.Marshal(wrap{})
	var z wrap
	if err := json.Unmarshal(data, &z); err != nil {
		t.Fatalf("unmarshal zero: %v", err)
	}
	if !z.On.IsZero() {
		t.Fatalf("expected zero date, got %s", z.On)
	}
}
