package dateutil

import (
	"encoding/json"
	"fmt"
	"time"
)

// Format is the canonical YYYY-MM-DD representation used everywhere a
// date is stored or displayed.
const Format = "2006-01-02"

// Date is a calendar day with no time-of-day component. The zero value
// is "no date" and is distinct from any real day.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// FromTime truncates t to its local calendar day.
func FromTime(t time.Time) Date {
	return New(t.Date())
}

// Today returns the current local calendar day.
func Today() Date {
	return FromTime(time.Now())
}

// time returns the canonical midnight-UTC instant for the day. All
// comparisons go through here, so hour-of-day drift can never leak in.
func (d Date) time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }
func (d Date) After(x Date) bool  { return d.time().After(x.time()) }
func (d Date) AddDays(n int) Date { return New(d.y, d.m, d.d+n) }
func (d Date) Year() int          { return d.y }
func (d Date) Month() time.Month  { return d.m }
func (d Date) Day() int           { return d.d }
func (d Date) String() string     { return d.time().Format(Format) }

// SameMonth reports whether both dates fall in the same calendar month.
func (d Date) SameMonth(x Date) bool {
	return d.y == x.y && d.m == x.m
}

// Weekday returns the Monday-first ordinal of the day. Sunday is last
// (ordinal 6), not first as in time.Weekday.
func (d Date) Weekday() Weekday {
	wd := d.time().Weekday()
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(int(wd) - 1)
}

// WeekStart returns the Monday of the week containing d. A Sunday
// belongs to the week of the previous Monday.
func (d Date) WeekStart() Date {
	return d.AddDays(-int(d.Weekday()))
}

// WeekEnd returns the Sunday closing the week containing d.
func (d Date) WeekEnd() Date {
	return d.WeekStart().AddDays(6)
}

// DaysUntil returns the whole days from today until deadline, clamped
// at zero. Overdue is reported separately via IsOverdue.
func DaysUntil(today, deadline Date) int {
	diff := int(deadline.time().Sub(today.time()).Hours() / 24)
	if diff < 0 {
		return 0
	}
	return diff
}

// IsOverdue reports whether deadline is strictly before today. A
// deadline equal to today is not overdue.
func IsOverdue(today, deadline Date) bool {
	return deadline.Before(today)
}

// Parse reads a Date from its YYYY-MM-DD form.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Format, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (want %s): %w", s, Format, err)
	}
	return New(t.Date()), nil
}

// MustParse is Parse for literals in tests and defaults.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Dates travel as plain strings inside the persisted document, with ""
// standing for the zero date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
