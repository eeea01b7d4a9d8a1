package dateutil

import (
	"fmt"
	"time"
)

// Weekday is a Monday-first ordinal (0=Senin .. 6=Minggu). The engine
// compares ordinals; only this file maps them to display names.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

// dayNames are the Indonesian weekday names in Monday-first order, so
// Minggu (Sunday) sits last.
var dayNames = [7]string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu", "Minggu"}

var monthShort = [13]string{"", "Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

var monthLong = [13]string{"", "Januari", "Februari", "Maret", "April", "Mei", "Juni", "Juli", "Agustus", "September", "Oktober", "November", "Desember"}

// Name returns the display name for the weekday.
func (w Weekday) Name() string {
	if !w.IsValid() {
		return ""
	}
	return dayNames[w]
}

// DayNames returns the 7 weekday names in Monday-first order.
func DayNames() []string {
	out := make([]string, len(dayNames))
	copy(out, dayNames[:])
	return out
}

// ParseWeekday maps a display name back to its ordinal.
func ParseWeekday(name string) (Weekday, error) {
	for i, n := range dayNames {
		if n == name {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

// WeekLabel formats the human label for an archived week, e.g.
// "Minggu ke-2, Jan 2024".
func WeekLabel(weekStart Date) string {
	weekNum := (weekStart.Day() + 6) / 7
	return fmt.Sprintf("Minggu ke-%d, %s %d", weekNum, monthShort[weekStart.Month()], weekStart.Year())
}

// MonthName formats a long month label, e.g. "Januari 2024".
func MonthName(d Date) string {
	return fmt.Sprintf("%s %d", monthLong[d.Month()], d.Year())
}

// ShortMonth returns the short month name for m.
func ShortMonth(m time.Month) string {
	return monthShort[m]
}
