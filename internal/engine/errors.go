package engine

import (
	"fmt"

	"github.com/msultanalhakim/productivity-dashboard/internal/dateutil"
)

// DayLockedError indicates an edit aimed at a weekday that already
// passed within the current week. The state is left unchanged.
type DayLockedError struct {
	Day   dateutil.Weekday
	Today dateutil.Weekday
}

func (e DayLockedError) Error() string {
	return fmt.Sprintf("%s sudah lewat, tidak bisa diubah (hari ini %s)", e.Day.Name(), e.Today.Name())
}

// NotTodayError indicates a note aimed at any weekday other than the
// current one. Notes attach to today's date only.
type NotTodayError struct {
	Day   string
	Today dateutil.Weekday
}

func (e NotTodayError) Error() string {
	return fmt.Sprintf("catatan hanya untuk hari ini (%s), bukan %s", e.Today.Name(), e.Day)
}

// NotFoundError reports a missing entity id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}
