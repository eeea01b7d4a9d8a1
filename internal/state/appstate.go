package state

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/msultanalhakim/productivity-dashboard/internal/dateutil"
)

// DefaultPassword unlocks a freshly created store.
const DefaultPassword = "sultan"

// AppState is the aggregate root. It is stored as one JSON document
// under a single fixed key and always upserted whole (last write wins).
type AppState struct {
	Mood           Mood                  `json:"mood"`
	LastMoodDate   dateutil.Date         `json:"lastMoodDate"`
	Expenses       []Expense             `json:"expenses"`
	DailyTasks     []Task                `json:"dailyTasks"`
	WeeklyGoals    []WeeklyGoal          `json:"weeklyGoals"`
	UnplannedTasks []UnplannedTask       `json:"unplannedTasks"`
	WeeklyNotes    string                `json:"weeklyNotes"`
	LongTermGoals  []LongTermGoal        `json:"longTermGoals"`
	DailyHistory   []TaskHistoryEntry    `json:"dailyHistory"`
	WeeklyHistory  []WeeklyHistoryEntry  `json:"weeklyHistory"`
	WeeklyProgress []WeeklyProgressEntry `json:"weeklyProgress"`
	DailyNotes     []DailyNote           `json:"dailyNotes"`

	// LastDailyReset holds the date of the last day that was archived; a
	// new day is detected by comparing it against today. LastWeeklyReset
	// follows the same pattern against the Monday week start.
	LastDailyReset  dateutil.Date `json:"lastDailyReset"`
	LastWeeklyReset dateutil.Date `json:"lastWeeklyReset"`

	CurrentMonth string `json:"currentMonth"`
	Password     string `json:"password"`
}

// Default returns the documented first-run state.
func Default(now time.Time) *AppState {
	return &AppState{
		CurrentMonth: now.Format(time.RFC3339),
		Password:     DefaultPassword,
	}
}

// Decode unmarshals a stored document over the defaults, so documents
// written before a field existed pick up its default value.
func Decode(data []byte, now time.Time) (*AppState, error) {
	s := Default(now)
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode app state: %w", err)
	}
	return s, nil
}

// Encode marshals the aggregate for storage.
func (s *AppState) Encode() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode app state: %w", err)
	}
	return data, nil
}

// Clone deep-copies the aggregate through its JSON form. The gateway
// hands clones out so callers can never mutate the cache in place.
func (s *AppState) Clone() *AppState {
	data, err := json.Marshal(s)
	if err != nil {
		// AppState contains only JSON-safe fields.
		panic(fmt.Sprintf("clone app state: %v", err))
	}
	var out AppState
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("clone app state: %v", err))
	}
	return &out
}

// Patch is a partial AppState: nil fields are left untouched on apply.
// Mutators build the narrowest patch that covers what they changed,
// and the gateway merges it over the current document.
type Patch struct {
	Mood            *Mood                  `json:"mood,omitempty"`
	LastMoodDate    *dateutil.Date         `json:"lastMoodDate,omitempty"`
	Expenses        *[]Expense             `json:"expenses,omitempty"`
	DailyTasks      *[]Task                `json:"dailyTasks,omitempty"`
	WeeklyGoals     *[]WeeklyGoal          `json:"weeklyGoals,omitempty"`
	UnplannedTasks  *[]UnplannedTask       `json:"unplannedTasks,omitempty"`
	WeeklyNotes     *string                `json:"weeklyNotes,omitempty"`
	LongTermGoals   *[]LongTermGoal        `json:"longTermGoals,omitempty"`
	DailyHistory    *[]TaskHistoryEntry    `json:"dailyHistory,omitempty"`
	WeeklyHistory   *[]WeeklyHistoryEntry  `json:"weeklyHistory,omitempty"`
	WeeklyProgress  *[]WeeklyProgressEntry `json:"weeklyProgress,omitempty"`
	DailyNotes      *[]DailyNote           `json:"dailyNotes,omitempty"`
	LastDailyReset  *dateutil.Date         `json:"lastDailyReset,omitempty"`
	LastWeeklyReset *dateutil.Date         `json:"lastWeeklyReset,omitempty"`
	CurrentMonth    *string                `json:"currentMonth,omitempty"`
	Password        *string                `json:"password,omitempty"`
}

// Apply merges the patch over s.
func (p Patch) Apply(s *AppState) {
	if p.Mood != nil {
		s.Mood = *p.Mood
	}
	if p.LastMoodDate != nil {
		s.LastMoodDate = *p.LastMoodDate
	}
	if p.Expenses != nil {
		s.Expenses = *p.Expenses
	}
	if p.DailyTasks != nil {
		s.DailyTasks = *p.DailyTasks
	}
	if p.WeeklyGoals != nil {
		s.WeeklyGoals = *p.WeeklyGoals
	}
	if p.UnplannedTasks != nil {
		s.UnplannedTasks = *p.UnplannedTasks
	}
	if p.WeeklyNotes != nil {
		s.WeeklyNotes = *p.WeeklyNotes
	}
	if p.LongTermGoals != nil {
		s.LongTermGoals = *p.LongTermGoals
	}
	if p.DailyHistory != nil {
		s.DailyHistory = *p.DailyHistory
	}
	if p.WeeklyHistory != nil {
		s.WeeklyHistory = *p.WeeklyHistory
	}
	if p.WeeklyProgress != nil {
		s.WeeklyProgress = *p.WeeklyProgress
	}
	if p.DailyNotes != nil {
		s.DailyNotes = *p.DailyNotes
	}
	if p.LastDailyReset != nil {
		s.LastDailyReset = *p.LastDailyReset
	}
	if p.LastWeeklyReset != nil {
		s.LastWeeklyReset = *p.LastWeeklyReset
	}
	if p.CurrentMonth != nil {
		s.CurrentMonth = *p.CurrentMonth
	}
	if p.Password != nil {
		s.Password = *p.Password
	}
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// FullPatch covers every field of s, for callers that replace the
// whole aggregate at once.
func FullPatch(s *AppState) Patch {
	return Patch{
		Mood:            &s.Mood,
		LastMoodDate:    &s.LastMoodDate,
		Expenses:        &s.Expenses,
		DailyTasks:      &s.DailyTasks,
		WeeklyGoals:     &s.WeeklyGoals,
		UnplannedTasks:  &s.UnplannedTasks,
		WeeklyNotes:     &s.WeeklyNotes,
		LongTermGoals:   &s.LongTermGoals,
		DailyHistory:    &s.DailyHistory,
		WeeklyHistory:   &s.WeeklyHistory,
		WeeklyProgress:  &s.WeeklyProgress,
		DailyNotes:      &s.DailyNotes,
		LastDailyReset:  &s.LastDailyReset,
		LastWeeklyReset: &s.LastWeeklyReset,
		CurrentMonth:    &s.CurrentMonth,
		Password:        &s.Password,
	}
}
