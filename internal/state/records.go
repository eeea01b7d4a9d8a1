package state

import (
	"github.com/google/uuid"

	"github.com/msultanalhakim/productivity-dashboard/internal/dateutil"
)

// NewID returns a fresh entity id.
func NewID() string {
	return uuid.NewString()
}

// Task is a live "today" task. It carries no date: the daily list as a
// whole belongs to the current day and is archived at the daily reset.
type Task struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// WeeklyGoal is bound to a weekday of the current week, not to an
// absolute date. It is archived at the weekly reset.
type WeeklyGoal struct {
	ID   string `json:"id"`
	Day  string `json:"day"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// UnplannedTask is an ad-hoc task outside the weekly plan, cleared
// together with the weekly goals.
type UnplannedTask struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalFailed    GoalStatus = "failed"
)

func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalActive, GoalCompleted, GoalFailed:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transition is allowed.
func (s GoalStatus) Terminal() bool {
	return s == GoalCompleted || s == GoalFailed
}

// LongTermGoal has a deadline and a status that only moves
// active→completed (user action) or active→failed (deadline passed).
type LongTermGoal struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Deadline    dateutil.Date `json:"deadline"`
	Notes       string        `json:"notes"`
	Status      GoalStatus    `json:"status"`
	CreatedAt   dateutil.Date `json:"createdAt"`
	CompletedAt dateutil.Date `json:"completedAt,omitempty"`
}

// DailyNote attaches free text to one (date, day) pair. The day name is
// redundant with the date but stored for display. An empty note is
// never stored; the entry is removed instead.
type DailyNote struct {
	Date dateutil.Date `json:"date"`
	Day  string        `json:"day"`
	Note string        `json:"note"`
}

// TaskHistoryEntry is the archived record of one calendar day. At most
// one entry exists per date, and an entry with no tasks, no goals for
// its weekday and no note must not exist at all.
type TaskHistoryEntry struct {
	Date                 dateutil.Date `json:"date"`
	TotalTasks           int           `json:"totalTasks"`
	CompletedTasks       int           `json:"completedTasks"`
	WeeklyGoalsTotal     int           `json:"weeklyGoalsTotal"`
	WeeklyGoalsCompleted int           `json:"weeklyGoalsCompleted"`
	CompletedGoalsList   []string      `json:"completedGoalsList,omitempty"`
	FailedTasksList      []string      `json:"failedTasksList,omitempty"`
	FailedGoalsList      []string      `json:"failedGoalsList,omitempty"`
	HasNotes             bool          `json:"hasNotes"`
	DailyNote            string        `json:"dailyNote,omitempty"`
}

// Equal compares every archived field; the reconciler only rewrites an
// entry when something actually changed.
func (e TaskHistoryEntry) Equal(o TaskHistoryEntry) bool {
	return e.Date == o.Date &&
		e.TotalTasks == o.TotalTasks &&
		e.CompletedTasks == o.CompletedTasks &&
		e.WeeklyGoalsTotal == o.WeeklyGoalsTotal &&
		e.WeeklyGoalsCompleted == o.WeeklyGoalsCompleted &&
		equalStrings(e.CompletedGoalsList, o.CompletedGoalsList) &&
		equalStrings(e.FailedTasksList, o.FailedTasksList) &&
		equalStrings(e.FailedGoalsList, o.FailedGoalsList) &&
		e.HasNotes == o.HasNotes &&
		e.DailyNote == o.DailyNote
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// WeeklyHistoryEntry is the archived record of one completed week.
type WeeklyHistoryEntry struct {
	WeekLabel      string        `json:"weekLabel"`
	WeekStart      dateutil.Date `json:"weekStart"`
	EndDate        dateutil.Date `json:"endDate"`
	TotalGoals     int           `json:"totalGoals"`
	CompletedGoals int           `json:"completedGoals"`
	Notes          string        `json:"notes,omitempty"`
}

// WeeklyProgressEntry tracks per-day goal completion within the
// current week, for the week-at-a-glance view.
type WeeklyProgressEntry struct {
	Date           dateutil.Date `json:"date"`
	Day            string        `json:"day"`
	GoalsCompleted int           `json:"goalsCompleted"`
	GoalsTotal     int           `json:"goalsTotal"`
}
