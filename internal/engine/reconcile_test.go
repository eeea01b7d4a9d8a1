package engine

import (
	"errors"
	"testing"

	"github.com/msultanalhakim/productivity-dashboard/internal/dateutil"
	"github.com/msultanalhakim/productivity-dashboard/internal/state"
)

// The week of 2024-01-01 anchors these tests: Jan 1 is a Monday, so
// Jan 3 is a Wednesday (Rabu) and Jan 7 a Sunday (Minggu).
var (
	monday    = dateutil.MustParse("2024-01-01")
	tuesday   = dateutil.MustParse("2024-01-02")
	wednesday = dateutil.MustParse("2024-01-03")
	thursday  = dateutil.MustParse("2024-01-04")
)

func findHistory(t *testing.T, s *state.AppState, date dateutil.Date) state.TaskHistoryEntry {
	t.Helper()
	for _, h := range s.DailyHistory {
		if h.Date == date {
			return h
		}
	}
	t.Fatalf("no dailyHistory entry for %s", date)
	return state.TaskHistoryEntry{}
}

func hasHistory(s *state.AppState, date dateutil.Date) bool {
	for _, h := range s.DailyHistory {
		if h.Date == date {
			return true
		}
	}
	return false
}

func TestReconcileTodayBuildsWednesdayEntry(t *testing.T) {
	s := &state.AppState{
		DailyTasks: []state.Task{{ID: state.NewID(), Text: "Write report"}},
		WeeklyGoals: []state.WeeklyGoal{
			{ID: state.NewID(), Day: "Rabu", Text: "Gym", Done: true},
			{ID: state.NewID(), Day: "Kamis", Text: "Read"},
		},
	}

	if !ReconcileToday(s, wednesday) {
		t.Fatalf("expected a change on first reconcile")
	}

	e := findHistory(t, s, wednesday)
	if e.TotalTasks != 1 || e.CompletedTasks != 0 {
		t.Fatalf("tasks = %d/%d, want 0/1", e.CompletedTasks, e.TotalTasks)
	}
	if e.WeeklyGoalsTotal != 1 || e.WeeklyGoalsCompleted != 1 {
		t.Fatalf("goals = %d/%d, want 1/1 (only Rabu counts)", e.WeeklyGoalsCompleted, e.WeeklyGoalsTotal)
	}
	if len(e.CompletedGoalsList) != 1 || e.CompletedGoalsList[0] != "Gym" {
		t.Fatalf("completedGoalsList = %v", e.CompletedGoalsList)
	}
	if len(e.FailedTasksList) != 1 || e.FailedTasksList[0] != "Write report" {
		t.Fatalf("failedTasksList = %v", e.FailedTasksList)
	}
	if len(e.FailedGoalsList) != 0 {
		t.Fatalf("failedGoalsList = %v, want empty", e.FailedGoalsList)
	}
	if e.HasNotes {
		t.Fatalf("hasNotes set without a note")
	}

	// Same inputs again: nothing changed, nothing rewritten.
	if ReconcileToday(s, wednesday) {
		t.Fatalf("second reconcile must be a no-op")
	}
}

func TestReconcileTodayDeletesEmptyEntry(t *testing.T) {
	s := &state.AppState{
		DailyTasks: []state.Task{{ID: state.NewID(), Text: "only task"}},
	}
	ReconcileToday(s, wednesday)
	if !hasHistory(s, wednesday) {
		t.Fatalf("entry should exist while a task is live")
	}

	s.DailyTasks = nil
	if !ReconcileToday(s, wednesday) {
		t.Fatalf("removing the last task must count as a change")
	}
	if hasHistory(s, wednesday) {
		t.Fatalf("a day with no tasks, goals or note must have no entry")
	}
	if len(s.WeeklyProgress) != 0 {
		t.Fatalf("weeklyProgress should be empty, got %v", s.WeeklyProgress)
	}
}

func TestReconcileSkipsGoalsWithoutID(t *testing.T) {
	s := &state.AppState{
		WeeklyGoals: []state.WeeklyGoal{
			{ID: "", Day: "Rabu", Text: "ghost"},
			{ID: state.NewID(), Day: "Rabu", Text: "real"},
		},
	}
	ReconcileToday(s, wednesday)
	e := findHistory(t, s, wednesday)
	if e.WeeklyGoalsTotal != 1 {
		t.Fatalf("weeklyGoalsTotal = %d, want 1 (id-less goal skipped)", e.WeeklyGoalsTotal)
	}
}

func TestReconcileProgressTracksGoalCounts(t *testing.T) {
	s := &state.AppState{
		WeeklyGoals: []state.WeeklyGoal{
			{ID: state.NewID(), Day: "Rabu", Text: "a", Done: true},
			{ID: state.NewID(), Day: "Rabu", Text: "b"},
		},
	}
	ReconcileToday(s, wednesday)
	if len(s.WeeklyProgress) != 1 {
		t.Fatalf("weeklyProgress = %v", s.WeeklyProgress)
	}
	p := s.WeeklyProgress[0]
	if p.Date != wednesday || p.Day != "Rabu" || p.GoalsCompleted != 1 || p.GoalsTotal != 2 {
		t.Fatalf("progress entry = %+v", p)
	}
}

func TestSaveDailyNoteRoundTrip(t *testing.T) {
	s := &state.AppState{}
	if err := SaveDailyNote(s, wednesday, "Rabu", "  productive day  "); err != nil {
		t.Fatalf("SaveDailyNote: %v", err)
	}
	if got := NoteFor(s, wednesday, "Rabu"); got != "productive day" {
		t.Fatalf("NoteFor = %q", got)
	}
	e := findHistory(t, s, wednesday)
	if !e.HasNotes || e.DailyNote != "productive day" {
		t.Fatalf("history entry = %+v, note not attached", e)
	}

	// Emptying the note deletes it, and with nothing else live the
	// history entry goes with it.
	if err := SaveDailyNote(s, wednesday, "Rabu", "   "); err != nil {
		t.Fatalf("SaveDailyNote empty: %v", err)
	}
	if len(s.DailyNotes) != 0 {
		t.Fatalf("empty note must be removed, got %v", s.DailyNotes)
	}
	if hasHistory(s, wednesday) {
		t.Fatalf("history entry must be deleted once the note is gone")
	}
}

func TestSaveDailyNoteRejectsOtherDays(t *testing.T) {
	s := &state.AppState{}
	err := SaveDailyNote(s, wednesday, "Senin", "backfill")
	var nte NotTodayError
	if !errors.As(err, &nte) {
		t.Fatalf("expected NotTodayError, got %v", err)
	}
	if len(s.DailyNotes) != 0 {
		t.Fatalf("state must be untouched on a guard failure")
	}
}

func TestWeekdayLock(t *testing.T) {
	today := wednesday.Weekday() // Rabu
	locked := []string{"Senin", "Selasa"}
	open := []string{"Rabu", "Kamis", "Jumat", "Sabtu", "Minggu"}
	for _, name := range locked {
		d, _ := dateutil.ParseWeekday(name)
		if CanEditGoal(today, d) {
			t.Fatalf("%s must be locked on Rabu", name)
		}
	}
	for _, name := range open {
		d, _ := dateutil.ParseWeekday(name)
		if !CanEditGoal(today, d) {
			t.Fatalf("%s must be editable on Rabu", name)
		}
	}
}

func TestToggleGoalHonorsLock(t *testing.T) {
	s := &state.AppState{
		WeeklyGoals: []state.WeeklyGoal{
			{ID: "g-mon", Day: "Senin", Text: "past"},
			{ID: "g-thu", Day: "Kamis", Text: "future"},
		},
	}

	err := ToggleGoal(s, wednesday, "g-mon")
	var dle DayLockedError
	if !errors.As(err, &dle) {
		t.Fatalf("expected DayLockedError, got %v", err)
	}
	if s.WeeklyGoals[0].Done {
		t.Fatalf("locked goal must not be toggled")
	}

	if err := ToggleGoal(s, wednesday, "g-thu"); err != nil {
		t.Fatalf("toggling a future day: %v", err)
	}
	if !s.WeeklyGoals[1].Done {
		t.Fatalf("future goal should be done after toggle")
	}
}

func TestToggleTaskNotFound(t *testing.T) {
	s := &state.AppState{}
	err := ToggleTask(s, wednesday, "nope")
	var nfe NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestPerformDailyResetArchivesPreviousDay(t *testing.T) {
	s := &state.AppState{
		LastDailyReset: tuesday,
		DailyTasks: []state.Task{
			{ID: state.NewID(), Text: "done one", Done: true},
			{ID: state.NewID(), Text: "missed one"},
		},
		WeeklyGoals: []state.WeeklyGoal{
			{ID: state.NewID(), Day: "Selasa", Text: "tue goal", Done: true},
			{ID: state.NewID(), Day: "Rabu", Text: "wed goal"},
		},
		Mood: state.Mood("fokus"),
	}

	if !PerformDailyReset(s, wednesday) {
		t.Fatalf("reset was due and must report a change")
	}

	// The archive lands under Tuesday and counts only Tuesday's goals.
	e := findHistory(t, s, tuesday)
	if e.TotalTasks != 2 || e.CompletedTasks != 1 {
		t.Fatalf("tasks = %d/%d, want 1/2", e.CompletedTasks, e.TotalTasks)
	}
	if e.WeeklyGoalsTotal != 1 || e.WeeklyGoalsCompleted != 1 {
		t.Fatalf("goals = %d/%d, want 1/1", e.WeeklyGoalsCompleted, e.WeeklyGoalsTotal)
	}
	if len(s.DailyTasks) != 0 {
		t.Fatalf("live tasks must be cleared")
	}
	if s.Mood != state.MoodNone {
		t.Fatalf("mood must be cleared, got %q", s.Mood)
	}
	if s.LastDailyReset != wednesday {
		t.Fatalf("marker = %s, want %s", s.LastDailyReset, wednesday)
	}
	if len(s.WeeklyGoals) != 2 {
		t.Fatalf("weekly goals survive the daily reset")
	}

	// Idempotent: same day again changes nothing.
	if PerformDailyReset(s, wednesday) {
		t.Fatalf("second reset on the same day must be a no-op")
	}
}

func TestPerformDailyResetEmptyStateAdvancesMarkerOnly(t *testing.T) {
	s := &state.AppState{LastDailyReset: tuesday}
	if !PerformDailyReset(s, wednesday) {
		t.Fatalf("marker advance still counts as a change")
	}
	if len(s.DailyHistory) != 0 {
		t.Fatalf("nothing live, nothing archived; got %v", s.DailyHistory)
	}
	if s.LastDailyReset != wednesday {
		t.Fatalf("marker = %s, want %s", s.LastDailyReset, wednesday)
	}
}

func TestPerformWeeklyResetArchivesClosedWeek(t *testing.T) {
	nextMonday := monday.AddDays(7)
	s := &state.AppState{
		LastWeeklyReset: monday,
		WeeklyGoals: []state.WeeklyGoal{
			{ID: state.NewID(), Day: "Senin", Text: "a", Done: true},
			{ID: state.NewID(), Day: "Jumat", Text: "b"},
		},
		UnplannedTasks: []state.UnplannedTask{{ID: state.NewID(), Text: "adhoc"}},
		WeeklyNotes:    "minggu sibuk",
		WeeklyProgress: []state.WeeklyProgressEntry{{Date: monday, Day: "Senin", GoalsTotal: 1}},
	}

	if !PerformWeeklyReset(s, nextMonday) {
		t.Fatalf("weekly reset was due")
	}

	if len(s.WeeklyHistory) != 1 {
		t.Fatalf("weeklyHistory = %v", s.WeeklyHistory)
	}
	w := s.WeeklyHistory[0]
	if w.WeekStart != monday || w.EndDate != monday.AddDays(6) {
		t.Fatalf("week bounds = %s..%s", w.WeekStart, w.EndDate)
	}
	if w.WeekLabel != "Minggu ke-1, Jan 2024" {
		t.Fatalf("weekLabel = %q", w.WeekLabel)
	}
	if w.TotalGoals != 2 || w.CompletedGoals != 1 {
		t.Fatalf("goals = %d/%d, want 1/2", w.CompletedGoals, w.TotalGoals)
	}
	if w.Notes != "minggu sibuk" {
		t.Fatalf("notes = %q", w.Notes)
	}

	if len(s.WeeklyGoals) != 0 || len(s.UnplannedTasks) != 0 || s.WeeklyNotes != "" || len(s.WeeklyProgress) != 0 {
		t.Fatalf("weekly lists must be cleared")
	}
	if s.LastWeeklyReset != nextMonday {
		t.Fatalf("marker = %s, want %s", s.LastWeeklyReset, nextMonday)
	}

	if PerformWeeklyReset(s, nextMonday.AddDays(3)) {
		t.Fatalf("mid-week call in the same week must be a no-op")
	}
}

func TestPerformWeeklyResetNotDueMidWeek(t *testing.T) {
	s := &state.AppState{
		LastWeeklyReset: monday,
		WeeklyGoals:     []state.WeeklyGoal{{ID: state.NewID(), Day: "Minggu", Text: "g"}},
	}
	// Sunday still belongs to the week that started on Monday.
	if PerformWeeklyReset(s, monday.AddDays(6)) {
		t.Fatalf("Sunday must not trigger the weekly reset")
	}
}

func TestPromoteOverdueLongTermGoals(t *testing.T) {
	goals := []state.LongTermGoal{
		{ID: "a", Title: "past", Deadline: tuesday, Status: state.GoalActive},
		{ID: "b", Title: "today", Deadline: wednesday, Status: state.GoalActive},
		{ID: "c", Title: "done", Deadline: monday, Status: state.GoalCompleted},
	}

	out, changed := PromoteOverdueLongTermGoals(goals, wednesday)
	if !changed {
		t.Fatalf("an active goal past its deadline must change")
	}
	if out[0].Status != state.GoalFailed {
		t.Fatalf("past deadline: status = %s, want failed", out[0].Status)
	}
	if out[1].Status != state.GoalActive {
		t.Fatalf("deadline today is not overdue: status = %s", out[1].Status)
	}
	if out[2].Status != state.GoalCompleted {
		t.Fatalf("completed goal must never transition: status = %s", out[2].Status)
	}
	if goals[0].Status != state.GoalActive {
		t.Fatalf("input slice must be left untouched")
	}

	if _, changed := PromoteOverdueLongTermGoals(out, thursday.AddDays(-1)); changed {
		t.Fatalf("no active overdue goals left, must not change")
	}
}

func TestCompleteLongTermGoalTerminalGuard(t *testing.T) {
	s := &state.AppState{
		LongTermGoals: []state.LongTermGoal{
			{ID: "g", Title: "ship", Deadline: thursday, Status: state.GoalActive},
		},
	}
	if err := CompleteLongTermGoal(s, wednesday, "g"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	g := s.LongTermGoals[0]
	if g.Status != state.GoalCompleted || g.CompletedAt != wednesday {
		t.Fatalf("goal = %+v", g)
	}
	if err := CompleteLongTermGoal(s, thursday, "g"); err == nil {
		t.Fatalf("completing a terminal goal must fail")
	}
}

func TestAddGoalRejectsLockedDay(t *testing.T) {
	s := &state.AppState{}
	mondayDay, _ := dateutil.ParseWeekday("Senin")
	if _, err := AddGoal(s, wednesday, mondayDay, "late plan"); err == nil {
		t.Fatalf("adding a goal to a past weekday must fail")
	}
	if len(s.WeeklyGoals) != 0 {
		t.Fatalf("state must be untouched")
	}
}
