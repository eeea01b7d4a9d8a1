package engine

import (
	"strings"

	"github.com/msultanalhakim/productivity-dashboard/internal/dateutil"
	"github.com/msultanalhakim/productivity-dashboard/internal/state"
)

// The reconciler keeps dailyHistory, weeklyHistory, weeklyProgress and
// dailyNotes consistent with the live task/goal lists. All functions
// here are pure over the in-memory aggregate: they never touch storage
// and report through their return value whether anything changed.

// GoalsForDay filters the weekly goals bound to one weekday name.
// Entries without an id are skipped; they are artifacts of older
// documents and must not count toward any total.
func GoalsForDay(goals []state.WeeklyGoal, dayName string) []state.WeeklyGoal {
	var out []state.WeeklyGoal
	for _, g := range goals {
		if g.ID != "" && g.Day == dayName {
			out = append(out, g)
		}
	}
	return out
}

// NoteFor returns the note filed under (date, day), or "".
func NoteFor(s *state.AppState, date dateutil.Date, dayName string) string {
	for _, n := range s.DailyNotes {
		if n.Date == date && n.Day == dayName {
			return n.Note
		}
	}
	return ""
}

// noteForDate matches by date alone; history attaches whatever note
// exists for the day regardless of the stored day name.
func noteForDate(s *state.AppState, date dateutil.Date) string {
	for _, n := range s.DailyNotes {
		if n.Date == date {
			return strings.TrimSpace(n.Note)
		}
	}
	return ""
}

// historyEntryFor builds the archive record for one date from the live
// lists, counting only the goals bound to that date's weekday.
func historyEntryFor(s *state.AppState, date dateutil.Date) state.TaskHistoryEntry {
	dayGoals := GoalsForDay(s.WeeklyGoals, date.Weekday().Name())
	note := noteForDate(s, date)

	e := state.TaskHistoryEntry{
		Date:             date,
		TotalTasks:       len(s.DailyTasks),
		WeeklyGoalsTotal: len(dayGoals),
		HasNotes:         note != "",
		DailyNote:        note,
	}
	for _, t := range s.DailyTasks {
		if t.Done {
			e.CompletedTasks++
		} else {
			e.FailedTasksList = append(e.FailedTasksList, t.Text)
		}
	}
	for _, g := range dayGoals {
		if g.Done {
			e.WeeklyGoalsCompleted++
			e.CompletedGoalsList = append(e.CompletedGoalsList, g.Text)
		} else {
			e.FailedGoalsList = append(e.FailedGoalsList, g.Text)
		}
	}
	return e
}

func removeHistoryEntry(history []state.TaskHistoryEntry, date dateutil.Date) ([]state.TaskHistoryEntry, bool) {
	for i, h := range history {
		if h.Date == date {
			return append(history[:i], history[i+1:]...), true
		}
	}
	return history, false
}

// upsertHistoryEntry replaces the entry for e.Date, or appends one.
// An identical existing entry is left alone so a no-op reconcile never
// counts as a change.
func upsertHistoryEntry(history []state.TaskHistoryEntry, e state.TaskHistoryEntry) ([]state.TaskHistoryEntry, bool) {
	for i, h := range history {
		if h.Date == e.Date {
			if h.Equal(e) {
				return history, false
			}
			history[i] = e
			return history, true
		}
	}
	return append(history, e), true
}

// ReconcileToday recomputes the dailyHistory entry for today after a
// task, goal or note mutation. A day with no tasks, no goals for its
// weekday and no note must have no entry at all, so a stale one is
// deleted rather than zeroed. The weeklyProgress row for today is kept
// in step under the same rule.
func ReconcileToday(s *state.AppState, today dateutil.Date) bool {
	dayName := today.Weekday().Name()
	todayGoals := GoalsForDay(s.WeeklyGoals, dayName)
	note := noteForDate(s, today)

	changed := false
	if len(s.DailyTasks) == 0 && len(todayGoals) == 0 && note == "" {
		if history, removed := removeHistoryEntry(s.DailyHistory, today); removed {
			s.DailyHistory = history
			changed = true
		}
	} else {
		var did bool
		s.DailyHistory, did = upsertHistoryEntry(s.DailyHistory, historyEntryFor(s, today))
		changed = changed || did
	}

	if reconcileProgress(s, today, todayGoals) {
		changed = true
	}
	return changed
}

// reconcileProgress mirrors today's goal counts into weeklyProgress.
func reconcileProgress(s *state.AppState, today dateutil.Date, todayGoals []state.WeeklyGoal) bool {
	if len(todayGoals) == 0 {
		for i, p := range s.WeeklyProgress {
			if p.Date == today {
				s.WeeklyProgress = append(s.WeeklyProgress[:i], s.WeeklyProgress[i+1:]...)
				return true
			}
		}
		return false
	}

	entry := state.WeeklyProgressEntry{
		Date:       today,
		Day:        today.Weekday().Name(),
		GoalsTotal: len(todayGoals),
	}
	for _, g := range todayGoals {
		if g.Done {
			entry.GoalsCompleted++
		}
	}
	for i, p := range s.WeeklyProgress {
		if p.Date == today {
			if p == entry {
				return false
			}
			s.WeeklyProgress[i] = entry
			return true
		}
	}
	s.WeeklyProgress = append(s.WeeklyProgress, entry)
	return true
}

// NeedsDailyReset reports whether the live day has rolled over since
// the last archive.
func NeedsDailyReset(s *state.AppState, today dateutil.Date) bool {
	return s.LastDailyReset != today
}

// PerformDailyReset closes out the previous day: its tasks and the
// goals bound to its weekday are folded into dailyHistory, the live
// task list and mood are cleared, and the reset marker advances to
// today. With nothing live to archive only the marker moves. Running
// it again before the next rollover is a no-op via the NeedsDailyReset
// guard.
func PerformDailyReset(s *state.AppState, today dateutil.Date) bool {
	if !NeedsDailyReset(s, today) {
		return false
	}

	if len(s.DailyTasks) == 0 && len(s.WeeklyGoals) == 0 {
		s.LastDailyReset = today
		return true
	}

	prev := s.LastDailyReset
	if prev.IsZero() {
		prev = today
	}

	// The reconciler may already hold a live entry for prev; the archive
	// replaces it so a date never appears twice.
	s.DailyHistory, _ = upsertHistoryEntry(s.DailyHistory, historyEntryFor(s, prev))
	s.DailyTasks = nil
	s.Mood = state.MoodNone
	s.LastDailyReset = today
	return true
}

// NeedsWeeklyReset reports whether a new Monday-anchored week began
// since the last weekly archive.
func NeedsWeeklyReset(s *state.AppState, today dateutil.Date) bool {
	return s.LastWeeklyReset != today.WeekStart()
}

// PerformWeeklyReset archives the closed week's goals and notes, then
// clears the weekly lists for the new week.
func PerformWeeklyReset(s *state.AppState, today dateutil.Date) bool {
	weekStart := today.WeekStart()
	if s.LastWeeklyReset == weekStart {
		return false
	}

	if len(s.WeeklyGoals) == 0 {
		s.LastWeeklyReset = weekStart
		s.WeeklyProgress = nil
		return true
	}

	start := s.LastWeeklyReset
	if start.IsZero() {
		start = weekStart
	}

	entry := state.WeeklyHistoryEntry{
		WeekLabel:  dateutil.WeekLabel(start),
		WeekStart:  start,
		EndDate:    start.AddDays(6),
		TotalGoals: len(s.WeeklyGoals),
		Notes:      s.WeeklyNotes,
	}
	for _, g := range s.WeeklyGoals {
		if g.Done {
			entry.CompletedGoals++
		}
	}

	s.WeeklyHistory = append(s.WeeklyHistory, entry)
	s.WeeklyGoals = nil
	s.UnplannedTasks = nil
	s.WeeklyNotes = ""
	s.WeeklyProgress = nil
	s.LastWeeklyReset = weekStart
	return true
}

// SaveDailyNote upserts the note for (today, day), or deletes it when
// the text is empty; an empty note is never stored. Only today's
// weekday may be written to.
func SaveDailyNote(s *state.AppState, today dateutil.Date, dayName, text string) error {
	if dayName != today.Weekday().Name() {
		return NotTodayError{Day: dayName, Today: today.Weekday()}
	}

	text = strings.TrimSpace(text)
	idx := -1
	for i, n := range s.DailyNotes {
		if n.Date == today && n.Day == dayName {
			idx = i
			break
		}
	}

	switch {
	case text == "" && idx >= 0:
		s.DailyNotes = append(s.DailyNotes[:idx], s.DailyNotes[idx+1:]...)
	case text == "":
		// Nothing stored, nothing to remove.
	case idx >= 0:
		s.DailyNotes[idx].Note = text
	default:
		s.DailyNotes = append(s.DailyNotes, state.DailyNote{Date: today, Day: dayName, Note: text})
	}

	ReconcileToday(s, today)
	return nil
}

// CanEditGoal reports whether the weekday is still editable: today's
// weekday and later ones are open, earlier ones in the Monday-first
// order are locked. The past within a week cannot be rewritten.
func CanEditGoal(today, day dateutil.Weekday) bool {
	return day >= today
}

// PromoteOverdueLongTermGoals fails every active goal whose deadline
// has passed. It is a pure map over the slice; callers that want the
// transition durable must persist the returned slice when changed is
// true.
func PromoteOverdueLongTermGoals(goals []state.LongTermGoal, today dateutil.Date) ([]state.LongTermGoal, bool) {
	changed := false
	out := make([]state.LongTermGoal, len(goals))
	copy(out, goals)
	for i, g := range out {
		if g.Status == state.GoalActive && dateutil.IsOverdue(today, g.Deadline) {
			out[i].Status = state.GoalFailed
			changed = true
		}
	}
	return out, changed
}
