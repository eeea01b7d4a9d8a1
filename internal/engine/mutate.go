package engine

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/msultanalhakim/productivity-dashboard/internal/dateutil"
	"github.com/msultanalhakim/productivity-dashboard/internal/state"
)

// Mutators for the live lists. Each mutates the aggregate in place and
// runs ReconcileToday where the reconciler's invariants depend on the
// touched collection. Guard failures return a typed error with the
// state untouched.

func AddTask(s *state.AppState, today dateutil.Date, text string) (state.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return state.Task{}, errors.New("task text is required")
	}
	t := state.Task{ID: state.NewID(), Text: text}
	s.DailyTasks = append(s.DailyTasks, t)
	ReconcileToday(s, today)
	return t, nil
}

func ToggleTask(s *state.AppState, today dateutil.Date, id string) error {
	for i := range s.DailyTasks {
		if s.DailyTasks[i].ID == id {
			s.DailyTasks[i].Done = !s.DailyTasks[i].Done
			ReconcileToday(s, today)
			return nil
		}
	}
	return NotFoundError{Kind: "task", ID: id}
}

func DeleteTask(s *state.AppState, today dateutil.Date, id string) error {
	for i := range s.DailyTasks {
		if s.DailyTasks[i].ID == id {
			s.DailyTasks = append(s.DailyTasks[:i], s.DailyTasks[i+1:]...)
			ReconcileToday(s, today)
			return nil
		}
	}
	return NotFoundError{Kind: "task", ID: id}
}

func AddGoal(s *state.AppState, today dateutil.Date, day dateutil.Weekday, text string) (state.WeeklyGoal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return state.WeeklyGoal{}, errors.New("goal text is required")
	}
	if !CanEditGoal(today.Weekday(), day) {
		return state.WeeklyGoal{}, DayLockedError{Day: day, Today: today.Weekday()}
	}
	g := state.WeeklyGoal{ID: state.NewID(), Day: day.Name(), Text: text}
	s.WeeklyGoals = append(s.WeeklyGoals, g)
	ReconcileToday(s, today)
	return g, nil
}

func ToggleGoal(s *state.AppState, today dateutil.Date, id string) error {
	for i := range s.WeeklyGoals {
		if s.WeeklyGoals[i].ID != id {
			continue
		}
		day, err := dateutil.ParseWeekday(s.WeeklyGoals[i].Day)
		if err != nil {
			return err
		}
		if !CanEditGoal(today.Weekday(), day) {
			return DayLockedError{Day: day, Today: today.Weekday()}
		}
		s.WeeklyGoals[i].Done = !s.WeeklyGoals[i].Done
		ReconcileToday(s, today)
		return nil
	}
	return NotFoundError{Kind: "goal", ID: id}
}

func DeleteGoal(s *state.AppState, today dateutil.Date, id string) error {
	for i := range s.WeeklyGoals {
		if s.WeeklyGoals[i].ID != id {
			continue
		}
		day, err := dateutil.ParseWeekday(s.WeeklyGoals[i].Day)
		if err != nil {
			return err
		}
		if !CanEditGoal(today.Weekday(), day) {
			return DayLockedError{Day: day, Today: today.Weekday()}
		}
		s.WeeklyGoals = append(s.WeeklyGoals[:i], s.WeeklyGoals[i+1:]...)
		ReconcileToday(s, today)
		return nil
	}
	return NotFoundError{Kind: "goal", ID: id}
}

func AddLongTermGoal(s *state.AppState, today dateutil.Date, title string, deadline dateutil.Date, notes string) (state.LongTermGoal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return state.LongTermGoal{}, errors.New("goal title is required")
	}
	if deadline.IsZero() {
		return state.LongTermGoal{}, errors.New("deadline is required")
	}
	g := state.LongTermGoal{
		ID:        state.NewID(),
		Title:     title,
		Deadline:  deadline,
		Notes:     strings.TrimSpace(notes),
		Status:    state.GoalActive,
		CreatedAt: today,
	}
	s.LongTermGoals = append(s.LongTermGoals, g)
	return g, nil
}

// CompleteLongTermGoal moves an active goal to completed and stamps
// completedAt. Terminal goals stay terminal.
func CompleteLongTermGoal(s *state.AppState, today dateutil.Date, id string) error {
	for i := range s.LongTermGoals {
		if s.LongTermGoals[i].ID != id {
			continue
		}
		if s.LongTermGoals[i].Status.Terminal() {
			return errors.New("goal is already " + string(s.LongTermGoals[i].Status))
		}
		s.LongTermGoals[i].Status = state.GoalCompleted
		s.LongTermGoals[i].CompletedAt = today
		return nil
	}
	return NotFoundError{Kind: "goal", ID: id}
}

func DeleteLongTermGoal(s *state.AppState, id string) error {
	for i := range s.LongTermGoals {
		if s.LongTermGoals[i].ID == id {
			s.LongTermGoals = append(s.LongTermGoals[:i], s.LongTermGoals[i+1:]...)
			return nil
		}
	}
	return NotFoundError{Kind: "goal", ID: id}
}

func AddExpense(s *state.AppState, label string, amount decimal.Decimal, typ state.ExpenseType, date dateutil.Date, category string) (state.Expense, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return state.Expense{}, errors.New("expense label is required")
	}
	if !typ.IsValid() {
		return state.Expense{}, errors.New("expense type must be in or out")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return state.Expense{}, errors.New("amount must be positive")
	}
	e := state.Expense{
		ID:       state.NewID(),
		Label:    label,
		Amount:   amount,
		Type:     typ,
		Date:     date,
		Category: category,
	}
	s.Expenses = append(s.Expenses, e)
	return e, nil
}

func DeleteExpense(s *state.AppState, id string) error {
	for i := range s.Expenses {
		if s.Expenses[i].ID == id {
			s.Expenses = append(s.Expenses[:i], s.Expenses[i+1:]...)
			return nil
		}
	}
	return NotFoundError{Kind: "expense", ID: id}
}

// SetMood records today's mood and stamps lastMoodDate.
func SetMood(s *state.AppState, today dateutil.Date, mood state.Mood) error {
	if !mood.IsValid() {
		return errors.New("unknown mood " + string(mood))
	}
	s.Mood = mood
	s.LastMoodDate = today
	return nil
}
