package engine

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/msultanalhakim/productivity-dashboard/internal/dateutil"
	"github.com/msultanalhakim/productivity-dashboard/internal/state"
	"github.com/msultanalhakim/productivity-dashboard/internal/storage"
)

// Service is the collaborator surface the presentation layer talks to.
// It loads the aggregate through the gateway, applies the pure engine
// mutation, and saves the narrowest patch that covers the change.
// I/O errors propagate to the caller; the engine itself never fails
// for I/O reasons.
type Service struct {
	gw  *storage.Gateway
	now func() time.Time
}

func NewService(gw *storage.Gateway, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{gw: gw, now: now}
}

func (s *Service) Gateway() *storage.Gateway { return s.gw }

func (s *Service) today() dateutil.Date { return dateutil.FromTime(s.now()) }

// State returns the current aggregate for rendering.
func (s *Service) State(ctx context.Context) (*state.AppState, error) {
	return s.gw.Load(ctx)
}

// Sync runs the rollovers that are due: daily and weekly resets, the
// overdue promotion of long-term goals, and a reconcile of today's
// history entry. Every entry point calls it first, so a dashboard
// opened after midnight archives yesterday before showing anything.
// Overdue long-term goals are persisted as failed the moment they are
// detected, not left as a display-time derivation.
func (s *Service) Sync(ctx context.Context) (*state.AppState, error) {
	st, err := s.gw.Load(ctx)
	if err != nil {
		return nil, err
	}
	today := s.today()

	changed := PerformDailyReset(st, today)
	if PerformWeeklyReset(st, today) {
		changed = true
	}
	if goals, promoted := PromoteOverdueLongTermGoals(st.LongTermGoals, today); promoted {
		st.LongTermGoals = goals
		changed = true
	}
	if ReconcileToday(st, today) {
		changed = true
	}

	if changed {
		if err := s.gw.Save(ctx, state.FullPatch(st)); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// taskPatch covers the collections a task/goal/note mutation can touch
// through the reconciler.
func taskPatch(st *state.AppState) state.Patch {
	return state.Patch{
		DailyTasks:     &st.DailyTasks,
		WeeklyGoals:    &st.WeeklyGoals,
		DailyNotes:     &st.DailyNotes,
		DailyHistory:   &st.DailyHistory,
		WeeklyProgress: &st.WeeklyProgress,
	}
}

func (s *Service) AddTask(ctx context.Context, text string) (state.Task, error) {
	st, err := s.gw.Load(ctx)
	if err != nil {
		return state.Task{}, err
	}
	t, err := AddTask(st, s.today(), text)
	if err != nil {
		return state.Task{}, err
	}
	return t, s.gw.Save(ctx, taskPatch(st))
}

func (s *Service) ToggleTask(ctx context.Context, id string) error {
	st, err := s.gw.Load(ctx)
	if err != nil {
		return err
	}
	if err := ToggleTask(st, s.today(), id); err != nil {
		return err
	}
	return s.gw.Save(ctx, taskPatch(st))
}

func (s *Service) DeleteTask(ctx context.Context, id string) error {
	st, err := s.gw.Load(ctx)
	if err != nil {
		return err
	}
	if err := DeleteTask(st, s.today(), id); err != nil {
		return err
	}
	return s.gw.Save(ctx, taskPatch(st))
}

func (s *Service) AddGoal(ctx context.Context, day dateutil.Weekday, text string) (state.WeeklyGoal, error) {
	st, err := s.gw.Load(ctx)
	if err != nil {
		return state.WeeklyGoal{}, err
	}
	g, err := AddGoal(st, s.today(), day, text)
	if err != nil {
		return state.WeeklyGoal{}, err
	}
	return g, s.gw.Save(ctx, taskPatch(st))
}

func (s *Service) ToggleGoal(ctx context.Context, id string) error {
	st, err := s.gw.Load(ctx)
	if err != nil {
		return err
	}
	if err := ToggleGoal(st, s.today(), id); err != nil {
		return err
	}
	return s.gw.Save(ctx, taskPatch(st))
}

func (s *Service) DeleteGoal(ctx context.Context, id string) error {
	st, err := s.gw.Load(ctx)
	if err != nil {
		return err
	}
	if err := DeleteGoal(st, s.today(), id); err != nil {
		return err
	}
	return s.gw.Save(ctx, taskPatch(st))
}

// SaveDailyNoteForToday upserts (or deletes, when text is empty) the
// note for today's weekday.
func (s *Service) SaveDailyNoteForToday(ctx context.Context, dayName, text string) error {
	st, err := s.gw.Load(ctx)
	if err != nil {
		return err
	}
	if err := SaveDailyNote(st, s.today(), dayName, text); err != nil {
		return err
	}
	return s.gw.Save(ctx, taskPatch(st))
}

func (s *Service) SetWeeklyNotes(ctx context.Context, text string) error {
	st, err := s.gw.Load(ctx)
	if err != nil {
		return err
	}
	st.WeeklyNotes = text
	return s.gw.Save(ctx, state.Patch{WeeklyNotes: &st.WeeklyNotes})
}

func (s *Service) AddLongTermGoal(ctx context.Context, title string, deadline dateutil.Date, notes string) (state.LongTermGoal, error) {
	st, err := s.gw.Load(ctx)
	if err != nil {
		return state.LongTermGoal{}, err
	}
	g, err := AddLongTermGoal(st, s.today(), title, deadline, notes)
	if err != nil {
		return state.LongTermGoal{}, err
	}
	return g, s.gw.Save(ctx, state.Patch{LongTermGoals: &st.LongTermGoals})
}

func (s *Service) CompleteLongTermGoal(ctx context.Context, id string) error {
	st, err := s.gw.Load(ctx)
	if err != nil {
		return err
	}
	if err := CompleteLongTermGoal(st, s.today(), id); err != nil {
		return err
	}
	return s.gw.Save(ctx, state.Patch{LongTermGoals: &st.LongTermGoals})
}

func (s *Service) DeleteLongTermGoal(ctx context.Context, id string) error {
	st, err := s.gw.Load(ctx)
	if err != nil {
		return err
	}
	if err := DeleteLongTermGoal(st, id); err != nil {
		return err
	}
	return s.gw.Save(ctx, state.Patch{LongTermGoals: &st.LongTermGoals})
}

func (s *Service) AddExpense(ctx context.Context, label string, amount decimal.Decimal, typ state.ExpenseType, date dateutil.Date, category string) (state.Expense, error) {
	st, err := s.gw.Load(ctx)
	if err != nil {
		return state.Expense{}, err
	}
	if date.IsZero() {
		date = s.today()
	}
	e, err := AddExpense(st, label, amount, typ, date, category)
	if err != nil {
		return state.Expense{}, err
	}
	return e, s.gw.Save(ctx, state.Patch{Expenses: &st.Expenses})
}

func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	st, err := s.gw.Load(ctx)
	if err != nil {
		return err
	}
	if err := DeleteExpense(st, id); err != nil {
		return err
	}
	return s.gw.Save(ctx, state.Patch{Expenses: &st.Expenses})
}

func (s *Service) SetMood(ctx context.Context, mood state.Mood) error {
	st, err := s.gw.Load(ctx)
	if err != nil {
		return err
	}
	if err := SetMood(st, s.today(), mood); err != nil {
		return err
	}
	return s.gw.Save(ctx, state.Patch{Mood: &st.Mood, LastMoodDate: &st.LastMoodDate})
}

// Today exposes the service clock's calendar day to the shell.
func (s *Service) Today() dateutil.Date { return s.today() }
