package state

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/msultanalhakim/productivity-dashboard/internal/dateutil"
)

func TestDecodeOverDefaults(t *testing.T) {
	now := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)

	// A document from before the password field existed still unlocks
	// with the default.
	s, err := Decode([]byte(`{"dailyTasks":[{"id":"t1","text":"x","done":false}]}`), now)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Password != DefaultPassword {
		t.Fatalf("password = %q, want default", s.Password)
	}
	if len(s.DailyTasks) != 1 {
		t.Fatalf("tasks = %v", s.DailyTasks)
	}

	if _, err := Decode([]byte(`{broken`), now); err == nil {
		t.Fatalf("malformed document must fail")
	}
}

func TestEncodeDecodeKeepsDates(t *testing.T) {
	now := time.Now()
	s := Default(now)
	s.LastDailyReset = dateutil.MustParse("2024-01-03")
	s.LongTermGoals = []LongTermGoal{{
		ID:       NewID(),
		Title:    "nabung",
		Deadline: dateutil.MustParse("2024-06-01"),
		Status:   GoalActive,
	}}

	data, err := s.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := Decode(data, now)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back.LastDailyReset != s.LastDailyReset {
		t.Fatalf("lastDailyReset = %s", back.LastDailyReset)
	}
	if back.LongTermGoals[0].Deadline != s.LongTermGoals[0].Deadline {
		t.Fatalf("deadline = %s", back.LongTermGoals[0].Deadline)
	}
	if !back.LongTermGoals[0].CompletedAt.IsZero() {
		t.Fatalf("completedAt should stay zero")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := Default(time.Now())
	s.DailyTasks = []Task{{ID: "t1", Text: "a"}}

	c := s.Clone()
	c.DailyTasks[0].Done = true
	c.WeeklyNotes = "copy only"

	if s.DailyTasks[0].Done || s.WeeklyNotes != "" {
		t.Fatalf("clone shares memory with the original")
	}
}

func TestPatchApplyTouchesOnlySetFields(t *testing.T) {
	s := Default(time.Now())
	s.WeeklyNotes = "keep me"
	s.DailyTasks = []Task{{ID: "t1", Text: "old"}}

	mood := Mood("fokus")
	tasks := []Task{{ID: "t2", Text: "new"}}
	p := Patch{Mood: &mood, DailyTasks: &tasks}
	if p.IsEmpty() {
		t.Fatalf("patch with fields must not be empty")
	}
	p.Apply(s)

	if s.Mood != mood {
		t.Fatalf("mood = %q", s.Mood)
	}
	if len(s.DailyTasks) != 1 || s.DailyTasks[0].ID != "t2" {
		t.Fatalf("tasks = %v", s.DailyTasks)
	}
	if s.WeeklyNotes != "keep me" {
		t.Fatalf("untouched field changed: %q", s.WeeklyNotes)
	}

	if !(Patch{}).IsEmpty() {
		t.Fatalf("zero patch must be empty")
	}
}

func TestSummarizeMonthFiltersByMonth(t *testing.T) {
	jan := dateutil.MustParse("2024-01-15")
	expenses := []Expense{
		{ID: "1", Type: ExpenseIn, Amount: decimal.NewFromInt(1000), Date: dateutil.MustParse("2024-01-02")},
		{ID: "2", Type: ExpenseOut, Amount: decimal.NewFromInt(300), Date: dateutil.MustParse("2024-01-20")},
		{ID: "3", Type: ExpenseOut, Amount: decimal.NewFromInt(999), Date: dateutil.MustParse("2024-02-01")},
	}

	sum := SummarizeMonth(expenses, jan)
	if !sum.Income.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("income = %s", sum.Income)
	}
	if !sum.Outcome.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("outcome = %s", sum.Outcome)
	}
	if !sum.Balance.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("balance = %s", sum.Balance)
	}
}
