package state

import (
	"github.com/shopspring/decimal"

	"github.com/msultanalhakim/productivity-dashboard/internal/dateutil"
)

type ExpenseType string

const (
	ExpenseIn  ExpenseType = "in"
	ExpenseOut ExpenseType = "out"
)

func (t ExpenseType) IsValid() bool {
	return t == ExpenseIn || t == ExpenseOut
}

// Expense is a plain ledger row, independent of the reconciliation
// engine.
type Expense struct {
	ID       string          `json:"id"`
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
	Type     ExpenseType     `json:"type"`
	Date     dateutil.Date   `json:"date"`
	Category string          `json:"category"`
}

// ExpenseCategories are the fixed ledger categories.
var ExpenseCategories = []string{
	"Makanan",
	"Transportasi",
	"Belanja",
	"Tagihan",
	"Hiburan",
	"Kesehatan",
	"Pendidikan",
	"Lainnya",
}

// MonthlySummary aggregates one calendar month of the ledger.
type MonthlySummary struct {
	Income  decimal.Decimal
	Outcome decimal.Decimal
	Balance decimal.Decimal
}

// SummarizeMonth totals income and outcome for the month containing ref.
func SummarizeMonth(expenses []Expense, ref dateutil.Date) MonthlySummary {
	s := MonthlySummary{
		Income:  decimal.Zero,
		Outcome: decimal.Zero,
	}
	for _, e := range expenses {
		if !e.Date.SameMonth(ref) {
			continue
		}
		switch e.Type {
		case ExpenseIn:
			s.Income = s.Income.Add(e.Amount)
		case ExpenseOut:
			s.Outcome = s.Outcome.Add(e.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Outcome)
	return s
}
