package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/msultanalhakim/productivity-dashboard/internal/dateutil"
	"github.com/msultanalhakim/productivity-dashboard/internal/state"
	"github.com/msultanalhakim/productivity-dashboard/internal/ui"
)

func newExpenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Manage the expense ledger",
	}
	cmd.AddCommand(newExpenseAddCmd(), newExpenseRmCmd(), newExpenseSummaryCmd())
	return cmd
}

func newExpenseAddCmd() *cobra.Command {
	var amount string
	var typ string
	var category string
	var date string

	cmd := &cobra.Command{
		Use:   "add <label>",
		Short: "Record an income or outcome entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, sess, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := requireUnlocked(sess); err != nil {
				return err
			}
			if _, err := svc.Sync(ctx); err != nil {
				return err
			}

			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}
			var on dateutil.Date
			if date != "" {
				on, err = dateutil.Parse(date)
				if err != nil {
					return err
				}
			}
			e, err := svc.AddExpense(ctx, strings.Join(args, " "), amt, state.ExpenseType(typ), on, category)
			if err != nil {
				return err
			}

			icon := ui.IconOut
			if e.Type == state.ExpenseIn {
				icon = ui.IconIn
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: Rp %s (%s)\n", icon, e.Label, e.Amount.StringFixed(0), shortID(e.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount in rupiah")
	cmd.Flags().StringVarP(&typ, "type", "t", "out", "Entry type (in|out)")
	cmd.Flags().StringVarP(&category, "category", "c", "Lainnya", "Category")
	cmd.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD), default today")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newExpenseRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a ledger entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, sess, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := requireUnlocked(sess); err != nil {
				return err
			}
			st, err := svc.Sync(ctx)
			if err != nil {
				return err
			}

			ids := make([]string, len(st.Expenses))
			for i, e := range st.Expenses {
				ids[i] = e.ID
			}
			id, err := matchID("expense", ids, args[0])
			if err != nil {
				return err
			}
			if err := svc.DeleteExpense(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Entri dihapus.")
			return nil
		},
	}
}

func newExpenseSummaryCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a month's totals per category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, sess, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := requireUnlocked(sess); err != nil {
				return err
			}
			st, err := svc.Sync(ctx)
			if err != nil {
				return err
			}

			ref := svc.Today()
			if month != "" {
				ref, err = dateutil.Parse(month + "-01")
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			sum := state.SummarizeMonth(st.Expenses, ref)
			fmt.Fprintln(out, ui.Heading(ui.IconMoney, dateutil.MonthName(ref)))
			fmt.Fprintln(out, ui.LabelValue("Pemasukan", "Rp "+sum.Income.StringFixed(0)))
			fmt.Fprintln(out, ui.LabelValue("Pengeluaran", "Rp "+sum.Outcome.StringFixed(0)))
			fmt.Fprintln(out, ui.LabelValue("Saldo", "Rp "+sum.Balance.StringFixed(0)))
			fmt.Fprintln(out, "")

			perCategory := map[string]decimal.Decimal{}
			for _, e := range st.Expenses {
				if e.Type != state.ExpenseOut || !e.Date.SameMonth(ref) {
					continue
				}
				perCategory[e.Category] = perCategory[e.Category].Add(e.Amount)
			}
			for _, cat := range state.ExpenseCategories {
				if total, ok := perCategory[cat]; ok {
					fmt.Fprintf(out, "- %s: Rp %s\n", cat, total.StringFixed(0))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month to summarize (YYYY-MM), default current")
	return cmd
}
