package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msultanalhakim/productivity-dashboard/internal/dateutil"
	"github.com/msultanalhakim/productivity-dashboard/internal/engine"
	"github.com/msultanalhakim/productivity-dashboard/internal/state"
	"github.com/msultanalhakim/productivity-dashboard/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's dashboard",
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
			today := svc.Today()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconDash, fmt.Sprintf("%s, %s", today.Weekday().Name(), today)))
			if st.Mood != state.MoodNone {
				fmt.Fprintln(out, ui.LabelValue("Mood", ui.MoodEmoji(st.Mood)+" "+string(st.Mood)))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconTask+" Tugas harian"))
			if len(st.DailyTasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("- tidak ada"))
			}
			for _, t := range st.DailyTasks {
				fmt.Fprintf(out, "%s %s  %s\n", ui.Checkbox(t.Done), t.Text, ui.Muted.Render(shortID(t.ID)))
			}
			fmt.Fprintln(out, "")

			todayGoals := engine.GoalsForDay(st.WeeklyGoals, today.Weekday().Name())
			fmt.Fprintln(out, ui.H2.Render(ui.IconGoal+" Goals hari ini"))
			if len(todayGoals) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("- tidak ada"))
			}
			for _, g := range todayGoals {
				fmt.Fprintf(out, "%s %s  %s\n", ui.Checkbox(g.Done), g.Text, ui.Muted.Render(shortID(g.ID)))
			}
			fmt.Fprintln(out, "")

			if note := engine.NoteFor(st, today, today.Weekday().Name()); note != "" {
				fmt.Fprintln(out, ui.H2.Render(ui.IconNote+" Catatan"))
				fmt.Fprintln(out, note)
				fmt.Fprintln(out, "")
			}

			sum := state.SummarizeMonth(st.Expenses, today)
			fmt.Fprintln(out, ui.H2.Render(ui.IconMoney+" "+dateutil.MonthName(today)))
			fmt.Fprintln(out, ui.LabelValue("Pemasukan", "Rp "+sum.Income.StringFixed(0)))
			fmt.Fprintln(out, ui.LabelValue("Pengeluaran", "Rp "+sum.Outcome.StringFixed(0)))
			fmt.Fprintln(out, ui.LabelValue("Saldo", "Rp "+sum.Balance.StringFixed(0)))
			return nil
		},
	}
	return cmd
}
