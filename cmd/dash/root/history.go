package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msultanalhakim/productivity-dashboard/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var weekly bool
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show archived days (or weeks with --weekly)",
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

			out := cmd.OutOrStdout()
			if weekly {
				entries := st.WeeklyHistory
				if limit > 0 && len(entries) > limit {
					entries = entries[len(entries)-limit:]
				}
				if len(entries) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("Belum ada riwayat mingguan."))
					return nil
				}
				for _, w := range entries {
					fmt.Fprintln(out, ui.H2.Render(w.WeekLabel)+" "+ui.Muted.Render(fmt.Sprintf("(%s s/d %s)", w.WeekStart, w.EndDate)))
					fmt.Fprintf(out, "  goals: %d/%d selesai\n", w.CompletedGoals, w.TotalGoals)
					if w.Notes != "" {
						fmt.Fprintln(out, "  "+ui.Muted.Render(w.Notes))
					}
				}
				return nil
			}

			entries := st.DailyHistory
			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Belum ada riwayat harian."))
				return nil
			}
			for _, h := range entries {
				fmt.Fprintln(out, ui.H2.Render(h.Date.String())+" "+ui.Muted.Render(h.Date.Weekday().Name()))
				fmt.Fprintf(out, "  tugas: %d/%d · goals: %d/%d\n", h.CompletedTasks, h.TotalTasks, h.WeeklyGoalsCompleted, h.WeeklyGoalsTotal)
				for _, g := range h.CompletedGoalsList {
					fmt.Fprintln(out, "  "+ui.IconDone+" "+g)
				}
				for _, t := range h.FailedTasksList {
					fmt.Fprintln(out, "  "+ui.IconPending+" "+t)
				}
				for _, g := range h.FailedGoalsList {
					fmt.Fprintln(out, "  "+ui.IconPending+" "+g)
				}
				if h.HasNotes {
					fmt.Fprintln(out, "  "+ui.IconNote+" "+ui.Muted.Render(h.DailyNote))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&weekly, "weekly", "w", false, "Show weekly archive instead of daily")
	cmd.Flags().IntVarP(&limit, "limit", "n", 14, "Most recent entries to show (0 = all)")
	return cmd
}
