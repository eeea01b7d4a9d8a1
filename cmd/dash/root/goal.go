package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msultanalhakim/productivity-dashboard/internal/dateutil"
	"github.com/msultanalhakim/productivity-dashboard/internal/state"
	"github.com/msultanalhakim/productivity-dashboard/internal/ui"
)

func newGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage this week's goals",
	}
	cmd.AddCommand(newGoalAddCmd(), newGoalDoneCmd(), newGoalRmCmd(), newGoalListCmd())
	return cmd
}

func newGoalAddCmd() *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a goal to a weekday of this week",
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

			wd := svc.Today().Weekday()
			if day != "" {
				wd, err = dateutil.ParseWeekday(day)
				if err != nil {
					return err
				}
			}
			g, err := svc.AddGoal(ctx, wd, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Goal %s: %s (%s)\n", ui.IconGoal, g.Day, g.Text, shortID(g.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&day, "day", "d", "", "Weekday name (Senin..Minggu), default today")
	return cmd
}

func newGoalDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a goal done/undone",
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

			id, err := resolveGoalID(st.WeeklyGoals, args[0])
			if err != nil {
				return err
			}
			if err := svc.ToggleGoal(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconDone+" Goal diperbarui.")
			return nil
		},
	}
}

func newGoalRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a goal",
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

			id, err := resolveGoalID(st.WeeklyGoals, args[0])
			if err != nil {
				return err
			}
			if err := svc.DeleteGoal(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Goal dihapus.")
			return nil
		},
	}
}

func newGoalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the week's goals per day",
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
			todayWd := svc.Today().Weekday()
			for wd := dateutil.Monday; wd <= dateutil.Sunday; wd++ {
				name := wd.Name()
				header := ui.H2.Render(name)
				switch {
				case wd == todayWd:
					header += " " + ui.Warn.Render("(hari ini)")
				case wd < todayWd:
					header += " " + ui.Muted.Render(ui.IconLock)
				}
				fmt.Fprintln(out, header)

				goals := goalsFor(st.WeeklyGoals, name)
				if len(goals) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("- tidak ada"))
					continue
				}
				for _, g := range goals {
					fmt.Fprintf(out, "%s %s  %s\n", ui.Checkbox(g.Done), g.Text, ui.Muted.Render(shortID(g.ID)))
				}
			}
			return nil
		},
	}
}

func goalsFor(goals []state.WeeklyGoal, dayName string) []state.WeeklyGoal {
	var out []state.WeeklyGoal
	for _, g := range goals {
		if g.Day == dayName {
			out = append(out, g)
		}
	}
	return out
}

func resolveGoalID(goals []state.WeeklyGoal, prefix string) (string, error) {
	ids := make([]string, len(goals))
	for i, g := range goals {
		ids[i] = g.ID
	}
	return matchID("goal", ids, prefix)
}
