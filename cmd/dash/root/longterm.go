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

func newLongTermCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lt",
		Aliases: []string{"longterm"},
		Short:   "Manage long-term goals",
	}
	cmd.AddCommand(newLTAddCmd(), newLTDoneCmd(), newLTRmCmd(), newLTListCmd())
	return cmd
}

func newLTAddCmd() *cobra.Command {
	var deadline string
	var notes string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a long-term goal",
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

			dl, err := dateutil.Parse(deadline)
			if err != nil {
				return err
			}
			g, err := svc.AddLongTermGoal(ctx, strings.Join(args, " "), dl, notes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Goal jangka panjang: %s, deadline %s (%s)\n", ui.IconGoal, g.Title, g.Deadline, shortID(g.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&deadline, "deadline", "D", "", "Deadline date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("deadline")
	return cmd
}

func newLTDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a long-term goal completed",
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

			id, err := resolveLTGoalID(st.LongTermGoals, args[0])
			if err != nil {
				return err
			}
			if err := svc.CompleteLongTermGoal(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconDone+" Goal selesai!")
			return nil
		},
	}
}

func newLTRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a long-term goal",
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

			id, err := resolveLTGoalID(st.LongTermGoals, args[0])
			if err != nil {
				return err
			}
			if err := svc.DeleteLongTermGoal(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Goal dihapus.")
			return nil
		},
	}
}

func newLTListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List long-term goals",
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
			if len(st.LongTermGoals) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Belum ada goal jangka panjang."))
				return nil
			}
			today := svc.Today()
			for _, g := range st.LongTermGoals {
				line := fmt.Sprintf("%s %s  %s", ui.GoalStatusText(g.Status), g.Title, ui.Muted.Render(shortID(g.ID)))
				fmt.Fprintln(out, line)
				switch {
				case g.Status == state.GoalActive:
					fmt.Fprintf(out, "  deadline %s (%d hari lagi)\n", g.Deadline, dateutil.DaysUntil(today, g.Deadline))
				case g.Status == state.GoalCompleted && !g.CompletedAt.IsZero():
					fmt.Fprintf(out, "  selesai %s\n", g.CompletedAt)
				}
				if g.Notes != "" {
					fmt.Fprintln(out, "  "+ui.Muted.Render(g.Notes))
				}
			}
			return nil
		},
	}
}

func resolveLTGoalID(goals []state.LongTermGoal, prefix string) (string, error) {
	ids := make([]string, len(goals))
	for i, g := range goals {
		ids[i] = g.ID
	}
	return matchID("goal", ids, prefix)
}
