package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msultanalhakim/productivity-dashboard/internal/state"
	"github.com/msultanalhakim/productivity-dashboard/internal/ui"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage today's tasks",
	}
	cmd.AddCommand(newTaskAddCmd(), newTaskDoneCmd(), newTaskRmCmd())
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task for today",
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

			t, err := svc.AddTask(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Tugas ditambahkan: %s (%s)\n", ui.IconTask, t.Text, shortID(t.ID))
			return nil
		},
	}
}

func newTaskDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task done/undone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskToggle(cmd, args[0])
		},
	}
}

func runTaskToggle(cmd *cobra.Command, prefix string) error {
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

	id, err := resolveTaskID(st.DailyTasks, prefix)
	if err != nil {
		return err
	}
	if err := svc.ToggleTask(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.IconDone+" Tugas diperbarui.")
	return nil
}

func newTaskRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
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

			id, err := resolveTaskID(st.DailyTasks, args[0])
			if err != nil {
				return err
			}
			if err := svc.DeleteTask(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Tugas dihapus.")
			return nil
		},
	}
}

func resolveTaskID(tasks []state.Task, prefix string) (string, error) {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return matchID("task", ids, prefix)
}

// shortID abbreviates an id for display. Ids from older documents may
// be shorter than the cut.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// matchID accepts a full id or an unambiguous prefix.
func matchID(kind string, ids []string, prefix string) (string, error) {
	var match string
	for _, id := range ids {
		if strings.HasPrefix(id, prefix) {
			if match != "" {
				return "", fmt.Errorf("%s id %q is ambiguous", kind, prefix)
			}
			match = id
		}
	}
	if match == "" {
		return "", errors.New("no " + kind + " with id " + prefix)
	}
	return match, nil
}
