package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msultanalhakim/productivity-dashboard/internal/state"
	"github.com/msultanalhakim/productivity-dashboard/internal/ui"
)

func newMoodCmd() *cobra.Command {
	moods := make([]string, 0, 5)
	for _, m := range state.Moods() {
		moods = append(moods, string(m))
	}

	cmd := &cobra.Command{
		Use:   "mood <" + strings.Join(moods, "|") + ">",
		Short: "Record today's mood",
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
			if _, err := svc.Sync(ctx); err != nil {
				return err
			}

			mood := state.Mood(strings.ToLower(args[0]))
			if err := svc.SetMood(ctx, mood); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Mood hari ini: %s\n", ui.MoodEmoji(mood), mood)
			return nil
		},
	}
	return cmd
}
