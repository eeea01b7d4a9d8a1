package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/msultanalhakim/productivity-dashboard/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive dashboard",
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

			return tui.RunBoard(ctx, svc, cmd.OutOrStdout())
		},
	}
	return cmd
}
