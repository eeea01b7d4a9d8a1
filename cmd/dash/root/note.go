package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msultanalhakim/productivity-dashboard/internal/engine"
	"github.com/msultanalhakim/productivity-dashboard/internal/ui"
)

func newNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note [text]",
		Short: "Set or show today's note (empty text removes it)",
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
			dayName := today.Weekday().Name()

			if len(args) == 0 {
				note := engine.NoteFor(st, today, dayName)
				if note == "" {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Belum ada catatan untuk hari ini."))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconNote, dayName+", "+today.String()))
				fmt.Fprintln(cmd.OutOrStdout(), note)
				return nil
			}

			text := strings.Join(args, " ")
			if err := svc.SaveDailyNoteForToday(ctx, dayName, text); err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Catatan dihapus.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.IconNote+" Catatan disimpan.")
			}
			return nil
		},
	}
	return cmd
}
