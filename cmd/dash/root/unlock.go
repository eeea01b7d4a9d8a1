package root

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msultanalhakim/productivity-dashboard/internal/ui"
)

func newUnlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlock",
		Short: "Unlock the dashboard with the password",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, sess, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprint(cmd.OutOrStdout(), "Password: ")
			reader := bufio.NewReader(cmd.InOrStdin())
			input, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			input = strings.TrimRight(input, "\r\n")

			ok, err := svc.Gateway().VerifyPassword(ctx, input)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("password salah")
			}

			if _, err := sess.Create(); err != nil {
				return err
			}
			// Run due rollovers right away so the first view is current.
			if _, err := svc.Sync(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.IconUnlock+" Dashboard terbuka.")
			return nil
		},
	}
	return cmd
}

func newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Lock the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, sess, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := sess.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconLock+" Dashboard terkunci.")
			return nil
		},
	}
	return cmd
}
