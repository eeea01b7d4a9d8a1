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

func newPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Manage the dashboard password",
	}

	set := &cobra.Command{
		Use:   "set",
		Short: "Change the password",
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

			reader := bufio.NewReader(cmd.InOrStdin())
			fmt.Fprint(cmd.OutOrStdout(), "Password lama: ")
			old, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			ok, err := svc.Gateway().VerifyPassword(ctx, strings.TrimRight(old, "\r\n"))
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("password salah")
			}

			fmt.Fprint(cmd.OutOrStdout(), "Password baru: ")
			npw, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			if err := svc.Gateway().UpdatePassword(ctx, strings.TrimRight(npw, "\r\n")); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconLock+" Password diperbarui.")
			return nil
		},
	}

	cmd.AddCommand(set)
	return cmd
}
