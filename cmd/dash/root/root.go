package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msultanalhakim/productivity-dashboard/internal/ui"
)

const Version = "1.0.0"

var dbPath string

var rootCmd = &cobra.Command{
	Use:           "dash",
	Short:         "Personal productivity dashboard",
	Long:          "dash is a password-gated personal dashboard tracking daily tasks, weekly goals, long-term goals, mood and expenses.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the dashboard database (default ~/.dashboard.db)")

	rootCmd.AddCommand(
		newUnlockCmd(),
		newLockCmd(),
		newStatusCmd(),
		newTaskCmd(),
		newGoalCmd(),
		newNoteCmd(),
		newLongTermCmd(),
		newExpenseCmd(),
		newMoodCmd(),
		newHistoryCmd(),
		newPasswordCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render("Error:")+" "+err.Error())
		os.Exit(1)
	}
}
