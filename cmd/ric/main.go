package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ruminaider/ric/cmd/ric/tui"
)

var version = "0.1.0"

// exitCanceled is the conventional status for a run ended by SIGINT.
const exitCanceled = 130

var rootCmd = &cobra.Command{
	Use:   "ric",
	Short: "Generate React components from react-icons",
	Long:  "ric lets you pick icons from the installed react-icons packages and writes a React component for each one into a single file of your project. Run without a subcommand for the interactive add flow; pass icon names with \"ric add\".",
	// Default behavior: run the add flow. Positional args are left to cobra so
	// a mistyped subcommand is reported instead of read as an icon name.
	RunE:          runAdd,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ric %s\n", version)
	},
}

func init() {
	addFlags(rootCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(iconsCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

// exitCode reports err and maps it to the process status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, tui.ErrUserCanceled):
		fmt.Fprintln(os.Stderr, tui.ErrUserCanceled)
		return exitCanceled
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}
