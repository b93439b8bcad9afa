package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ruminaider/ric/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  "Print the settings ric would use in the current directory, followed by the files and variables they came from.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		loaded, err := config.Load(wd)
		if err != nil {
			return err
		}
		data, err := config.Marshal(loaded.Config)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, string(data))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "# sources:")
		for _, src := range loaded.Sources {
			fmt.Fprintf(out, "#   %s\n", src)
		}
		return nil
	},
}
