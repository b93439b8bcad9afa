package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruminaider/ric/cmd/ric/tui"
	"github.com/ruminaider/ric/internal/commands"
)

var iconsFilter string

var iconsCmd = &cobra.Command{
	Use:   "icons <package>",
	Short: "List the icons of one package",
	Long:  "List the icon names exported by an installed react-icons package. --filter keeps names containing the text, ignoring case.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := effectiveConfig(cmd)
		if err != nil {
			return err
		}
		names, err := commands.ListIcons(cfg.NodeModules, args[0])
		if err != nil {
			return err
		}
		for _, name := range tui.FilterValues(names, iconsFilter) {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	iconsCmd.Flags().StringVarP(&iconsFilter, "filter", "f", "", "only names containing this text")
}
