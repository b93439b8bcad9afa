package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ruminaider/ric/internal/commands"
	"github.com/ruminaider/ric/internal/manifest"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the installed icon packages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := effectiveConfig(cmd)
		if err != nil {
			return err
		}
		pkgs, err := commands.ListPackages(cfg.NodeModules)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if v, err := manifest.InstalledVersion(cfg.NodeModules); err == nil {
			fmt.Fprintf(out, "react-icons %s\n\n", v)
		}

		data := make([][]string, 0, len(pkgs))
		for _, p := range pkgs {
			data = append(data, []string{p.ID, p.Name, p.License})
		}

		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"ID", "NAME", "LICENSE"})
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetAutoWrapText(false)
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetNoWhiteSpace(true)
		table.SetTablePadding("    ")
		table.AppendBulk(data)
		table.Render()
		return nil
	},
}
