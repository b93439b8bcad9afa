package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/ruminaider/ric/internal/commands"
	"github.com/ruminaider/ric/internal/component"
	"github.com/ruminaider/ric/internal/config"
	"github.com/ruminaider/ric/internal/debug"
	"github.com/ruminaider/ric/internal/icons"
	"github.com/ruminaider/ric/internal/manifest"
	"github.com/ruminaider/ric/internal/paths"
)

var errNotInteractive = errors.New("stdin is not a terminal; pass --package and icon names")

var (
	addPackage  string
	addDest     string
	addPageSize int
	addYes      bool
	addForce    bool
)

var addCmd = &cobra.Command{
	Use:   "add [icon...]",
	Short: "Pick icons and generate React components for them",
	Long: `Pick an icon package and icons from the installed react-icons, then append a
React component for each icon to the destination file.

With --package and icon names the prompts are skipped, which also works when
stdin is not a terminal.`,
	RunE: runAdd,
}

// addFlags registers the add flags on cmd. The root command shares them so
// that a bare "ric" runs the add flow.
func addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&addPackage, "package", "p", "", "icon package id (e.g. fa); prompts when empty")
	cmd.Flags().StringVar(&addDest, "dest", "", "destination file (default from config)")
	cmd.Flags().IntVar(&addPageSize, "page-size", 0, "rows shown by the pickers (default from config)")
	cmd.Flags().BoolVarP(&addYes, "yes", "y", false, "create a missing destination directory without asking")
	cmd.Flags().BoolVar(&addForce, "force", false, "regenerate icons the destination already exports")
}

func init() {
	addFlags(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}

	flow := addFlow{
		prompt:      terminalPrompter{},
		out:         cmd.OutOrStdout(),
		interactive: term.IsTerminal(os.Stdin.Fd()),
		pkg:         addPackage,
		yes:         addYes,
		force:       addForce,
	}
	return flow.run(cmd.Context(), cfg, args)
}

// effectiveConfig loads the project config and applies the command flags.
func effectiveConfig(cmd *cobra.Command) (config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, err
	}
	loaded, err := config.Load(wd)
	if err != nil {
		return config.Config{}, err
	}
	cfg := loaded.Config
	if f := cmd.Flags().Lookup("dest"); f != nil && f.Changed {
		cfg.Destination = addDest
	}
	if f := cmd.Flags().Lookup("page-size"); f != nil && f.Changed && addPageSize > 0 {
		cfg.PageSize = addPageSize
	}
	debug.Log("config", "sources", loaded.Sources, "destination", cfg.Destination, "nodeModules", cfg.NodeModules)
	return cfg, nil
}

// addFlow is the package → icons → write sequence.
type addFlow struct {
	prompt      prompter
	out         io.Writer
	interactive bool

	pkg   string
	yes   bool
	force bool
}

func (f addFlow) run(ctx context.Context, cfg config.Config, names []string) error {
	pkgs, err := commands.ListPackages(cfg.NodeModules)
	if err != nil {
		return err
	}

	pkg := f.pkg
	if pkg == "" {
		if !f.interactive {
			return errNotInteractive
		}
		if pkg, err = f.prompt.SelectPackage(ctx, pkgs, cfg.PageSize); err != nil {
			return err
		}
	} else if _, ok := manifest.Find(pkgs, pkg); !ok {
		return commands.NewUnknownPackageError(pkg, manifest.IDs(pkgs))
	}

	if len(names) == 0 {
		if !f.interactive {
			return errNotInteractive
		}
		all, err := icons.Names(paths.PackageDir(cfg.NodeModules, pkg))
		if err != nil {
			return err
		}
		if names, err = f.prompt.SelectIcons(ctx, all, cfg.PageSize); err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Fprintln(f.out, "No icons selected.")
			fmt.Fprintln(f.out, "Done")
			return nil
		}
	} else if err := commands.CheckIcons(cfg.NodeModules, pkg, names); err != nil {
		return err
	}

	if err := f.ensureDestDir(ctx, cfg.Destination); err != nil {
		return err
	}

	result, err := commands.Add(commands.AddOptions{
		NodeModules: cfg.NodeModules,
		Package:     pkg,
		Icons:       names,
		Destination: cfg.Destination,
		Force:       f.force,
	})
	if err != nil {
		return err
	}

	for _, name := range result.Skipped {
		fmt.Fprintf(f.out, "Skipped %s (already in %s)\n", name, cfg.Destination)
	}
	if len(result.Written) > 0 {
		verb := "Updated"
		if result.Created {
			verb = "Created"
		}
		fmt.Fprintf(f.out, "%s %s with %d icon(s)\n", verb, cfg.Destination, len(result.Written))
	}
	fmt.Fprintln(f.out, "Done")
	return nil
}

// ensureDestDir creates the destination directory when it is missing, asking
// first unless --yes was given.
func (f addFlow) ensureDestDir(ctx context.Context, dest string) error {
	if component.DirExists(dest) {
		return nil
	}
	dir := filepath.Dir(dest)

	create := f.yes
	if !create {
		if !f.interactive {
			return fmt.Errorf("%w: %s does not exist", component.ErrCreateComponents, dir)
		}
		var err error
		if create, err = f.prompt.ConfirmCreateDir(ctx, dir); err != nil {
			return err
		}
	}
	if !create {
		return fmt.Errorf("%w: %s does not exist", component.ErrCreateComponents, dir)
	}
	return component.EnsureDir(dest)
}
