package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/ruminaider/ric/cmd/ric/tui"
	"github.com/ruminaider/ric/internal/manifest"
)

// prompter asks the questions of the interactive add flow.
type prompter interface {
	SelectPackage(ctx context.Context, pkgs []manifest.Package, pageSize int) (string, error)
	SelectIcons(ctx context.Context, names []string, pageSize int) ([]string, error)
	ConfirmCreateDir(ctx context.Context, dir string) (bool, error)
}

// terminalPrompter runs the prompts on the controlling terminal.
type terminalPrompter struct{}

func (terminalPrompter) SelectPackage(ctx context.Context, pkgs []manifest.Package, pageSize int) (string, error) {
	return tui.SelectMenu(ctx, tui.SelectConfig{
		Message:  "Select a package",
		Choices:  packageChoices(pkgs),
		PageSize: pageSize,
	})
}

func (terminalPrompter) SelectIcons(ctx context.Context, names []string, pageSize int) ([]string, error) {
	return tui.Checkbox(ctx, tui.CheckboxConfig{
		Message:  "Select an icon",
		Choices:  tui.ChoicesFromValues(names),
		PageSize: pageSize,
	})
}

func (terminalPrompter) ConfirmCreateDir(ctx context.Context, dir string) (bool, error) {
	create := true
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s does not exist. Create it?", dir)).
				Value(&create),
		),
	).RunWithContext(ctx)
	if err != nil {
		return false, normalizeAbort(err)
	}
	return create, nil
}

// normalizeAbort reports a huh form abort or a canceled context as
// tui.ErrUserCanceled so every prompt cancels the same way.
func normalizeAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
		return tui.ErrUserCanceled
	}
	return err
}

// packageChoices labels each package with its aligned id and name.
func packageChoices(pkgs []manifest.Package) []tui.Choice {
	labels := manifest.Labels(pkgs)
	choices := make([]tui.Choice, len(pkgs))
	for i, p := range pkgs {
		choices[i] = tui.Choice{Name: labels[i], Value: p.ID}
	}
	return choices
}
