package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruminaider/ric/cmd/ric/tui"
	"github.com/ruminaider/ric/internal/commands"
	"github.com/ruminaider/ric/internal/component"
	"github.com/ruminaider/ric/internal/config"
	"github.com/ruminaider/ric/internal/manifest"
	"github.com/ruminaider/ric/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers the add flow prompts from fixed values and
// records what it was asked.
type scriptedPrompter struct {
	pkg       string
	icons     []string
	createDir bool
	err       error

	offeredPackages []string
	offeredIcons    []string
	askedDir        string
}

func (p *scriptedPrompter) SelectPackage(_ context.Context, pkgs []manifest.Package, _ int) (string, error) {
	p.offeredPackages = manifest.IDs(pkgs)
	return p.pkg, p.err
}

func (p *scriptedPrompter) SelectIcons(_ context.Context, names []string, _ int) ([]string, error) {
	p.offeredIcons = names
	if p.err != nil {
		return nil, p.err
	}
	return p.icons, nil
}

func (p *scriptedPrompter) ConfirmCreateDir(_ context.Context, dir string) (bool, error) {
	p.askedDir = dir
	return p.createDir, nil
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.Default()
	cfg.NodeModules = testutil.NodeModules(t, root)
	cfg.Destination = filepath.Join(root, "src", "components", "icons.tsx")
	return cfg
}

func TestAddFlow_Interactive(t *testing.T) {
	cfg := testConfig(t)
	p := &scriptedPrompter{pkg: "fa", icons: []string{"FaBeer"}, createDir: true}
	var out bytes.Buffer

	flow := addFlow{prompt: p, out: &out, interactive: true}
	require.NoError(t, flow.run(context.Background(), cfg, nil))

	assert.Equal(t, []string{"fa", "md"}, p.offeredPackages)
	assert.Equal(t, []string{"FaBeerMugEmpty", "FaBeer", "FaBell"}, p.offeredIcons)
	assert.Equal(t, filepath.Dir(cfg.Destination), p.askedDir)

	data, err := os.ReadFile(cfg.Destination)
	require.NoError(t, err)
	assert.Contains(t, string(data), "export const FaBeer:")
	assert.True(t, strings.HasSuffix(out.String(), "Done\n"))
}

func TestAddFlow_NoIconsSelected(t *testing.T) {
	cfg := testConfig(t)
	p := &scriptedPrompter{pkg: "fa", icons: []string{}}
	var out bytes.Buffer

	flow := addFlow{prompt: p, out: &out, interactive: true}
	require.NoError(t, flow.run(context.Background(), cfg, nil))

	assert.Equal(t, "No icons selected.\nDone\n", out.String())
	assert.Empty(t, p.askedDir)
	assert.False(t, component.DirExists(cfg.Destination))
}

func TestAddFlow_CanceledPrompt(t *testing.T) {
	cfg := testConfig(t)
	p := &scriptedPrompter{err: tui.ErrUserCanceled}

	flow := addFlow{prompt: p, out: &bytes.Buffer{}, interactive: true}
	err := flow.run(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, tui.ErrUserCanceled)
	assert.Equal(t, exitCanceled, exitCode(err))
}

func TestAddFlow_DeclineCreateDir(t *testing.T) {
	cfg := testConfig(t)
	p := &scriptedPrompter{pkg: "fa", icons: []string{"FaBeer"}, createDir: false}

	flow := addFlow{prompt: p, out: &bytes.Buffer{}, interactive: true}
	err := flow.run(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, component.ErrCreateComponents)
}

func TestAddFlow_NonInteractiveWithArgs(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer

	flow := addFlow{prompt: &scriptedPrompter{err: errors.New("should not prompt")}, out: &out, pkg: "md", yes: true}
	require.NoError(t, flow.run(context.Background(), cfg, []string{"MdHome"}))

	assert.Contains(t, out.String(), "Created "+cfg.Destination+" with 1 icon(s)")
	data, err := os.ReadFile(cfg.Destination)
	require.NoError(t, err)
	assert.Contains(t, string(data), "export const MdHome:")
}

func TestAddFlow_NonInteractiveNeedsPackage(t *testing.T) {
	cfg := testConfig(t)
	flow := addFlow{prompt: &scriptedPrompter{}, out: &bytes.Buffer{}}
	assert.ErrorIs(t, flow.run(context.Background(), cfg, []string{"FaBeer"}), errNotInteractive)
}

func TestAddFlow_NonInteractiveMissingDir(t *testing.T) {
	cfg := testConfig(t)
	flow := addFlow{prompt: &scriptedPrompter{}, out: &bytes.Buffer{}, pkg: "fa"}
	err := flow.run(context.Background(), cfg, []string{"FaBeer"})
	assert.ErrorIs(t, err, component.ErrCreateComponents)
}

func TestAddFlow_UnknownPackage(t *testing.T) {
	cfg := testConfig(t)
	flow := addFlow{prompt: &scriptedPrompter{}, out: &bytes.Buffer{}, pkg: "zz"}
	err := flow.run(context.Background(), cfg, []string{"ZzIcon"})

	var unknown *commands.UnknownPackageError
	assert.ErrorAs(t, err, &unknown)
}

func TestAddFlow_SkipsExisting(t *testing.T) {
	cfg := testConfig(t)
	flow := addFlow{prompt: &scriptedPrompter{}, out: &bytes.Buffer{}, pkg: "fa", yes: true}
	require.NoError(t, flow.run(context.Background(), cfg, []string{"FaBeer"}))

	var out bytes.Buffer
	flow.out = &out
	require.NoError(t, flow.run(context.Background(), cfg, []string{"FaBeer"}))
	assert.Equal(t, "Skipped FaBeer (already in "+cfg.Destination+")\nDone\n", out.String())
}

func TestPackageChoices(t *testing.T) {
	pkgs := []manifest.Package{{ID: "fa", Name: "Font Awesome 5"}, {ID: "hi2", Name: "Heroicons 2"}}
	choices := packageChoices(pkgs)
	require.Len(t, choices, 2)
	assert.Equal(t, tui.Choice{Name: "fa   Font Awesome 5", Value: "fa"}, choices[0])
	assert.Equal(t, "hi2", choices[1].Value)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(manifest.ErrNodeModulesNotFound))
}
