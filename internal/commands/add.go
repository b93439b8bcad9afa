package commands

import (
	"fmt"
	"strings"

	"github.com/ruminaider/ric/internal/codegen"
	"github.com/ruminaider/ric/internal/component"
	"github.com/ruminaider/ric/internal/debug"
	"github.com/ruminaider/ric/internal/icons"
	"github.com/ruminaider/ric/internal/paths"
)

// AddOptions selects the icons to generate and where they go.
type AddOptions struct {
	NodeModules string
	Package     string
	Icons       []string
	Destination string
	// Force regenerates icons already exported from Destination.
	Force bool
}

// AddResult reports what Add did.
type AddResult struct {
	Written []string
	Skipped []string
	// Created is true when Destination did not exist before.
	Created bool
}

// Add generates a component for each requested icon and writes them to the
// destination file. Icons the destination already exports are skipped unless
// Force is set.
func Add(opts AddOptions) (*AddResult, error) {
	result := &AddResult{Written: []string{}, Skipped: []string{}}
	if len(opts.Icons) == 0 {
		return result, nil
	}

	existing, err := component.Exported(opts.Destination)
	if err != nil {
		return nil, err
	}

	var names []string
	seen := make(map[string]bool, len(opts.Icons))
	for _, name := range opts.Icons {
		if seen[name] {
			continue
		}
		seen[name] = true
		if existing[name] && !opts.Force {
			result.Skipped = append(result.Skipped, name)
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return result, nil
	}

	trees, err := icons.Trees(paths.PackageDir(opts.NodeModules, opts.Package), names)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	for i, tree := range trees {
		src, err := codegen.Component(names[i], codegen.SVG(tree))
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", names[i], err)
		}
		b.WriteString(src)
	}

	created, err := component.Write(opts.Destination, b.String())
	if err != nil {
		return nil, err
	}
	result.Written = names
	result.Created = created
	debug.Log("add", "package", opts.Package, "written", len(names), "skipped", len(result.Skipped))
	return result, nil
}
