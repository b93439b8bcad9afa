package commands

import (
	"github.com/ruminaider/ric/internal/icons"
	"github.com/ruminaider/ric/internal/manifest"
	"github.com/ruminaider/ric/internal/paths"
)

// ListPackages returns the icon packages installed under nodeModules.
func ListPackages(nodeModules string) ([]manifest.Package, error) {
	return manifest.Load(nodeModules)
}

// ListIcons returns the icon names of one installed package. The package id
// must appear in the manifest.
func ListIcons(nodeModules, pkg string) ([]string, error) {
	pkgs, err := manifest.Load(nodeModules)
	if err != nil {
		return nil, err
	}
	if _, ok := manifest.Find(pkgs, pkg); !ok {
		return nil, NewUnknownPackageError(pkg, manifest.IDs(pkgs))
	}
	return icons.Names(paths.PackageDir(nodeModules, pkg))
}
