package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/hashicorp/go-version"
	"github.com/mattn/go-runewidth"

	"github.com/ruminaider/ric/internal/debug"
	"github.com/ruminaider/ric/internal/paths"
)

var (
	ErrNodeModulesNotFound = errors.New("node_modules folder not found, make sure you are in the root of your project")
	ErrReactIconsNotFound  = errors.New("react-icons package not found. try running 'npm i -D react-icons'")
	ErrManifestNotFound    = errors.New("react-icons manifest not found. try running 'npm i -D react-icons'")
)

// layoutV5 is the first react-icons release that ships lib/iconsManifest.mjs.
var layoutV5 = version.Must(version.NewVersion("5.0.0"))

// exportPrefix precedes the JSON array in the generated manifest module.
const exportPrefix = "export var IconsManifest = "

// Package describes one icon set shipped by react-icons.
type Package struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ProjectURL string `json:"projectUrl"`
	License    string `json:"license"`
	LicenseURL string `json:"licenseUrl"`
}

// Load checks the node_modules layout and reads the react-icons manifest.
func Load(nodeModules string) ([]Package, error) {
	start := time.Now()
	if !dirExists(nodeModules) {
		return nil, ErrNodeModulesNotFound
	}
	if !dirExists(paths.ReactIconsDir(nodeModules)) {
		return nil, ErrReactIconsNotFound
	}

	files := paths.ManifestFiles(nodeModules)
	if v, err := InstalledVersion(nodeModules); err == nil {
		debug.Log("react-icons", "version", v.String())
		if v.LessThan(layoutV5) {
			files[0], files[1] = files[1], files[0]
		}
	}

	var lastErr error
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		pkgs, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrManifestNotFound, path, err)
		}
		debug.Log("manifest loaded", "path", path, "packages", len(pkgs))
		debug.LogTiming("manifest.Load", time.Since(start))
		return pkgs, nil
	}
	return nil, fmt.Errorf("%w: %w", ErrManifestNotFound, lastErr)
}

// InstalledVersion reads the react-icons version from its package.json.
func InstalledVersion(nodeModules string) (*version.Version, error) {
	data, err := os.ReadFile(paths.PackageJSON(nodeModules))
	if err != nil {
		return nil, err
	}
	var pkg struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}
	v, err := version.NewVersion(pkg.Version)
	if err != nil {
		return nil, fmt.Errorf("react-icons version %q: %w", pkg.Version, err)
	}
	return v, nil
}

// Parse decodes the manifest module source: an exported JSON array.
func Parse(data []byte) ([]Package, error) {
	data = bytes.TrimSpace(data)
	data = bytes.TrimPrefix(data, []byte(exportPrefix))
	data = bytes.TrimSuffix(data, []byte(";"))

	var pkgs []Package
	if err := json.Unmarshal(data, &pkgs); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return pkgs, nil
}

// Find returns the package with the given id.
func Find(pkgs []Package, id string) (Package, bool) {
	for _, p := range pkgs {
		if p.ID == id {
			return p, true
		}
	}
	return Package{}, false
}

// IDs returns the package ids in manifest order.
func IDs(pkgs []Package) []string {
	ids := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		ids = append(ids, p.ID)
	}
	return ids
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Labels returns one display label per package: the id padded to the widest
// id, then the package name.
func Labels(pkgs []Package) []string {
	width := 0
	for _, p := range pkgs {
		width = max(width, runewidth.StringWidth(p.ID))
	}
	labels := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		labels = append(labels, runewidth.FillRight(p.ID, width)+"  "+p.Name)
	}
	return labels
}
