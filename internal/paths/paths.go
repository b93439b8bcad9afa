package paths

import "path/filepath"

// DefaultNodeModules is the node_modules directory relative to the project root.
const DefaultNodeModules = "node_modules"

// ReactIconsDir returns <nodeModules>/react-icons.
func ReactIconsDir(nodeModules string) string {
	return filepath.Join(nodeModules, "react-icons")
}

// PackageJSON returns <nodeModules>/react-icons/package.json.
func PackageJSON(nodeModules string) string {
	return filepath.Join(ReactIconsDir(nodeModules), "package.json")
}

// ManifestFiles returns the manifest locations to try, newest layout first:
// lib/iconsManifest.mjs (react-icons 5) then lib/esm/iconsManifest.js (4).
func ManifestFiles(nodeModules string) []string {
	root := ReactIconsDir(nodeModules)
	return []string{
		filepath.Join(root, "lib", "iconsManifest.mjs"),
		filepath.Join(root, "lib", "esm", "iconsManifest.js"),
	}
}

// PackageDir returns the directory of one icon package, e.g. react-icons/fa.
func PackageDir(nodeModules, id string) string {
	return filepath.Join(ReactIconsDir(nodeModules), id)
}

// TypesFile returns <pkgDir>/index.d.ts.
func TypesFile(pkgDir string) string {
	return filepath.Join(pkgDir, "index.d.ts")
}

// SourceFiles returns the package module sources to try, newest layout first.
func SourceFiles(pkgDir string) []string {
	return []string{
		filepath.Join(pkgDir, "index.mjs"),
		filepath.Join(pkgDir, "index.esm.js"),
	}
}
