// Package testutil builds throwaway react-icons installs for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ManifestV5 is a react-icons 5 style manifest module.
const ManifestV5 = `export var IconsManifest = [{"id":"fa","name":"Font Awesome 5","projectUrl":"https://fontawesome.com/","license":"CC BY 4.0 License","licenseUrl":"https://creativecommons.org/licenses/by/4.0/"},{"id":"md","name":"Material Design icons","projectUrl":"http://google.github.io/material-design-icons/","license":"Apache License Version 2.0","licenseUrl":"https://github.com/google/material-design-icons/blob/master/LICENSE"}]`

// FaTypes is the fa/index.d.ts fixture.
const FaTypes = `// THIS FILE IS AUTO GENERATED
import type { IconType } from '../lib/index'
export declare const FaBeerMugEmpty: IconType;
export declare const FaBeer: IconType;
export declare const FaBell: IconType;
`

// FaSource is the fa/index.mjs fixture. FaBeerMugEmpty comes first so a
// prefix match on "FaBeer" would pick the wrong icon.
const FaSource = `// THIS FILE IS AUTO GENERATED
import { GenIcon } from '../lib/index.mjs';
export function FaBeerMugEmpty (props) {
  return GenIcon({"tag":"svg","attr":{"viewBox":"0 0 512 512"},"child":[{"tag":"path","attr":{"d":"M0 0h1"},"child":[]}]})(props);
};
export function FaBeer (props) {
  return GenIcon({"tag":"svg","attr":{"viewBox":"0 0 448 512","fill":"none"},"child":[{"tag":"path","attr":{"d":"M368 96h-48V56"},"child":[]},{"tag":"g","attr":{},"child":[{"tag":"circle","attr":{"cx":"12","cy":"12","r":"3"},"child":[]}]}]})(props);
};
export function FaBell (props) {
  return GenIcon({"tag":"svg","attr":{"viewBox":"0 0 448 512"},"child":[{"tag":"path","attr":{"d":"M224 512c35"},"child":[]}]})(props);
};
`

// MdTypes is the md/index.d.ts fixture.
const MdTypes = `export declare const MdHome: IconType;
`

// MdSource is the md/index.esm.js fixture (react-icons 4 layout).
const MdSource = `export function MdHome (props) {
  return GenIcon({"tag":"svg","attr":{"viewBox":"0 0 24 24"},"child":[{"tag":"path","attr":{"d":"M10 20v-6h4v6"},"child":[]}]})(props);
};
`

// NodeModules creates <root>/node_modules/react-icons with the fa and md
// packages and returns the node_modules path.
func NodeModules(t *testing.T, root string) string {
	t.Helper()
	nm := filepath.Join(root, "node_modules")
	ri := filepath.Join(nm, "react-icons")
	WriteFile(t, filepath.Join(ri, "package.json"), `{"name":"react-icons","version":"5.2.1"}`)
	WriteFile(t, filepath.Join(ri, "lib", "iconsManifest.mjs"), ManifestV5)
	WriteFile(t, filepath.Join(ri, "fa", "index.d.ts"), FaTypes)
	WriteFile(t, filepath.Join(ri, "fa", "index.mjs"), FaSource)
	WriteFile(t, filepath.Join(ri, "md", "index.d.ts"), MdTypes)
	WriteFile(t, filepath.Join(ri, "md", "index.esm.js"), MdSource)
	return nm
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
