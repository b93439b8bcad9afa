package paths_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruminaider/ric/internal/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactIconsDir(t *testing.T) {
	assert.Equal(t, filepath.Join("node_modules", "react-icons"), paths.ReactIconsDir(paths.DefaultNodeModules))
}

func TestManifestFiles(t *testing.T) {
	files := paths.ManifestFiles("nm")
	require.Len(t, files, 2)
	assert.True(t, strings.HasSuffix(files[0], "iconsManifest.mjs"))
	assert.True(t, strings.HasSuffix(files[1], filepath.Join("esm", "iconsManifest.js")))
}

func TestPackageDir(t *testing.T) {
	assert.Equal(t, filepath.Join("nm", "react-icons", "fa"), paths.PackageDir("nm", "fa"))
}

func TestTypesFile(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.TypesFile("pkg"), "index.d.ts"))
}

func TestSourceFiles(t *testing.T) {
	files := paths.SourceFiles("pkg")
	require.Len(t, files, 2)
	assert.True(t, strings.HasSuffix(files[0], "index.mjs"))
	assert.True(t, strings.HasSuffix(files[1], "index.esm.js"))
}

func TestPackageJSON(t *testing.T) {
	assert.Equal(t, filepath.Join("nm", "react-icons", "package.json"), paths.PackageJSON("nm"))
}
