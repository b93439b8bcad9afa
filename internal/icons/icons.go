// Package icons reads icon names and SVG trees out of an installed
// react-icons package.
package icons

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	json "github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/ruminaider/ric/internal/debug"
	"github.com/ruminaider/ric/internal/paths"
)

var (
	ErrParseIconNames = errors.New("cannot parse icon names")
	ErrParseIconProps = errors.New("cannot parse icon props")
	ErrIconNotFound   = errors.New("icon not found")
)

const declPrefix = "export declare const "

// genIconRe matches one generated icon function and captures its name and the
// JSON tree passed to GenIcon. The source is JavaScript, so it compiles with
// ECMAScript semantics.
var genIconRe = func() *regexp2.Regexp {
	re := regexp2.MustCompile(
		`export function (\w+)(?=\s*\(props\))\s*\(props\)\s*\{\s*return GenIcon\(([\s\S]*?)\)\(props\);`,
		regexp2.ECMAScript,
	)
	re.MatchTimeout = 5 * time.Second
	return re
}()

// IconTree is one element of a generated icon. Attr keeps attribute order as
// it appears in the package source.
type IconTree struct {
	Tag   string                              `json:"tag"`
	Attr  *orderedmap.OrderedMap[string, any] `json:"attr"`
	Child []IconTree                          `json:"child"`
}

// Names returns the icon names exported by the package in pkgDir.
func Names(pkgDir string) ([]string, error) {
	data, err := os.ReadFile(paths.TypesFile(pkgDir))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseIconNames, err)
	}
	return ParseNames(data), nil
}

// ParseNames extracts names from "export declare const Name: IconType;" lines.
func ParseNames(data []byte) []string {
	var names []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		rest, ok := strings.CutPrefix(line, declPrefix)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(rest, ":")
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Trees returns the SVG tree for each of names, in the same order, read from
// the package module source in pkgDir.
func Trees(pkgDir string, names []string) ([]IconTree, error) {
	start := time.Now()
	var (
		src     []byte
		lastErr error
	)
	for _, path := range paths.SourceFiles(pkgDir) {
		data, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		src = data
		debug.Log("icon source", "path", path, "bytes", len(data))
		break
	}
	if src == nil {
		return nil, fmt.Errorf("%w: %w", ErrParseIconProps, lastErr)
	}

	trees, err := ParseTrees(string(src), names)
	debug.LogTiming("icons.Trees", time.Since(start))
	return trees, err
}

// ParseTrees finds the GenIcon call of each name in src and decodes its tree.
func ParseTrees(src string, names []string) ([]IconTree, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	found := make(map[string]string, len(names))
	m, err := genIconRe.FindStringMatch(src)
	for m != nil && err == nil && len(found) < len(want) {
		groups := m.Groups()
		name := groups[1].String()
		if want[name] {
			if _, dup := found[name]; !dup {
				found[name] = groups[2].String()
			}
		}
		m, err = genIconRe.FindNextMatch(m)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseIconProps, err)
	}

	var missing []string
	for _, n := range names {
		if _, ok := found[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrIconNotFound, strings.Join(missing, ", "))
	}

	trees := make([]IconTree, 0, len(names))
	for _, n := range names {
		var tree IconTree
		if err := json.Unmarshal([]byte(found[n]), &tree); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrParseIconProps, n, err)
		}
		trees = append(trees, tree)
	}
	return trees, nil
}
