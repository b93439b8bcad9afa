// Package component manages the destination file that collects generated
// icon components.
package component

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ruminaider/ric/internal/codegen"
	"github.com/ruminaider/ric/internal/debug"
)

var (
	ErrCreateComponents = errors.New("cannot create components. make sure you have the destination folder")
	ErrUpdateComponents = errors.New("cannot update components. make sure you have the destination folder")
)

const exportPrefix = "export const "

// Exported returns the component names already exported from path. A
// missing file has none.
func Exported(path string) (map[string]bool, error) {
	names := make(map[string]bool)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return names, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		rest, ok := strings.CutPrefix(strings.TrimSpace(sc.Text()), exportPrefix)
		if !ok {
			continue
		}
		if name := identifier(rest); name != "" {
			names[name] = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return names, nil
}

// identifier returns the leading JavaScript identifier of s.
func identifier(s string) string {
	end := strings.IndexFunc(s, func(r rune) bool {
		return !(r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r))
	})
	if end < 0 {
		return s
	}
	return s[:end]
}

// Write appends components to path. When path does not exist it is created
// with the import header first, and created reports true.
func Write(path, components string) (created bool, err error) {
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		if err := os.WriteFile(path, []byte(codegen.Header+components), 0644); err != nil {
			return false, fmt.Errorf("%w: %w", ErrCreateComponents, err)
		}
		debug.Log("destination created", "path", path)
		return true, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrUpdateComponents, err)
	}
	defer f.Close()
	if _, err := f.WriteString(components); err != nil {
		return false, fmt.Errorf("%w: %w", ErrUpdateComponents, err)
	}
	debug.Log("destination updated", "path", path, "bytes", len(components))
	return false, nil
}

// DirExists reports whether the parent directory of path exists.
func DirExists(path string) bool {
	info, err := os.Stat(filepath.Dir(path))
	return err == nil && info.IsDir()
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	return nil
}
