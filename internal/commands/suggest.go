package commands

import (
	"fmt"
	"math"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ruminaider/ric/internal/icons"
	"github.com/ruminaider/ric/internal/paths"
)

// UnknownPackageError is returned when a package id is not in the manifest.
type UnknownPackageError struct {
	ID         string
	Known      []string
	Suggestion string
}

// NewUnknownPackageError builds the error for id, suggesting the closest
// known id when one is near.
func NewUnknownPackageError(id string, known []string) *UnknownPackageError {
	return &UnknownPackageError{ID: id, Known: known, Suggestion: suggest(id, known)}
}

func (e *UnknownPackageError) Error() string {
	msg := fmt.Sprintf("unknown icon package %q (available: %s)", e.ID, strings.Join(e.Known, ", "))
	if e.Suggestion != "" {
		msg += fmt.Sprintf("; did you mean %q?", e.Suggestion)
	}
	return msg
}

// UnknownIconError is returned when requested icons are not exported by the
// package. It matches icons.ErrIconNotFound.
type UnknownIconError struct {
	Package     string
	Names       []string
	Suggestions map[string]string
}

func (e *UnknownIconError) Error() string {
	parts := make([]string, len(e.Names))
	for i, n := range e.Names {
		parts[i] = n
		if s := e.Suggestions[n]; s != "" {
			parts[i] += fmt.Sprintf(" (did you mean %s?)", s)
		}
	}
	return fmt.Sprintf("%s in %s: %s", icons.ErrIconNotFound, e.Package, strings.Join(parts, ", "))
}

func (e *UnknownIconError) Unwrap() error { return icons.ErrIconNotFound }

// CheckIcons verifies that pkg exports every name.
func CheckIcons(nodeModules, pkg string, names []string) error {
	all, err := icons.Names(paths.PackageDir(nodeModules, pkg))
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(all))
	for _, n := range all {
		known[n] = true
	}

	var unknown *UnknownIconError
	for _, n := range names {
		if known[n] {
			continue
		}
		if unknown == nil {
			unknown = &UnknownIconError{Package: pkg, Suggestions: make(map[string]string)}
		}
		unknown.Names = append(unknown.Names, n)
		if s := suggest(n, all); s != "" {
			unknown.Suggestions[n] = s
		}
	}
	if unknown != nil {
		return unknown
	}
	return nil
}

// suggest returns the candidate closest to name by edit distance, ignoring
// case, or "" when nothing is within a third of the name's length.
func suggest(name string, candidates []string) string {
	best, score := "", math.MaxInt
	lower := strings.ToLower(name)
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(lower, strings.ToLower(c)); d < score {
			best, score = c, d
		}
	}
	if score > max(2, len(name)/3) {
		return ""
	}
	return best
}
