package tui

import "strings"

// DefaultPageSize is the number of rows shown when a prompt does not set one.
const DefaultPageSize = 7

// Page is the visible window of a longer list of rendered lines.
type Page struct {
	Lines []string // rows inside the window
	Start int      // index of Lines[0] in the full list
	Total int      // length of the full list
}

// Paginate returns a window of at most pageSize lines that keeps active
// visible. The window is centered on active where possible and pinned to the
// ends of the list otherwise. Lists no longer than pageSize are returned
// whole. A non-positive pageSize selects DefaultPageSize.
func Paginate(lines []string, active, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(lines)
	if total <= pageSize {
		return Page{Lines: lines, Start: 0, Total: total}
	}

	if active < 0 {
		active = 0
	}
	if active >= total {
		active = total - 1
	}

	start := active - pageSize/2
	if start < 0 {
		start = 0
	}
	if maxStart := total - pageSize; start > maxStart {
		start = maxStart
	}
	return Page{
		Lines: lines[start : start+pageSize],
		Start: start,
		Total: total,
	}
}

// HasAbove reports whether rows exist before the window.
func (p Page) HasAbove() bool { return p.Start > 0 }

// HasBelow reports whether rows exist after the window.
func (p Page) HasBelow() bool { return p.Start+len(p.Lines) < p.Total }

// String joins the window rows with newlines.
func (p Page) String() string {
	return strings.Join(p.Lines, "\n")
}
