package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// RenderSelectItem returns one single-select row: a pointer and cursor color
// on the active row, blank padding otherwise.
func RenderSelectItem(c Choice, active bool) string {
	if active {
		return ActiveStyle.Render(pointerGlyph + " " + c.Label())
	}
	return "  " + c.Label()
}

// RenderCheckboxItem returns one multi-select row. Active and checked are
// independent: the arrow and cursor color mark the active row, the filled
// circle marks a checked one.
func RenderCheckboxItem(c Choice, active, checked bool) string {
	box := circleGlyph
	if checked {
		box = CheckedStyle.Render(circleFilledGlyph)
	}
	if active {
		return ActiveStyle.Render(arrowGlyph) + box + " " + ActiveStyle.Render(c.Label())
	}
	return " " + box + " " + c.Label()
}

// RenderSearchLine returns the dim search line shown under the message.
func RenderSearchLine(query string) string {
	return DimStyle.Render(">Search: " + query)
}

// RenderPage renders a paginated window with "more" markers above and below
// when rows are hidden. An empty window renders a placeholder row.
func RenderPage(p Page) string {
	if p.Total == 0 {
		return DimStyle.Render("  (no matches)")
	}
	var b strings.Builder
	if p.HasAbove() {
		b.WriteString(DimStyle.Render("  ↑ more") + "\n")
	}
	b.WriteString(p.String())
	if p.HasBelow() {
		b.WriteString("\n" + DimStyle.Render("  ↓ more"))
	}
	return b.String()
}

// truncateLines cuts every line to width cells. A non-positive width leaves
// the text unchanged.
func truncateLines(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "…")
	}
	return strings.Join(lines, "\n")
}
