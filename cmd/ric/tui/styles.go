package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSky      = lipgloss.Color(flavor.Sky().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Glyphs used by the prompts.
const (
	pointerGlyph      = "❯"
	arrowGlyph        = "→"
	circleGlyph       = "◯"
	circleFilledGlyph = "◉"
	pendingPrefix     = "?"
	donePrefix        = "✔"
	canceledPrefix    = "✖"
)

// Prompt header styles.
var (
	// PendingPrefixStyle marks a prompt waiting for input.
	PendingPrefixStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	// DonePrefixStyle marks a resolved prompt.
	DonePrefixStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	// CanceledPrefixStyle marks an aborted prompt.
	CanceledPrefixStyle = lipgloss.NewStyle().
				Foreground(colorRed)

	// MessageStyle is used for the prompt question.
	MessageStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	// AnswerStyle shows the resolved value after confirm.
	AnswerStyle = lipgloss.NewStyle().
			Foreground(colorSky)
)

// List styles.
var (
	// ActiveStyle highlights the row under the cursor.
	ActiveStyle = lipgloss.NewStyle().
			Foreground(colorSky)

	// CheckedStyle colors a filled checkbox.
	CheckedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	// DimStyle is used for hints, the search line and scroll markers.
	DimStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// HelpKeyStyle highlights key names in the help tip.
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(colorSky).
			Bold(true)
)
