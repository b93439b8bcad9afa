package tui

import (
	"github.com/charmbracelet/bubbles/key"

	tea "github.com/charmbracelet/bubbletea"
)

// ActionKind is the semantic meaning of a key press inside a prompt.
type ActionKind int

const (
	ActionNoOp ActionKind = iota
	ActionConfirm
	ActionMoveUp
	ActionMoveDown
	ActionToggleCheck // multi-select only
	ActionDeleteChar
	ActionAppendChar
	ActionInvertSelection // multi-select only
	ActionSelectAll       // multi-select only
	ActionAbort
)

// String returns a short name for the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionNoOp:
		return "noop"
	case ActionConfirm:
		return "confirm"
	case ActionMoveUp:
		return "up"
	case ActionMoveDown:
		return "down"
	case ActionToggleCheck:
		return "toggle"
	case ActionDeleteChar:
		return "delete"
	case ActionAppendChar:
		return "append"
	case ActionInvertSelection:
		return "invert"
	case ActionSelectAll:
		return "select-all"
	case ActionAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// Action is the result of classifying one key event. Text carries the
// characters to append for ActionAppendChar and is empty otherwise.
type Action struct {
	Kind ActionKind
	Text string
}

// KeyMap holds the bindings the classifier recognizes.
type KeyMap struct {
	Abort     key.Binding
	Confirm   key.Binding
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	SelectAll key.Binding
	Invert    key.Binding
}

// DefaultKeyMap returns the standard prompt bindings. Letters and digits are
// never bound because they feed the search filter.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("<ctrl+c>", "to cancel"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("<enter>", "to proceed"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("<space>", "to select"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h", "delete"),
			key.WithHelp("<backspace>", "to erase"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("<ctrl+a>", "to toggle all"),
		),
		Invert: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("<tab>", "to invert selection"),
		),
	}
}

// Classify maps one key event to an action. Rules are checked in priority
// order and the first match wins. Multi-select-only actions classify as
// ActionNoOp when multi is false.
func (k KeyMap) Classify(msg tea.KeyMsg, multi bool) Action {
	switch {
	case key.Matches(msg, k.Abort):
		return Action{Kind: ActionAbort}
	case key.Matches(msg, k.Confirm):
		return Action{Kind: ActionConfirm}
	case key.Matches(msg, k.Up):
		return Action{Kind: ActionMoveUp}
	case key.Matches(msg, k.Down):
		return Action{Kind: ActionMoveDown}
	case key.Matches(msg, k.Toggle):
		if !multi {
			return Action{Kind: ActionNoOp}
		}
		return Action{Kind: ActionToggleCheck}
	case key.Matches(msg, k.Delete):
		return Action{Kind: ActionDeleteChar}
	case key.Matches(msg, k.SelectAll):
		if !multi {
			return Action{Kind: ActionNoOp}
		}
		return Action{Kind: ActionSelectAll}
	case key.Matches(msg, k.Invert):
		if !multi {
			return Action{Kind: ActionNoOp}
		}
		return Action{Kind: ActionInvertSelection}
	}

	// Terminals may deliver several characters in one read (fast typing,
	// paste). They are appended together when every one is filterable.
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0 && allAlphanumeric(msg.Runes) {
		return Action{Kind: ActionAppendChar, Text: string(msg.Runes)}
	}
	return Action{Kind: ActionNoOp}
}

func allAlphanumeric(runes []rune) bool {
	for _, r := range runes {
		if !isAlphanumeric(r) {
			return false
		}
	}
	return true
}

// isAlphanumeric reports whether r is an ASCII letter or digit.
func isAlphanumeric(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
