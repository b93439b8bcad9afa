package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// CheckboxConfig configures a multi-select prompt.
type CheckboxConfig struct {
	Message  string
	Choices  []Choice
	PageSize int // DefaultPageSize when zero
}

// CheckboxModel is a searchable multi-select picker. The checked set is keyed
// by choice value and survives filter changes, so items can be checked under
// one query and kept while searching for others.
type CheckboxModel struct {
	message     string
	pageSize    int
	keys        KeyMap
	list        searchList
	checked     map[string]bool
	status      Status
	canceled    bool
	showHelpTip bool // cleared for good by the first toggle
	width       int
}

// NewCheckboxModel creates a pending multi-select prompt with nothing checked.
func NewCheckboxModel(cfg CheckboxConfig) CheckboxModel {
	return CheckboxModel{
		message:     cfg.Message,
		pageSize:    cfg.PageSize,
		keys:        DefaultKeyMap(),
		list:        newSearchList(cfg.Choices),
		checked:     make(map[string]bool),
		status:      StatusPending,
		showHelpTip: true,
	}
}

func (m CheckboxModel) Init() tea.Cmd { return nil }

// Update applies one message. Once the prompt is done or canceled every
// further message is ignored.
func (m CheckboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.finished() {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case abortMsg:
		m.canceled = true
		return m, tea.Quit
	case tea.KeyMsg:
		m.HandleKey(msg)
		if m.finished() {
			return m, tea.Quit
		}
	}
	return m, nil
}

// HandleKey classifies msg and performs the resulting transition.
func (m *CheckboxModel) HandleKey(msg tea.KeyMsg) {
	if m.finished() {
		return
	}

	action := m.keys.Classify(msg, true)
	switch action.Kind {
	case ActionAbort:
		m.canceled = true
	case ActionConfirm:
		m.status = StatusDone
	case ActionMoveUp:
		m.list.move(-1)
	case ActionMoveDown:
		m.list.move(+1)
	case ActionToggleCheck:
		m.showHelpTip = false
		if c, ok := m.list.current(); ok {
			m.setChecked(c.Value, !m.checked[c.Value])
		}
	case ActionSelectAll:
		m.toggleAllVisible()
	case ActionInvertSelection:
		for _, c := range m.list.visible {
			m.setChecked(c.Value, !m.checked[c.Value])
		}
	case ActionDeleteChar:
		m.list.deleteChar()
	case ActionAppendChar:
		m.list.appendText(action.Text)
	}
}

// toggleAllVisible checks every visible row, or unchecks them all when they
// are already checked.
func (m *CheckboxModel) toggleAllVisible() {
	all := len(m.list.visible) > 0
	for _, c := range m.list.visible {
		if !m.checked[c.Value] {
			all = false
			break
		}
	}
	for _, c := range m.list.visible {
		m.setChecked(c.Value, !all)
	}
}

// setChecked updates membership without mutating a map shared with earlier
// copies of the model.
func (m *CheckboxModel) setChecked(value string, on bool) {
	if m.checked[value] == on {
		return
	}
	next := make(map[string]bool, len(m.checked)+1)
	for k := range m.checked {
		next[k] = true
	}
	if on {
		next[value] = true
	} else {
		delete(next, value)
	}
	m.checked = next
}

// View renders the whole prompt.
func (m CheckboxModel) View() string {
	message := MessageStyle.Render(m.message)

	if m.status == StatusDone {
		return DonePrefixStyle.Render(donePrefix) + " " + message + " " + AnswerStyle.Render(strings.Join(m.Checked(), ", ")) + "\n"
	}
	if m.canceled {
		return CanceledPrefixStyle.Render(canceledPrefix) + " " + message + " " + DimStyle.Render("canceled") + "\n"
	}

	lines := make([]string, len(m.list.visible))
	for i, c := range m.list.visible {
		lines[i] = RenderCheckboxItem(c, i == m.list.active, m.checked[c.Value])
	}
	page := Paginate(lines, m.list.active, m.pageSize)

	var b strings.Builder
	b.WriteString(PendingPrefixStyle.Render(pendingPrefix) + " " + message)
	if m.showHelpTip {
		b.WriteString(m.helpTip())
	}
	b.WriteString("\n")
	b.WriteString(RenderSearchLine(m.list.query) + "\n")
	b.WriteString(RenderPage(page))
	return truncateLines(b.String(), m.width)
}

func (m CheckboxModel) helpTip() string {
	bindings := []key.Binding{m.keys.Toggle, m.keys.SelectAll, m.keys.Invert, m.keys.Confirm}
	parts := make([]string, 0, len(bindings))
	for i, b := range bindings {
		part := HelpKeyStyle.Render(b.Help().Key) + " " + b.Help().Desc
		if i == len(bindings)-1 {
			part = "and " + part
		}
		parts = append(parts, part)
	}
	return " (Press " + strings.Join(parts, ", ") + ")"
}

// Checked returns the checked values in original candidate order,
// independent of the current query and of the order they were checked in.
// The slice is non-nil even when nothing is checked.
func (m CheckboxModel) Checked() []string {
	out := []string{}
	for _, c := range m.list.candidates {
		if m.checked[c.Value] {
			out = append(out, c.Value)
		}
	}
	return out
}

// IsChecked reports whether value is in the checked set.
func (m CheckboxModel) IsChecked(value string) bool { return m.checked[value] }

// Values returns the checked values and true once the prompt is done.
func (m CheckboxModel) Values() ([]string, bool) {
	if m.status != StatusDone {
		return nil, false
	}
	return m.Checked(), true
}

// Status returns the prompt status.
func (m CheckboxModel) Status() Status { return m.status }

// Canceled reports whether the prompt was aborted before confirm.
func (m CheckboxModel) Canceled() bool { return m.canceled }

// HelpTipVisible reports whether the key reminder is still shown.
func (m CheckboxModel) HelpTipVisible() bool { return m.showHelpTip }

// Query returns the current search text.
func (m CheckboxModel) Query() string { return m.list.query }

// Active returns the index of the highlighted row in the visible list.
func (m CheckboxModel) Active() int { return m.list.active }

// Visible returns the choices that match the current query.
func (m CheckboxModel) Visible() []Choice { return m.list.visible }

func (m CheckboxModel) finished() bool {
	return m.status == StatusDone || m.canceled
}
