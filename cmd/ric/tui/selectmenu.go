package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// SelectConfig configures a single-select prompt.
type SelectConfig struct {
	Message  string
	Choices  []Choice
	PageSize int // DefaultPageSize when zero
}

// SelectModel is a searchable one-of-N picker. Typing letters or digits
// narrows the list, arrows move the cursor and enter resolves with the value
// of the active row.
type SelectModel struct {
	message  string
	pageSize int
	keys     KeyMap
	list     searchList
	status   Status
	canceled bool
	value    string
	showHint bool // "(Use arrow keys)" until the first key press
	width    int
}

// NewSelectModel creates a pending single-select prompt with an empty query
// and the first candidate active.
func NewSelectModel(cfg SelectConfig) SelectModel {
	return SelectModel{
		message:  cfg.Message,
		pageSize: cfg.PageSize,
		keys:     DefaultKeyMap(),
		list:     newSearchList(cfg.Choices),
		status:   StatusPending,
		showHint: true,
	}
}

func (m SelectModel) Init() tea.Cmd { return nil }

// Update applies one message. Key presses go through HandleKey; once the
// prompt is done or canceled every further message is ignored.
func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (m *SelectModel) HandleKey(msg tea.KeyMsg) {
	if m.finished() {
		return
	}
	m.showHint = false

	action := m.keys.Classify(msg, false)
	switch action.Kind {
	case ActionAbort:
		m.canceled = true
	case ActionConfirm:
		if c, ok := m.list.current(); ok {
			m.value = c.Value
			m.status = StatusDone
		}
	case ActionMoveUp:
		m.list.move(-1)
	case ActionMoveDown:
		m.list.move(+1)
	case ActionDeleteChar:
		m.list.deleteChar()
	case ActionAppendChar:
		m.list.appendText(action.Text)
	}
}

// View renders the whole prompt.
func (m SelectModel) View() string {
	message := MessageStyle.Render(m.message)

	if m.status == StatusDone {
		return DonePrefixStyle.Render(donePrefix) + " " + message + " " + AnswerStyle.Render(m.value) + "\n"
	}
	if m.canceled {
		return CanceledPrefixStyle.Render(canceledPrefix) + " " + message + " " + DimStyle.Render("canceled") + "\n"
	}

	if m.showHint {
		message += DimStyle.Render(" (Use arrow keys)")
	}

	lines := make([]string, len(m.list.visible))
	for i, c := range m.list.visible {
		lines[i] = RenderSelectItem(c, i == m.list.active)
	}
	page := Paginate(lines, m.list.active, m.pageSize)

	var b strings.Builder
	b.WriteString(PendingPrefixStyle.Render(pendingPrefix) + " " + message + "\n")
	b.WriteString(RenderSearchLine(m.list.query) + "\n")
	b.WriteString(RenderPage(page))
	return truncateLines(b.String(), m.width)
}

// Value returns the chosen value and true once the prompt is done.
func (m SelectModel) Value() (string, bool) {
	if m.status != StatusDone {
		return "", false
	}
	return m.value, true
}

// Status returns the prompt status.
func (m SelectModel) Status() Status { return m.status }

// Canceled reports whether the prompt was aborted before confirm.
func (m SelectModel) Canceled() bool { return m.canceled }

// Query returns the current search text.
func (m SelectModel) Query() string { return m.list.query }

// Active returns the index of the highlighted row in the visible list.
func (m SelectModel) Active() int { return m.list.active }

// Visible returns the choices that match the current query.
func (m SelectModel) Visible() []Choice { return m.list.visible }

func (m SelectModel) finished() bool {
	return m.status == StatusDone || m.canceled
}
