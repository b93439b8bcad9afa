package tui

// Choice is a single entry offered by a prompt. Value identifies the choice
// and is what a prompt resolves with; Name is the label shown to the user.
type Choice struct {
	Name  string
	Value string
}

// Label returns the display text, falling back to Value when Name is empty.
func (c Choice) Label() string {
	if c.Name == "" {
		return c.Value
	}
	return c.Name
}

// ChoicesFromValues builds choices whose label is the value itself.
func ChoicesFromValues(values []string) []Choice {
	choices := make([]Choice, 0, len(values))
	for _, v := range values {
		choices = append(choices, Choice{Name: v, Value: v})
	}
	return choices
}

// Status is the lifecycle state of a prompt.
type Status int

const (
	StatusPending Status = iota
	StatusDone
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusDone:
		return "done"
	default:
		return "unknown"
	}
}
