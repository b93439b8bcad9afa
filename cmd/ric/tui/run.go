package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserCanceled is returned when a prompt ends without a confirm: the user
// pressed ctrl+c or esc, the input stream closed, the process was
// interrupted, or the context was canceled. A confirmed empty selection is
// never reported this way.
var ErrUserCanceled = errors.New("canceled")

// abortMsg tells a prompt its input is gone.
type abortMsg struct{}

type runOptions struct {
	input  io.Reader
	output io.Writer
}

// Option customizes how a prompt is driven.
type Option func(*runOptions)

// WithInput reads key presses from r instead of the terminal. Reaching EOF on
// r cancels the prompt.
func WithInput(r io.Reader) Option {
	return func(o *runOptions) { o.input = r }
}

// WithOutput renders to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(o *runOptions) { o.output = w }
}

// SelectMenu shows a single-select prompt and returns the value of the
// confirmed choice.
func SelectMenu(ctx context.Context, cfg SelectConfig, opts ...Option) (string, error) {
	final, err := run(ctx, NewSelectModel(cfg), opts)
	if err != nil {
		return "", err
	}
	m, ok := final.(SelectModel)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model %T", final)
	}
	value, done := m.Value()
	if !done {
		return "", ErrUserCanceled
	}
	return value, nil
}

// Checkbox shows a multi-select prompt and returns the checked values in
// candidate order. Confirming with nothing checked returns an empty slice and
// a nil error.
func Checkbox(ctx context.Context, cfg CheckboxConfig, opts ...Option) ([]string, error) {
	final, err := run(ctx, NewCheckboxModel(cfg), opts)
	if err != nil {
		return nil, err
	}
	m, ok := final.(CheckboxModel)
	if !ok {
		return nil, fmt.Errorf("unexpected prompt model %T", final)
	}
	values, done := m.Values()
	if !done {
		return nil, ErrUserCanceled
	}
	return values, nil
}

// run drives model until it quits. Events are handled one at a time in
// arrival order by the bubbletea event loop, which also hides the cursor
// while the prompt is live and restores the terminal afterwards.
func run(ctx context.Context, model tea.Model, opts []Option) (tea.Model, error) {
	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}

	teaOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	var in *eofReader
	if o.input != nil {
		in = &eofReader{r: o.input}
		teaOpts = append(teaOpts, tea.WithInput(in))
	}
	if o.output != nil {
		teaOpts = append(teaOpts, tea.WithOutput(o.output))
	}

	p := tea.NewProgram(model, teaOpts...)
	if in != nil {
		in.onEOF = func() { go p.Send(abortMsg{}) }
	}

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return nil, ErrUserCanceled
		}
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	return final, nil
}

// eofReader reports the first io.EOF from the wrapped reader.
type eofReader struct {
	r     io.Reader
	once  sync.Once
	onEOF func()
}

func (e *eofReader) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if errors.Is(err, io.EOF) && e.onEOF != nil {
		e.once.Do(e.onEOF)
	}
	return n, err
}
