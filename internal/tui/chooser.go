package tui

import (
	"context"
	"io"

	"composectl/internal/compose"
	"composectl/internal/errors"
	"composectl/internal/log"

	tea "github.com/charmbracelet/bubbletea"
)

// Chooser implements compose.Chooser with an interactive terminal list.
type Chooser struct {
	in  io.Reader
	out io.Writer
}

// NewChooser returns a Chooser reading keys from in and drawing to out.
// Nil streams mean the process's own terminal.
func NewChooser(in io.Reader, out io.Writer) *Chooser {
	return &Chooser{in: in, out: out}
}

// Choose runs the picker until the user chooses or dismisses.
func (c *Chooser) Choose(ctx context.Context, prompt string, items []compose.Item) (int, bool, error) {
	if len(items) == 0 {
		return -1, false, nil
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.in != nil {
		opts = append(opts, tea.WithInput(c.in))
	}
	if c.out != nil {
		opts = append(opts, tea.WithOutput(c.out))
	}

	final, err := tea.NewProgram(NewModel(prompt, items), opts...).Run()
	if err != nil {
		if ctx.Err() != nil {
			return -1, false, ctx.Err()
		}
		return -1, false, errors.Wrap(err, "running chooser")
	}

	m, ok := final.(*Model)
	if !ok {
		return -1, false, errors.New("unexpected chooser model")
	}
	idx, chosen := m.Choice()
	log.LogWithFields(log.F("prompt", prompt), log.F("index", idx)).Debug("Chooser closed")
	return idx, chosen, nil
}
