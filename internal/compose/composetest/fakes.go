// Package composetest provides deterministic fakes for the compose
// package's collaborators.
package composetest

import (
	"context"
	"sync"

	"composectl/internal/compose"
	"composectl/internal/config"
	"composectl/internal/errors"
)

// Folders always returns Folder, or Err when set.
type Folders struct {
	Folder compose.Folder
	Err    error
	Calls  int
}

func (f *Folders) PickFolder(ctx context.Context, guidance string) (compose.Folder, error) {
	f.Calls++
	if f.Err != nil {
		return compose.Folder{}, f.Err
	}
	if f.Folder.Path == "" {
		return compose.Folder{}, errors.NewKind(guidance, errors.NoWorkspaceFolder)
	}
	return f.Folder, nil
}

// Finder returns Locations and records every call.
type Finder struct {
	Locations []string
	Err       error

	Calls    int
	Patterns []string
	Limits   []int
}

func (f *Finder) FindFiles(ctx context.Context, folder compose.Folder, pattern string, limit int) ([]string, error) {
	f.Calls++
	f.Patterns = append(f.Patterns, pattern)
	f.Limits = append(f.Limits, limit)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Locations, nil
}

// Chooser picks Pick (an index), or dismisses when Dismiss is set.
type Chooser struct {
	Pick    int
	Dismiss bool
	Err     error

	Calls   int
	Prompts []string
	Items   [][]compose.Item
}

func (c *Chooser) Choose(ctx context.Context, prompt string, items []compose.Item) (int, bool, error) {
	c.Calls++
	c.Prompts = append(c.Prompts, prompt)
	c.Items = append(c.Items, items)
	if c.Err != nil {
		return 0, false, c.Err
	}
	if c.Dismiss {
		return -1, false, nil
	}
	return c.Pick, true, nil
}

// Settings is an in-memory Settings with the real defaults.
type Settings struct {
	ComposeFile            string
	ComposeAdditionalFiles []string
	Build                  *bool
	Detached               *bool
	Command                string

	Reads map[string]int
}

func (s *Settings) read(key string) {
	if s.Reads == nil {
		s.Reads = make(map[string]int)
	}
	s.Reads[key]++
}

func (s *Settings) String(key, def string) string {
	s.read(key)
	var v string
	switch key {
	case config.KeyComposeFile:
		v = s.ComposeFile
	case config.KeyComposeCommand:
		v = s.Command
	}
	if v == "" {
		return def
	}
	return v
}

func (s *Settings) Strings(key string) []string {
	s.read(key)
	if key == config.KeyComposeAdditionalFiles {
		return append([]string(nil), s.ComposeAdditionalFiles...)
	}
	return nil
}

func (s *Settings) Bool(key string, def bool) bool {
	s.read(key)
	var v *bool
	switch key {
	case config.KeyComposeBuild:
		v = s.Build
	case config.KeyComposeDetached:
		v = s.Detached
	}
	if v == nil {
		return def
	}
	return *v
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// Event is one call observed by Terminal.
type Event struct {
	Text string // empty for Show
	Show bool
}

// Terminal records sent lines and Show calls in order.
type Terminal struct {
	mu     sync.Mutex
	Events []Event
	Err    error
}

func (t *Terminal) SendText(ctx context.Context, text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Err != nil {
		return t.Err
	}
	t.Events = append(t.Events, Event{Text: text})
	return nil
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Events = append(t.Events, Event{Show: true})
}

// Lines returns the sent lines without Show events.
func (t *Terminal) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var lines []string
	for _, e := range t.Events {
		if !e.Show {
			lines = append(lines, e.Text)
		}
	}
	return lines
}

// Notifier records messages.
type Notifier struct {
	Messages []string
}

func (n *Notifier) Info(msg string) {
	n.Messages = append(n.Messages, msg)
}

// Env bundles one of each fake.
type Env struct {
	Folders  *Folders
	Finder   *Finder
	Chooser  *Chooser
	Settings *Settings
	Terminal *Terminal
	Notifier *Notifier
}

// NewEnv returns fakes rooted at folder with empty settings.
func NewEnv(folder string) *Env {
	return &Env{
		Folders:  &Folders{Folder: compose.Folder{Name: "project", Path: folder}},
		Finder:   &Finder{},
		Chooser:  &Chooser{},
		Settings: &Settings{},
		Terminal: &Terminal{},
		Notifier: &Notifier{},
	}
}

// Deps returns the fakes as compose.Deps.
func (e *Env) Deps() compose.Deps {
	return compose.Deps{
		Folders:  e.Folders,
		Finder:   e.Finder,
		Chooser:  e.Chooser,
		Settings: e.Settings,
		Terminal: e.Terminal,
		Notifier: e.Notifier,
	}
}

// Commands wires compose.Commands over the fakes.
func (e *Env) Commands() *compose.Commands {
	return compose.NewCommands(e.Deps())
}
