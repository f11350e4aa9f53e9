package compose

import (
	"context"
	"fmt"
	"strings"

	"composectl/internal/config"
	"composectl/internal/errors"
	"composectl/internal/log"
)

const (
	detachFlag = "-d"
	buildFlag  = "--build"
)

// Composer turns operations into command lines and sends them.
type Composer struct {
	settings Settings
	terminal Terminal
}

// NewComposer returns a Composer reading flags from settings and sending to
// terminal.
func NewComposer(settings Settings, terminal Terminal) *Composer {
	return &Composer{settings: settings, terminal: terminal}
}

// ChangeDir is the first line of every invocation.
func ChangeDir(folder Folder) string {
	return `cd "` + folder.Path + `"`
}

// Lines composes one command line per operation. The build and detached
// settings are read on every call.
func (c *Composer) Lines(files []File, ops []Operation) ([]string, error) {
	if len(files) == 0 {
		return nil, errors.ErrNoComposeFiles
	}

	tool := strings.TrimSpace(c.settings.String(config.KeyComposeCommand, config.DefaultComposeCommand))
	detached := c.settings.Bool(config.KeyComposeDetached, true)
	build := c.settings.Bool(config.KeyComposeBuild, true)

	base := make([]string, 0, 1+2*len(files))
	base = append(base, tool)
	for _, f := range files {
		if err := CheckQuotable(f.Path); err != nil {
			return nil, err
		}
		base = append(base, "-f", `"`+f.Path+`"`)
	}

	lines := make([]string, 0, len(ops))
	for _, op := range ops {
		if !op.Valid() {
			return nil, errors.NewKind(fmt.Sprintf("invalid operation %s", op), errors.InvalidOperation)
		}
		parts := append(append([]string{}, base...), op.String())
		if op == Up {
			if detached {
				parts = append(parts, detachFlag)
			}
			if build {
				parts = append(parts, buildFlag)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return lines, nil
}

// Run sends the cd line followed by one line per operation, showing the
// terminal after each operation line. Nothing is sent when composition
// fails.
func (c *Composer) Run(ctx context.Context, folder Folder, files []File, ops []Operation) error {
	if err := CheckQuotable(folder.Path); err != nil {
		return err
	}
	lines, err := c.Lines(files, ops)
	if err != nil {
		return err
	}

	if err := c.terminal.SendText(ctx, ChangeDir(folder)); err != nil {
		return errors.Wrap(err, "sending working directory")
	}
	for _, line := range lines {
		log.LogWithFields(log.F("command", line)).Debug("Sending compose command")
		if err := c.terminal.SendText(ctx, line); err != nil {
			return errors.Wrapf(err, "sending %q", line)
		}
		c.terminal.Show()
	}
	return nil
}
