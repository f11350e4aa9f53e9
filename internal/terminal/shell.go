package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"composectl/internal/errors"
	"composectl/internal/log"
	"composectl/internal/tui/styles"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Title is the header Show prints before the first command output.
const Title = "Docker Compose"

type job struct {
	ctx  context.Context
	file *syntax.File
	text string
	show bool
	sync chan struct{}
}

// Shell is a long-lived shell session. Lines run one at a time in the
// order they were sent, and state such as the working directory carries
// over from one line to the next. Exit statuses are logged, not returned.
type Shell struct {
	runner *interp.Runner
	parser *syntax.Parser
	out    io.Writer

	queue chan job
	done  chan struct{}

	mu     sync.Mutex
	closed bool
	shown  bool
}

// Option configures a Shell.
type Option func(*shellOptions)

type shellOptions struct {
	dir    string
	env    []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// WithDir sets the initial working directory.
func WithDir(dir string) Option {
	return func(o *shellOptions) { o.dir = dir }
}

// WithEnv appends KEY=value pairs to the inherited environment.
func WithEnv(env ...string) Option {
	return func(o *shellOptions) { o.env = append(o.env, env...) }
}

// WithStdio replaces the process's standard streams.
func WithStdio(in io.Reader, out, errOut io.Writer) Option {
	return func(o *shellOptions) {
		o.stdin, o.stdout, o.stderr = in, out, errOut
	}
}

// NewShell starts a shell session.
func NewShell(opts ...Option) (*Shell, error) {
	o := shellOptions{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	environ := append(os.Environ(), o.env...)
	runner, err := interp.New(
		interp.Dir(o.dir),
		interp.Env(expand.ListEnviron(environ...)),
		interp.StdIO(o.stdin, o.stdout, o.stderr),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create shell")
	}

	s := &Shell{
		runner: runner,
		parser: syntax.NewParser(),
		out:    o.stdout,
		queue:  make(chan job, 16),
		done:   make(chan struct{}),
	}
	go s.loop()
	return s, nil
}

// SendText queues text for execution. It fails when text does not parse or
// the shell has been closed.
func (s *Shell) SendText(ctx context.Context, text string) error {
	file, err := s.parser.Parse(strings.NewReader(text), "")
	if err != nil {
		return errors.Wrapf(err, "cannot parse %q", text)
	}
	return s.enqueue(job{ctx: ctx, file: file, text: text})
}

// Show prints the session header once, ahead of any output of lines sent
// after it.
func (s *Shell) Show() {
	s.mu.Lock()
	if s.shown {
		s.mu.Unlock()
		return
	}
	s.shown = true
	s.mu.Unlock()

	if err := s.enqueue(job{show: true}); err != nil {
		log.Debug("Show after close ignored")
	}
}

func (s *Shell) enqueue(j job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.ErrTerminalClosed
	}
	s.queue <- j
	return nil
}

func (s *Shell) loop() {
	defer close(s.done)
	for j := range s.queue {
		if j.sync != nil {
			close(j.sync)
			continue
		}
		if j.show {
			fmt.Fprintln(s.out, styles.Theme.Banner.Render(Title))
			continue
		}
		s.run(j)
	}
}

func (s *Shell) run(j job) {
	ctx := j.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	logger := log.LogWithFields(log.F("line", j.text))
	logger.Debug("Running line")

	err := s.runner.Run(ctx, j.file)
	status, isExit := interp.IsExitStatus(err)
	switch {
	case err == nil:
	case isExit:
		logger.With(log.F("status", int(status))).Warn("Command exited with non-zero status")
	default:
		logger.WithError(err).Error("Command failed")
	}
}

// Sync waits until every line sent before it has finished.
func (s *Shell) Sync(ctx context.Context) error {
	ch := make(chan struct{})
	if err := s.enqueue(job{sync: ch}); err != nil {
		return err
	}
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dir returns the session's current working directory. It is only
// meaningful while no line is running.
func (s *Shell) Dir() string {
	return s.runner.Dir
}

// Close stops accepting lines and waits for queued ones to finish.
func (s *Shell) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return nil
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	<-s.done
	return nil
}
