package terminal

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Recorder is the dry-run sink: it prints each line instead of running it
// and keeps a copy.
type Recorder struct {
	mu    sync.Mutex
	w     io.Writer
	lines []string
	shows int
}

// NewRecorder returns a Recorder printing to w. A nil w only records.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

func (r *Recorder) SendText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, text)
	if r.w != nil {
		if _, err := fmt.Fprintln(r.w, text); err != nil {
			return err
		}
	}
	return nil
}

func (r *Recorder) Show() {
	r.mu.Lock()
	r.shows++
	r.mu.Unlock()
}

// Lines returns the recorded lines in order.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// Shows returns how many times Show was called.
func (r *Recorder) Shows() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shows
}
