package watch

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsSettingsFileChanges(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "config.yaml")

	w, err := New(settings)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()
	assert.True(t, w.IsRunning())

	// Allow a brief moment for fsnotify to initialize watches
	time.Sleep(100 * time.Millisecond)

	// Unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1"), 0644))
	require.NoError(t, os.WriteFile(settings, []byte("docker:\n  compose_build: false\n"), 0644))

	select {
	case change, ok := <-w.Changes():
		require.True(t, ok, "change channel closed unexpectedly")
		assert.Equal(t, w.Path(), change.Path)
		assert.False(t, change.Timestamp.IsZero())
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for settings change")
	}
}

func TestWatcherStartTwice(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	require.NoError(t, w.Start())
	assert.Error(t, w.Start())

	w.Stop()
	assert.False(t, w.IsRunning())
	// Stop is idempotent and the channel is closed
	w.Stop()
	_, ok := <-w.Changes()
	assert.False(t, ok)
}

func TestNewRejectsMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "config.yaml"))
	assert.Error(t, err)
}

type countingReloader struct {
	n atomic.Int32
}

func (c *countingReloader) Reload() error {
	c.n.Add(1)
	return nil
}

func TestFollowReloadsOnChange(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "config.yaml")
	r := &countingReloader{}

	stop, err := Follow(settings, r)
	require.NoError(t, err)
	defer stop()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(settings, []byte("docker: {}\n"), 0644))

	assert.Eventually(t, func() bool { return r.n.Load() > 0 }, 3*time.Second, 20*time.Millisecond)
}
