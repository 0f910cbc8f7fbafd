package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForEvent(t *testing.T, events <-chan string, timeout time.Duration) (string, bool) {
	t.Helper()
	select {
	case p, ok := <-events:
		return p, ok
	case <-time.After(timeout):
		return "", false
	}
}

func TestStartRequiresRoots(t *testing.T) {
	_, _, err := Start(context.Background(), Config{})
	assert.Error(t, err)
}

func TestWatcherEmitsDebouncedPDFEvents(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := Start(ctx, Config{
		Roots:    []string{dir},
		Debounce: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	path := filepath.Join(dir, "bncc.pdf")
	// Write in two chunks so create and write bursts coalesce into one event.
	require.NoError(t, os.WriteFile(path, []byte("chunk one "), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("chunk one chunk two"), 0o644))

	got, ok := waitForEvent(t, events, 5*time.Second)
	require.True(t, ok, "expected an event for the dropped pdf")
	assert.Equal(t, path, got)

	// The burst was coalesced; nothing else should be pending.
	extra, ok := waitForEvent(t, events, 100*time.Millisecond)
	assert.False(t, ok, "unexpected second event %q", extra)
}

func TestWatcherIgnoresUnsupportedFiles(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := Start(ctx, Config{Roots: []string{dir}})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	got, ok := waitForEvent(t, events, 200*time.Millisecond)
	assert.False(t, ok, "unexpected event %q for unsupported file", got)
}

func TestWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "seed.pdf")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := Start(ctx, Config{Roots: []string{dir}, InitialScan: true})
	require.NoError(t, err)

	got, ok := waitForEvent(t, events, time.Second)
	require.True(t, ok)
	assert.Equal(t, existing, got)
}
