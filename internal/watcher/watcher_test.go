package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherSignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.dart")
	require.NoError(t, os.WriteFile(path, []byte("void main() {}\n"), 0o600))

	w, err := New(Config{Path: path, DebounceDur: 20 * time.Millisecond})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	changes, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("void main() { x(); }\n"), 0o600))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change signal after write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.dart")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	w, err := New(Config{Path: path, DebounceDur: 20 * time.Millisecond})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	changes, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.dart"), []byte("y"), 0o600))

	select {
	case <-changes:
		t.Fatal("unrelated file must not signal")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestIsRelevantEvent(t *testing.T) {
	w := &Watcher{path: "/tmp/a/main.dart"}

	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"write to watched file", fsnotify.Event{Name: "/tmp/a/main.dart", Op: fsnotify.Write}, true},
		{"create of watched file", fsnotify.Event{Name: "/tmp/a/main.dart", Op: fsnotify.Create}, true},
		{"rename of watched file", fsnotify.Event{Name: "/tmp/a/main.dart", Op: fsnotify.Rename}, true},
		{"write to other file", fsnotify.Event{Name: "/tmp/a/other.dart", Op: fsnotify.Write}, false},
		{"chmod of watched file", fsnotify.Event{Name: "/tmp/a/main.dart", Op: fsnotify.Chmod}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.isRelevantEvent(tt.ev))
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/x/y.dart")
	assert.Equal(t, "/x/y.dart", cfg.Path)
	assert.Equal(t, 300*time.Millisecond, cfg.DebounceDur)
}
