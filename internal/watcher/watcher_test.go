package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/shellview/internal/config"
)

func TestFileWatcherDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shape.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0644))

	fw, err := NewFileWatcher(50 * time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 8)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("a: 2\n"), 0644))
	}

	select {
	case got := <-changed:
		want, _ := filepath.Abs(path)
		assert.Equal(t, want, got)
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}

	// The burst collapses into a single callback.
	select {
	case extra := <-changed:
		t.Fatalf("unexpected second callback for %s", extra)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestFileWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shape.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	fw, err := NewFileWatcher(10 * time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 1)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644))

	select {
	case got := <-changed:
		t.Fatalf("sibling write reported as %s", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchConfigDeliversShape(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shellview.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shape:\n  a: 1.1\n"), 0644))

	r, err := WatchConfig(path, config.WatchConfig{Enabled: true, Debounce: 20 * time.Millisecond})
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, os.WriteFile(path, []byte("shape:\n  a: 1.0\n  row_segments: 8\n"), 0644))

	select {
	case shape := <-r.Shapes():
		assert.Equal(t, 1.0, shape.A)
		assert.Equal(t, 8, shape.RowSegments)
		// Unset fields keep their defaults.
		assert.Equal(t, 40, shape.ColumnSegments)
	case <-time.After(3 * time.Second):
		t.Fatal("no shape delivered")
	}
}

func TestWatchConfigSkipsBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shellview.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shape: {}\n"), 0644))

	r, err := WatchConfig(path, config.WatchConfig{Enabled: true, Debounce: 20 * time.Millisecond})
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, os.WriteFile(path, []byte("shape: [not, a, map\n"), 0644))

	select {
	case shape := <-r.Shapes():
		t.Fatalf("unexpected shape %+v", shape)
	case <-time.After(300 * time.Millisecond):
	}
}
