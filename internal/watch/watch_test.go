package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolvesAbsolutePath(t *testing.T) {
	w, err := New("config.json", func(context.Context, string) {})
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(w.Path()))
	assert.Equal(t, "config.json", filepath.Base(w.Path()))
	assert.Equal(t, DefaultDebounce, w.debounce)
}

func TestRunDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	var calls atomic.Int32
	changed := make(chan string, 4)
	w, err := New(path, func(_ context.Context, p string) {
		calls.Add(1)
		changed <- p
	}, WithDebounce(100*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`{"title":"x"}`), 0o600))
		time.Sleep(10 * time.Millisecond)
	}
	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o600))

	select {
	case p := <-changed:
		assert.Equal(t, w.Path(), p)
	case <-time.After(3 * time.Second):
		t.Fatal("expected change callback")
	}

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestRunMissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "missing", "config.json"), func(context.Context, string) {})
	require.NoError(t, err)
	err = w.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch directory")
}
