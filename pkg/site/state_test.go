package site

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetState(t *testing.T) {
	t.Helper()
	global.current.Store(nil)
	t.Cleanup(func() { global.current.Store(nil) })
}

func TestCurrentBeforeInit(t *testing.T) {
	resetState(t)
	_, err := Current()
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.False(t, Initialized())
}

func TestInitOnce(t *testing.T) {
	resetState(t)
	require.NoError(t, Init(Default()))
	assert.True(t, Initialized())

	other := Default()
	other.Title = "Other"
	assert.ErrorIs(t, Init(other), ErrAlreadyInitialized)

	got, err := Current()
	require.NoError(t, err)
	assert.Equal(t, "Sam Does Blogs", got.Title)
}

func TestInitRejectsInvalidConfig(t *testing.T) {
	resetState(t)
	cfg := Default()
	cfg.PostsPerPage = 0

	err := Init(cfg)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.False(t, Initialized())
}

func TestCurrentReturnsCopies(t *testing.T) {
	resetState(t)
	require.NoError(t, Init(Default()))

	a, err := Current()
	require.NoError(t, err)
	a.Menu[0].Label = "Mutated"
	a.Title = "Mutated"

	b, err := Current()
	require.NoError(t, err)
	assert.Equal(t, "Articles", b.Menu[0].Label)
	assert.Equal(t, "Sam Does Blogs", b.Title)
}

func TestConcurrentReaders(t *testing.T) {
	resetState(t)
	require.NoError(t, Init(Default()))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cfg, err := Current()
			assert.NoError(t, err)
			assert.Equal(t, 4, cfg.PostsPerPage)
		}()
	}
	wg.Wait()
}

func TestHoldersAreIndependent(t *testing.T) {
	resetState(t)
	var a, b Holder
	require.NoError(t, a.Init(Default()))
	assert.True(t, a.Initialized())
	assert.False(t, b.Initialized())
	assert.False(t, Initialized())

	_, err := b.Current()
	assert.ErrorIs(t, err, ErrNotInitialized)
}
