package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltStorePutGet(t *testing.T) {
	t.Parallel()

	store, err := NewBoltStore(filepath.Join(t.TempDir(), "test.db"), "pages")
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Get([]byte("missing"))
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Put([]byte("key"), []byte("value")))

	got, err = store.Get([]byte("key"))
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)

	// Overwrite replaces the previous value.
	require.NoError(t, store.Put([]byte("key"), []byte("value2")))

	got, err = store.Get([]byte("key"))
	require.NoError(t, err)
	assert.Equal(t, []byte("value2"), got)
}

func TestBoltStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test.db")

	store, err := NewBoltStore(path, "pages")
	require.NoError(t, err)
	require.NoError(t, store.Put([]byte("key"), []byte("value")))
	require.NoError(t, store.Close())

	store, err = NewBoltStore(path, "pages")
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Get([]byte("key"))
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)
}
