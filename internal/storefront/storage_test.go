package storefront

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	t.Parallel()

	s := NewMemoryStorage()
	_, err := s.Get(KeyCart)
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(KeyCart, "[]"))
	v, err := s.Get(KeyCart)
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	require.NoError(t, s.Delete(KeyCart))
	require.NoError(t, s.Delete(KeyCart))
	_, err = s.Get(KeyCart)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileStorage_SurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state", "storefront.json")

	s, err := NewFileStorage(path)
	require.NoError(t, err)
	_, err = s.Get(KeyLoggedIn)
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(KeyLoggedIn, "true"))
	require.NoError(t, s.Set(KeyCart, `[{"id":"t1"}]`))
	require.NoError(t, s.Delete(KeyLoggedIn))

	reopened, err := NewFileStorage(path)
	require.NoError(t, err)
	v, err := reopened.Get(KeyCart)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"t1"}]`, v)
	_, err = reopened.Get(KeyLoggedIn)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStorage_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "storefront.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStorage(path)
	assert.Error(t, err)
}

func TestFileStorage_EmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "storefront.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	s, err := NewFileStorage(path)
	require.NoError(t, err)
	_, err = s.Get(KeyCart)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
