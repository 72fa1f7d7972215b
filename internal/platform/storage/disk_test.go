package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStorage_SaveCreatesFolder(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")
	s := NewDiskStorage(root, "")

	p, err := s.Save(context.Background(), "usuario_1_1700000000000.png", strings.NewReader("png"))

	require.NoError(t, err)
	assert.Equal(t, "uploads/perfiles/usuario_1_1700000000000.png", p)
	b, err := os.ReadFile(filepath.Join(root, "perfiles", "usuario_1_1700000000000.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(b))
}

func TestDiskStorage_SaveStripsDirectories(t *testing.T) {
	root := t.TempDir()
	s := NewDiskStorage(root, "uploads")

	p, err := s.Save(context.Background(), "../../evil.png", strings.NewReader("x"))

	require.NoError(t, err)
	assert.Equal(t, "uploads/perfiles/evil.png", p)
	assert.FileExists(t, filepath.Join(root, "perfiles", "evil.png"))
}

func TestDiskStorage_Delete(t *testing.T) {
	root := t.TempDir()
	s := NewDiskStorage(root, "uploads")
	p, err := s.Save(context.Background(), "a.png", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), p))
	assert.NoFileExists(t, filepath.Join(root, "perfiles", "a.png"))

	// deleting twice is fine
	assert.NoError(t, s.Delete(context.Background(), p))
}

func TestDiskStorage_DeleteIgnoresForeignPaths(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(t.TempDir(), "keep.png")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))
	s := NewDiskStorage(root, "uploads")

	assert.NoError(t, s.Delete(context.Background(), "imagenes/perfil-default.png"))
	assert.NoError(t, s.Delete(context.Background(), "https://cdn.example.com/p.png"))
	assert.NoError(t, s.Delete(context.Background(), "uploads/../../"+filepath.Base(outside)))
	assert.FileExists(t, outside)
}
