// Package storage persists uploaded profile photos on local disk or in S3.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"storefront_backend/internal/feature/account/usecase"
)

// ProfileFolder is the sub-folder holding profile photos.
const ProfileFolder = "perfiles"

// DiskStorage writes photos below Root/perfiles and reports paths relative
// to the public root, e.g. "uploads/perfiles/usuario_1_1700000000000.png".
type DiskStorage struct {
	// Root is the directory served at /<URLPrefix>.
	Root string
	// URLPrefix is the public mount of Root.
	URLPrefix string
}

var _ usecase.PhotoStorage = (*DiskStorage)(nil)

// NewDiskStorage creates a DiskStorage. An empty urlPrefix means "uploads".
func NewDiskStorage(root, urlPrefix string) *DiskStorage {
	if urlPrefix == "" {
		urlPrefix = "uploads"
	}
	return &DiskStorage{Root: root, URLPrefix: strings.Trim(urlPrefix, "/")}
}

// Save writes content to Root/perfiles/name, creating the folder when absent.
func (s *DiskStorage) Save(ctx context.Context, name string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name = filepath.Base(name)
	dir := filepath.Join(s.Root, ProfileFolder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	dst := filepath.Join(dir, name)
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, content); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write %s: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", err
	}
	return path.Join(s.URLPrefix, ProfileFolder, name), nil
}

// Delete removes a photo saved by Save. Paths outside Root and missing files
// are ignored.
func (s *DiskStorage) Delete(ctx context.Context, p string) error {
	rel, ok := strings.CutPrefix(strings.ReplaceAll(p, `\`, "/"), s.URLPrefix+"/")
	if !ok {
		return nil
	}
	rel = path.Clean("/" + rel)[1:]
	if rel == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.Root, filepath.FromSlash(rel)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
