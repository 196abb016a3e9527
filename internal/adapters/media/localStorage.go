// Package media stores uploaded images on the local filesystem.
package media

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofrs/uuid"
)

// LocalStorage writes files below Root. Returned paths use forward slashes
// and are relative to Root so they can be joined onto the media URL.
type LocalStorage struct {
	Root string
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &LocalStorage{Root: root}, nil
}

// Save writes data under dir with a random name. When ext is empty it is
// derived from the content.
func (s *LocalStorage) Save(_ context.Context, dir, ext string, data []byte) (string, error) {
	if ext == "" {
		ext = mimetype.Detect(data).Extension()
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	dir = path.Clean("/" + filepath.ToSlash(dir))[1:]
	if err := os.MkdirAll(filepath.Join(s.Root, filepath.FromSlash(dir)), 0o755); err != nil {
		return "", err
	}

	rel := path.Join(dir, uuid.Must(uuid.NewV4()).String()+ext)
	if err := os.WriteFile(filepath.Join(s.Root, filepath.FromSlash(rel)), data, 0o644); err != nil {
		return "", err
	}
	return rel, nil
}
