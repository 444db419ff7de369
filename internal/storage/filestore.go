package storage

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore persists uploaded files under a dedicated directory,
// keyed by a generated name that preserves the original extension.
type FileStore struct {
	dir string
}

// NewFileStore creates the upload directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes content to a freshly named file and returns the stored
// path plus the mime type guessed from the original filename.
func (fs *FileStore) Save(content []byte, filename string) (path string, mimeType string, err error) {
	name := uuid.NewString()
	if ext := Extension(filename); ext != "" {
		name += "." + ext
	}
	path = filepath.Join(fs.dir, name)

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", "", fmt.Errorf("write upload: %w", err)
	}

	mimeType = mime.TypeByExtension(filepath.Ext(filename))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return path, mimeType, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (fs *FileStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// Extension returns the lowercased filename extension without the dot.
func Extension(filename string) string {
	ext := filepath.Ext(filename)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
