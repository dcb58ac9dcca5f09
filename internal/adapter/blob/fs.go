// Package blob stores photo files on the local filesystem.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// FSStore keeps blobs under a base directory; keys are slash-separated
// relative paths such as "<plantId>/<uuid>.jpg".
type FSStore struct {
	baseDir   string
	publicURL string
}

// NewFSStore creates the base directory if needed. publicURL is the URL
// prefix the base directory is served under.
func NewFSStore(baseDir, publicURL string) (*FSStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob directory %s: %w", baseDir, err)
	}
	return &FSStore{
		baseDir:   baseDir,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Dir returns the base directory, for static file serving.
func (s *FSStore) Dir() string { return s.baseDir }

// Ping reports whether the base directory is still present.
func (s *FSStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.baseDir)
	if err != nil {
		return fmt.Errorf("stat blob directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("blob directory %s is not a directory", s.baseDir)
	}
	return nil
}

// Put writes r to key. The file appears atomically: content is written to a
// temporary file in the target directory and then renamed.
func (s *FSStore) Put(ctx context.Context, key string, r io.Reader) error {
	target, err := s.path(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create blob directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp blob: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("write blob %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close blob %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("store blob %s: %w", key, err)
	}
	return nil
}

// Delete removes key. A missing blob is not an error.
func (s *FSStore) Delete(ctx context.Context, key string) error {
	target, err := s.path(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete blob %s: %w", key, err)
	}
	return nil
}

// URL returns the public URL of key.
func (s *FSStore) URL(key string) string {
	return s.publicURL + "/" + strings.TrimLeft(key, "/")
}

// path resolves key inside the base directory, rejecting keys that would
// escape it.
func (s *FSStore) path(key string) (string, error) {
	clean := path.Clean("/" + key)[1:]
	if key == "" || clean == "" || clean != key || strings.Contains(key, "\\") {
		return "", domain.NewValidationError("storage_path", "invalid blob key")
	}
	return filepath.Join(s.baseDir, filepath.FromSlash(clean)), nil
}
