package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/camaradigital/gabinete-api/internal/logger"
)

// LocalStore keeps uploaded files on the local filesystem under a fixed
// directory. This is the default backend.
type LocalStore struct {
	dir string
	log *log.Logger
}

// NewLocalStore creates a local store rooted at dir, creating it if needed
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	return &LocalStore{
		dir: dir,
		log: logger.Uploads().With("backend", "local"),
	}, nil
}

func (s *LocalStore) Save(ctx context.Context, originalName string, r io.Reader, size int64, contentType string) (string, error) {
	name := GenerateName(originalName)
	target := filepath.Join(s.dir, name)

	dst, err := os.Create(target)
	if err != nil {
		s.log.Error("Failed to create file", "path", target, "error", err)
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(target)
		s.log.Error("Failed to save file", "path", target, "error", err)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	s.log.Debug("File saved", "name", name, "size", size)
	return PublicPath(name), nil
}

func (s *LocalStore) Open(ctx context.Context, object string) (io.ReadCloser, error) {
	// Base strips any path traversal from the requested object name
	f, err := os.Open(filepath.Join(s.dir, filepath.Base(object)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}
