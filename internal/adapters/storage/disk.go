package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	pkglog "github.com/legal-connect/backend/pkg/log"
)

var (
	ErrTooLarge        = errors.New("file exceeds size limit")
	ErrUnsupportedType = errors.New("only jpeg, png and pdf files are allowed")
)

var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

// Store persists uploaded documents and hands back stable
// repository-relative references.
type Store interface {
	Save(slot string, file *multipart.FileHeader) (string, error)
	Delete(ref string) error
	Cleanup(refs []string)
}

type diskStore struct {
	dir      string
	maxBytes int64
	logger   pkglog.Logger
}

// NewDiskStore roots a Store at dir, creating it if needed.
func NewDiskStore(dir string, maxBytes int64, logger pkglog.Logger) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &diskStore{dir: dir, maxBytes: maxBytes, logger: logger}, nil
}

func (s *diskStore) Save(slot string, file *multipart.FileHeader) (string, error) {
	if file.Size > s.maxBytes {
		return "", ErrTooLarge
	}
	if !allowedContentTypes[file.Header.Get("Content-Type")] {
		return "", ErrUnsupportedType
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("%s-%d-%s%s", slot, time.Now().UnixMilli(), uuid.NewString()[:8], filepath.Ext(file.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}
	return path.Join(filepath.Base(s.dir), name), nil
}

func (s *diskStore) Delete(ref string) error {
	// Refs are stored as "<dir>/<name>"; only the name is trusted, which
	// keeps a crafted ref from escaping the upload root.
	return os.Remove(filepath.Join(s.dir, filepath.Base(ref)))
}

// Cleanup removes the given references in the background. Deletions are
// best-effort: each is retried briefly and a final failure only logs.
func (s *diskStore) Cleanup(refs []string) {
	for _, ref := range refs {
		go func(ref string) {
			bo := backoff.NewExponentialBackOff()
			bo.MaxElapsedTime = 10 * time.Second
			err := backoff.Retry(func() error {
				if err := s.Delete(ref); err != nil && !errors.Is(err, os.ErrNotExist) {
					return err
				}
				return nil
			}, bo)
			if err != nil {
				s.logger.Warn().Err(err).Str("ref", ref).Msg("document cleanup failed")
			}
		}(ref)
	}
}
