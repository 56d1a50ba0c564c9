package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Stager writes uploads into a staging directory under generated names.
type Stager struct {
	dir string
}

// NewStager makes sure dir exists.
func NewStager(dir string) (*Stager, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating upload dir %s: %w", dir, err)
	}
	return &Stager{dir: dir}, nil
}

// Staged is one upload on disk. Close removes it.
type Staged struct {
	Path     string
	Filename string

	once sync.Once
}

// Stage copies the multipart file into the staging directory. The caller must
// Close the result; on error nothing is left behind.
func (s *Stager) Stage(fh *multipart.FileHeader) (*Staged, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	path := filepath.Join(s.dir, name)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("creating staged file: %w", err)
	}

	staged := &Staged{Path: path, Filename: fh.Filename}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		staged.Close()
		return nil, fmt.Errorf("writing staged file: %w", err)
	}
	if err := dst.Close(); err != nil {
		staged.Close()
		return nil, fmt.Errorf("closing staged file: %w", err)
	}

	return staged, nil
}

// Bytes reads the staged file back.
func (s *Staged) Bytes() ([]byte, error) {
	return os.ReadFile(s.Path)
}

// Close deletes the staged file. Safe to call more than once.
func (s *Staged) Close() error {
	var err error
	s.once.Do(func() {
		if rmErr := os.Remove(s.Path); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Warn().Err(rmErr).Str("path", s.Path).Msg("Failed to remove staged upload")
			err = rmErr
		}
	})
	return err
}
