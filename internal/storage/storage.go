package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidPath = errors.New("invalid file path")
)

// Local keeps uploaded files in a single directory on disk.
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("can't create upload dir: %w", err)
	}
	return &Local{dir: dir}, nil
}

// Store writes data under filename and returns the stored path.
func (s *Local) Store(ctx context.Context, data io.Reader, filename string) (string, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("can't create file: %w", err)
	}
	if _, err := io.Copy(f, data); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("can't write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("can't close file: %w", err)
	}
	return path, nil
}

// Delete removes a stored file. Missing files are ignored.
func (s *Local) Delete(_ context.Context, path string) error {
	path, err := s.resolve(filepath.Base(path))
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		zap.L().Error("can't remove file", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}

func (s *Local) Open(_ context.Context, path string) (io.ReadSeekCloser, error) {
	path, err := s.resolve(filepath.Base(path))
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *Local) resolve(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidPath
	}
	return filepath.Join(s.dir, name), nil
}
