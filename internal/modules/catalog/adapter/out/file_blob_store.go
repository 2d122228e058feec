package out

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	catalogout "pustaka/internal/modules/catalog/port/out"
)

type FileBlobStore struct {
	storagePath string
}

func NewFileBlobStore(storagePath string) catalogout.BlobStore {
	return &FileBlobStore{storagePath: storagePath}
}

func (s *FileBlobStore) Put(_ context.Context, kind, sourcePath string) (string, error) {
	src, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer func() { _ = src.Close() }()

	destDir := filepath.Join(s.storagePath, kind)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("create storage dir: %w", err)
	}
	destPath := filepath.Join(destDir, filepath.Base(sourcePath))
	dest, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("create blob: %w", err)
	}
	if _, err := io.Copy(dest, src); err != nil {
		_ = dest.Close()
		return "", fmt.Errorf("copy blob: %w", err)
	}
	if err := dest.Close(); err != nil {
		return "", fmt.Errorf("close blob: %w", err)
	}
	return destPath, nil
}

func (s *FileBlobStore) Remove(_ context.Context, storedPath string) error {
	if err := os.Remove(storedPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}
