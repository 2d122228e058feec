package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"pustaka/internal/modules/plugin/domain"
	pluginout "pustaka/internal/modules/plugin/port/out"
)

const manifestFileName = "plugins.json"

// FileManifestStore reads installed report plugins from
// <library>/plugins/plugins.json. A missing file means no plugins are
// installed; a malformed file is an error, never an empty catalog.
type FileManifestStore struct {
	basePath string
}

func NewFileManifestStore(basePath string) pluginout.ManifestStore {
	return &FileManifestStore{basePath: basePath}
}

func (s *FileManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	path := filepath.Join(s.basePath, "plugins", manifestFileName)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open plugin manifest file: %w", err)
	}
	defer f.Close()

	decoder := json.NewDecoder(f)
	decoder.DisallowUnknownFields()
	var manifests []domain.Manifest
	if err := decoder.Decode(&manifests); err != nil {
		return nil, fmt.Errorf("decode %s: %w", manifestFileName, err)
	}
	for i := range manifests {
		manifests[i].Binary = s.resolveBinary(manifests[i].Binary)
	}
	return manifests, nil
}

// resolveBinary anchors relative binary paths at the library root so
// manifests stay portable across machines.
func (s *FileManifestStore) resolveBinary(binary string) string {
	if binary == "" || filepath.IsAbs(binary) {
		return binary
	}
	return filepath.Clean(filepath.Join(s.basePath, binary))
}
