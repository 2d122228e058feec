package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"pustaka/internal/modules/plugin/adapter/out"
)

func TestFileManifestStoreLoad(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "plugins"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	payload := `[{"name":"laporan","version":"1.0.0","binary":"plugins/laporan","sha256":"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa","enabled":true}]`
	if err := os.WriteFile(filepath.Join(base, "plugins", "plugins.json"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write manifests: %v", err)
	}

	store := out.NewFileManifestStore(base)
	manifests, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(manifests) != 1 {
		t.Fatalf("expected one manifest, got %d", len(manifests))
	}
	want := filepath.Clean(filepath.Join(base, "plugins", "laporan"))
	if manifests[0].Binary != want {
		t.Fatalf("relative binary not resolved: got %q want %q", manifests[0].Binary, want)
	}
}

func TestFileManifestStoreMissingFile(t *testing.T) {
	t.Parallel()

	store := out.NewFileManifestStore(t.TempDir())
	manifests, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(manifests) != 0 {
		t.Fatalf("expected empty manifest list, got %d", len(manifests))
	}
}

func TestFileManifestStoreRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "plugins"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	payload := `[{"name":"laporan","surprise":true}]`
	if err := os.WriteFile(filepath.Join(base, "plugins", "plugins.json"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write manifests: %v", err)
	}

	store := out.NewFileManifestStore(base)
	if _, err := store.Load(context.Background()); err == nil {
		t.Fatalf("expected error for unknown manifest field")
	}
}
