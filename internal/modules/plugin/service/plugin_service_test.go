package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pustaka/internal/modules/plugin/domain"
	pluginout "pustaka/internal/modules/plugin/port/out"
	"pustaka/internal/modules/plugin/service"
)

type fakeManifestStore struct {
	manifests []domain.Manifest
	err       error
}

func (s *fakeManifestStore) Load(context.Context) ([]domain.Manifest, error) {
	return s.manifests, s.err
}

type fakeHost struct {
	lifecycleErr error
	reports      []domain.ReportDescriptor
	rendered     domain.RenderResult
	renderErr    error
	lastRequest  domain.RenderRequest
}

func (h *fakeHost) CheckLifecycle(context.Context, domain.Manifest) error {
	return h.lifecycleErr
}

func (h *fakeHost) GetMetadata(_ context.Context, m domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{Name: m.Name, Version: m.Version}, nil
}

func (h *fakeHost) ListReports(context.Context, domain.Manifest) ([]domain.ReportDescriptor, error) {
	return h.reports, nil
}

func (h *fakeHost) Render(_ context.Context, _ domain.Manifest, req domain.RenderRequest) (domain.RenderResult, error) {
	h.lastRequest = req
	return h.rendered, h.renderErr
}

var _ pluginout.Host = (*fakeHost)(nil)

func writePluginBinary(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "pustaka-laporan")
	payload := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(path, payload, 0o755); err != nil {
		t.Fatalf("write plugin binary: %v", err)
	}
	sum := sha256.Sum256(payload)
	return path, hex.EncodeToString(sum[:])
}

func TestRenderHappyPath(t *testing.T) {
	t.Parallel()

	binary, checksum := writePluginBinary(t)
	store := &fakeManifestStore{manifests: []domain.Manifest{{
		Name: "laporan", Version: "1.0.0", Binary: binary, SHA256: checksum, Enabled: true,
	}}}
	host := &fakeHost{
		reports:  []domain.ReportDescriptor{{ID: "ringkasan", Title: "Ringkasan", Format: domain.FormatText}},
		rendered: domain.RenderResult{Content: "Total kunjungan: 42", Format: domain.FormatText},
	}
	svc := service.NewPluginService(store, host)

	out, err := svc.Render(context.Background(), "laporan", "ringkasan", `{"totalVisits":42}`, "/tmp/lib")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.Content != "Total kunjungan: 42" || out.Format != "text" {
		t.Fatalf("unexpected render output: %+v", out)
	}
	if host.lastRequest.SnapshotJSON != `{"totalVisits":42}` {
		t.Fatalf("snapshot not forwarded: %q", host.lastRequest.SnapshotJSON)
	}
}

func TestRenderRejectsDisabledPlugin(t *testing.T) {
	t.Parallel()

	binary, checksum := writePluginBinary(t)
	store := &fakeManifestStore{manifests: []domain.Manifest{{
		Name: "laporan", Version: "1.0.0", Binary: binary, SHA256: checksum, Enabled: false,
	}}}
	svc := service.NewPluginService(store, &fakeHost{})

	_, err := svc.Render(context.Background(), "laporan", "ringkasan", "{}", "/tmp/lib")
	if !errors.Is(err, domain.ErrPluginDisabled) {
		t.Fatalf("expected ErrPluginDisabled, got %v", err)
	}
}

func TestRenderRejectsChecksumMismatch(t *testing.T) {
	t.Parallel()

	binary, _ := writePluginBinary(t)
	store := &fakeManifestStore{manifests: []domain.Manifest{{
		Name: "laporan", Version: "1.0.0", Binary: binary,
		SHA256:  "0000000000000000000000000000000000000000000000000000000000000000",
		Enabled: true,
	}}}
	svc := service.NewPluginService(store, &fakeHost{})

	_, err := svc.Render(context.Background(), "laporan", "ringkasan", "{}", "/tmp/lib")
	if !errors.Is(err, domain.ErrChecksumMismatch) {
		t.Fatalf("expected ErrChecksumMismatch, got %v", err)
	}
}

func TestRenderUnknownReport(t *testing.T) {
	t.Parallel()

	binary, checksum := writePluginBinary(t)
	store := &fakeManifestStore{manifests: []domain.Manifest{{
		Name: "laporan", Version: "1.0.0", Binary: binary, SHA256: checksum, Enabled: true,
	}}}
	host := &fakeHost{reports: []domain.ReportDescriptor{{ID: "ringkasan", Format: domain.FormatText}}}
	svc := service.NewPluginService(store, host)

	_, err := svc.Render(context.Background(), "laporan", "tidak-ada", "{}", "/tmp/lib")
	if !errors.Is(err, domain.ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
}

func TestListRejectsDuplicateNames(t *testing.T) {
	t.Parallel()

	binary, checksum := writePluginBinary(t)
	manifest := domain.Manifest{Name: "laporan", Version: "1.0.0", Binary: binary, SHA256: checksum, Enabled: true}
	store := &fakeManifestStore{manifests: []domain.Manifest{manifest, manifest}}
	svc := service.NewPluginService(store, &fakeHost{})

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatalf("expected duplicate name error")
	}
}

func TestDoctorFlagsMissingBinary(t *testing.T) {
	t.Parallel()

	store := &fakeManifestStore{manifests: []domain.Manifest{{
		Name: "laporan", Version: "1.0.0",
		Binary:  filepath.Join(t.TempDir(), "does-not-exist"),
		SHA256:  "0000000000000000000000000000000000000000000000000000000000000000",
		Enabled: true,
	}}}
	svc := service.NewPluginService(store, &fakeHost{})

	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if results[0].BinaryReachable || results[0].ChecksumValid || results[0].LifecycleOK {
		t.Fatalf("unexpected healthy flags: %+v", results[0])
	}
	if results[0].Error == "" {
		t.Fatalf("expected error message for missing binary")
	}
}

func TestDoctorHealthyPlugin(t *testing.T) {
	t.Parallel()

	binary, checksum := writePluginBinary(t)
	store := &fakeManifestStore{manifests: []domain.Manifest{{
		Name: "laporan", Version: "1.0.0", Binary: binary, SHA256: checksum, Enabled: true,
	}}}
	svc := service.NewPluginService(store, &fakeHost{})

	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !results[0].BinaryReachable || !results[0].ChecksumValid || !results[0].LifecycleOK {
		t.Fatalf("expected healthy plugin, got %+v", results[0])
	}
}
