package domain_test

import (
	"strings"
	"testing"

	"pustaka/internal/modules/plugin/domain"
)

func validManifest() domain.Manifest {
	return domain.Manifest{
		Name:    "laporan",
		Version: "1.0.0",
		Binary:  "/usr/local/bin/pustaka-laporan",
		SHA256:  strings.Repeat("ab", 32),
		Enabled: true,
	}
}

func TestManifestValidate(t *testing.T) {
	t.Parallel()

	if err := validManifest().Validate(); err != nil {
		t.Fatalf("valid manifest rejected: %v", err)
	}

	missingName := validManifest()
	missingName.Name = ""
	if err := missingName.Validate(); err == nil {
		t.Fatalf("expected error for missing name")
	}

	badChecksum := validManifest()
	badChecksum.SHA256 = "ABCDEF"
	if err := badChecksum.Validate(); err == nil {
		t.Fatalf("expected error for malformed sha256")
	}

	shortChecksum := validManifest()
	shortChecksum.SHA256 = strings.Repeat("a", 63)
	if err := shortChecksum.Validate(); err == nil {
		t.Fatalf("expected error for short sha256")
	}
}

func TestReportDescriptorValidate(t *testing.T) {
	t.Parallel()

	valid := domain.ReportDescriptor{ID: "ringkasan", Title: "Ringkasan", Format: domain.FormatText}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid descriptor rejected: %v", err)
	}

	noID := domain.ReportDescriptor{Format: domain.FormatText}
	if err := noID.Validate(); err == nil {
		t.Fatalf("expected error for missing id")
	}

	badFormat := domain.ReportDescriptor{ID: "ringkasan", Format: "pdf"}
	if err := badFormat.Validate(); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestRenderRequestValidate(t *testing.T) {
	t.Parallel()

	valid := domain.RenderRequest{ReportID: "ringkasan", SnapshotJSON: "{}", LibraryPath: "/tmp/lib"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	noSnapshot := domain.RenderRequest{ReportID: "ringkasan", LibraryPath: "/tmp/lib"}
	if err := noSnapshot.Validate(); err == nil {
		t.Fatalf("expected error for missing snapshot")
	}
}
