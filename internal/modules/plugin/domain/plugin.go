package domain

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrPluginDisabled   = errors.New("plugin is disabled")
	ErrChecksumMismatch = errors.New("plugin checksum mismatch")
	ErrReportNotFound   = errors.New("plugin report not found")
	ErrPluginTimeout    = errors.New("plugin timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes one installed report plugin. The binary is only
// run when its checksum matches.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Binary  string `json:"binary"`
	SHA256  string `json:"sha256"`
	Enabled bool   `json:"enabled"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("plugin name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("plugin version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("plugin binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("plugin sha256 must be lowercase 64-char hex")
	}
	return nil
}

type ReportFormat string

const (
	FormatText     ReportFormat = "text"
	FormatMarkdown ReportFormat = "markdown"
	FormatHTML     ReportFormat = "html"
)

func (f ReportFormat) Validate() error {
	switch f {
	case FormatText, FormatMarkdown, FormatHTML:
		return nil
	default:
		return fmt.Errorf("unknown report format: %s", f)
	}
}

// ReportDescriptor is one report a plugin can render.
type ReportDescriptor struct {
	ID          string
	Title       string
	Description string
	Format      ReportFormat
	TimeoutMS   int
}

func (d ReportDescriptor) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("report id is required")
	}
	return d.Format.Validate()
}

type Metadata struct {
	Name    string
	Version string
}

// RenderRequest carries the dashboard snapshot a plugin turns into a
// report.
type RenderRequest struct {
	ReportID     string
	SnapshotJSON string
	LibraryPath  string
}

func (r RenderRequest) Validate() error {
	if r.ReportID == "" {
		return fmt.Errorf("report id is required")
	}
	if r.SnapshotJSON == "" {
		return fmt.Errorf("snapshot is required")
	}
	if r.LibraryPath == "" {
		return fmt.Errorf("library path is required")
	}
	return nil
}

type RenderResult struct {
	Content string
	Format  ReportFormat
}
