package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pustaka/internal/modules/plugin/domain"
	"pustaka/internal/modules/plugin/dto"
	pluginout "pustaka/internal/modules/plugin/port/out"
)

type PluginService struct {
	store pluginout.ManifestStore
	host  pluginout.Host
}

func NewPluginService(store pluginout.ManifestStore, host pluginout.Host) *PluginService {
	return &PluginService{store: store, host: host}
}

func (s *PluginService) List(ctx context.Context) ([]dto.PluginInfo, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PluginInfo, 0, len(manifests))
	for _, m := range manifests {
		out = append(out, dto.PluginInfo{Name: m.Name, Version: m.Version, Enabled: m.Enabled, Binary: m.Binary})
	}
	return out, nil
}

func (s *PluginService) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DoctorResult, 0, len(manifests))
	for _, m := range manifests {
		result := dto.DoctorResult{Name: m.Name}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		binaryOK := fileExists(m.Binary)
		result.BinaryReachable = binaryOK
		checksumOK := false
		if binaryOK {
			checksumOK = checksumMatches(m.Binary, m.SHA256) == nil
		}
		result.ChecksumValid = checksumOK
		if binaryOK && checksumOK && m.Enabled && s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		if !binaryOK {
			result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		}
		if binaryOK && !checksumOK {
			result.Error = "checksum mismatch"
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *PluginService) ListReports(ctx context.Context, pluginName string) ([]dto.ReportInfo, error) {
	manifest, err := s.getRunnableManifest(ctx, pluginName)
	if err != nil {
		return nil, err
	}
	reports, err := s.host.ListReports(ctx, manifest)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReportInfo, 0, len(reports))
	for _, report := range reports {
		out = append(out, dto.ReportInfo{
			ID:          report.ID,
			Title:       report.Title,
			Description: report.Description,
			Format:      string(report.Format),
			TimeoutMS:   report.TimeoutMS,
		})
	}
	return out, nil
}

// Render runs one plugin report against the given dashboard snapshot.
func (s *PluginService) Render(ctx context.Context, pluginName, reportID, snapshotJSON, libraryPath string) (dto.RenderOutput, error) {
	manifest, err := s.getRunnableManifest(ctx, pluginName)
	if err != nil {
		return dto.RenderOutput{}, err
	}
	request := domain.RenderRequest{ReportID: reportID, SnapshotJSON: snapshotJSON, LibraryPath: libraryPath}
	if err := request.Validate(); err != nil {
		return dto.RenderOutput{}, err
	}
	reports, err := s.host.ListReports(ctx, manifest)
	if err != nil {
		return dto.RenderOutput{}, err
	}
	if _, err := requireReport(reports, reportID); err != nil {
		return dto.RenderOutput{}, err
	}
	result, err := s.host.Render(ctx, manifest, request)
	if err != nil {
		return dto.RenderOutput{}, err
	}
	return dto.RenderOutput{
		PluginName: pluginName,
		ReportID:   reportID,
		Format:     string(result.Format),
		Content:    result.Content,
	}, nil
}

func (s *PluginService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seenNames := map[string]struct{}{}
	for _, manifest := range manifests {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seenNames[manifest.Name]; ok {
			return nil, fmt.Errorf("duplicate plugin name: %s", manifest.Name)
		}
		seenNames[manifest.Name] = struct{}{}
	}
	return manifests, nil
}

func (s *PluginService) getRunnableManifest(ctx context.Context, pluginName string) (domain.Manifest, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	manifest := domain.Manifest{}
	found := false
	for _, item := range manifests {
		if item.Name == pluginName {
			manifest = item
			found = true
			break
		}
	}
	if !found {
		return domain.Manifest{}, fmt.Errorf("plugin %q not found", pluginName)
	}
	if !manifest.Enabled {
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrPluginDisabled, pluginName)
	}
	if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
		return domain.Manifest{}, err
	}
	if s.host != nil {
		if err := s.host.CheckLifecycle(ctx, manifest); err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrPluginTimeout, pluginName)
			}
			return domain.Manifest{}, err
		}
	}
	return manifest, nil
}

func requireReport(reports []domain.ReportDescriptor, reportID string) (domain.ReportDescriptor, error) {
	for _, report := range reports {
		if err := report.Validate(); err != nil {
			return domain.ReportDescriptor{}, err
		}
		if report.ID == reportID {
			return report, nil
		}
	}
	return domain.ReportDescriptor{}, fmt.Errorf("%w: %s", domain.ErrReportNotFound, reportID)
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read plugin binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	actual := hex.EncodeToString(hash[:])
	if actual != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
