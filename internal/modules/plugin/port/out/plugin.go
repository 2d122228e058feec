package out

import (
	"context"

	"pustaka/internal/modules/plugin/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	ListReports(ctx context.Context, manifest domain.Manifest) ([]domain.ReportDescriptor, error)
	Render(ctx context.Context, manifest domain.Manifest, request domain.RenderRequest) (domain.RenderResult, error)
}
