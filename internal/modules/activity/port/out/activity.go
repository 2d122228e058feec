package out

import (
	"context"

	"pustaka/internal/modules/activity/domain"
)

type VisitStore interface {
	Append(ctx context.Context, record domain.VisitRecord) error
	List(ctx context.Context) ([]domain.VisitRecord, error)
}

type VisitIndexProjector interface {
	Reset(ctx context.Context) error
	UpsertVisit(ctx context.Context, record domain.VisitRecord) error
	CountVisits(ctx context.Context) (int, error)
}

// ReportExporter writes the dashboard snapshot to a spreadsheet and
// returns the path it wrote.
type ReportExporter interface {
	Export(ctx context.Context, totals domain.Totals, records []domain.VisitRecord, path string) (string, error)
}
