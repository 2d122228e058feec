package in

import (
	"context"

	"pustaka/internal/modules/activity/dto"
)

type Usecase interface {
	RecordVisit(ctx context.Context, input dto.RecordVisitInput) error
	Dashboard(ctx context.Context) (dto.DashboardOutput, error)
	Export(ctx context.Context, input dto.ExportInput) (string, error)
	Reindex(ctx context.Context, input dto.ReindexInput) error
}
