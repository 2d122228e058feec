package in

import (
	"context"

	"pustaka/internal/modules/plugin/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.PluginInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
	ListReports(ctx context.Context, pluginName string) ([]dto.ReportInfo, error)
	Render(ctx context.Context, input dto.RenderInput) (dto.RenderOutput, error)
}
