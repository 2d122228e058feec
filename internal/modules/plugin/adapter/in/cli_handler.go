package in

import (
	"context"

	"pustaka/internal/modules/plugin/dto"
	pluginin "pustaka/internal/modules/plugin/port/in"
)

type CLIHandler struct {
	usecase pluginin.Usecase
}

func NewCLIHandler(usecase pluginin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.PluginInfo, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}

func (h CLIHandler) ListReports(ctx context.Context, pluginName string) ([]dto.ReportInfo, error) {
	return h.usecase.ListReports(ctx, pluginName)
}

func (h CLIHandler) Render(ctx context.Context, pluginName, reportID string) (dto.RenderOutput, error) {
	return h.usecase.Render(ctx, dto.RenderInput{PluginName: pluginName, ReportID: reportID})
}
