package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	accountin "pustaka/internal/modules/account/port/in"
	activityin "pustaka/internal/modules/activity/port/in"
	"pustaka/internal/modules/plugin/dto"
	pluginin "pustaka/internal/modules/plugin/port/in"
	"pustaka/internal/modules/plugin/service"
)

type Interactor struct {
	svc         *service.PluginService
	activity    activityin.Usecase
	guard       accountin.Guard
	libraryPath string
}

func NewInteractor(svc *service.PluginService, activity activityin.Usecase, guard accountin.Guard, libraryPath string) pluginin.Usecase {
	return &Interactor{svc: svc, activity: activity, guard: guard, libraryPath: libraryPath}
}

func (i *Interactor) List(ctx context.Context) ([]dto.PluginInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	if err := i.require(ctx); err != nil {
		return nil, err
	}
	return i.svc.Doctor(ctx)
}

func (i *Interactor) ListReports(ctx context.Context, pluginName string) ([]dto.ReportInfo, error) {
	if err := i.require(ctx); err != nil {
		return nil, err
	}
	return i.svc.ListReports(ctx, pluginName)
}

// Render feeds the current dashboard snapshot to the plugin.
func (i *Interactor) Render(ctx context.Context, input dto.RenderInput) (dto.RenderOutput, error) {
	if err := i.require(ctx); err != nil {
		return dto.RenderOutput{}, err
	}
	if i.activity == nil {
		return dto.RenderOutput{}, fmt.Errorf("activity module is not configured")
	}
	snapshot, err := i.activity.Dashboard(ctx)
	if err != nil {
		return dto.RenderOutput{}, err
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return dto.RenderOutput{}, fmt.Errorf("encode dashboard snapshot: %w", err)
	}
	return i.svc.Render(ctx, input.PluginName, input.ReportID, string(payload), i.libraryPath)
}

func (i *Interactor) require(ctx context.Context) error {
	if i.guard == nil {
		return nil
	}
	return i.guard.Require(ctx)
}
