package usecase

import (
	"context"

	accountin "pustaka/internal/modules/account/port/in"
	"pustaka/internal/modules/activity/dto"
	activityin "pustaka/internal/modules/activity/port/in"
	"pustaka/internal/modules/activity/service"
	catalogin "pustaka/internal/modules/catalog/port/in"
)

type Interactor struct {
	svc     *service.ActivityService
	catalog catalogin.Usecase
	guard   accountin.Guard
}

func NewInteractor(svc *service.ActivityService, catalog catalogin.Usecase, guard accountin.Guard) activityin.Usecase {
	return &Interactor{svc: svc, catalog: catalog, guard: guard}
}

func (i *Interactor) RecordVisit(ctx context.Context, input dto.RecordVisitInput) error {
	return i.svc.RecordVisit(ctx, input.VisitorID, input.Name, input.Gender, input.LoginTime)
}

func (i *Interactor) Dashboard(ctx context.Context) (dto.DashboardOutput, error) {
	if err := i.require(ctx); err != nil {
		return dto.DashboardOutput{}, err
	}
	totals, records, count, err := i.svc.Dashboard(ctx)
	if err != nil {
		return dto.DashboardOutput{}, err
	}
	out := dto.DashboardOutput{
		Daily:       totals.Daily,
		Monthly:     totals.Monthly,
		TotalVisits: count,
	}
	for _, yc := range totals.Yearly {
		out.Yearly = append(out.Yearly, dto.YearCountOutput{Year: yc.Year, Count: yc.Count})
	}
	for _, record := range records {
		out.Visitors = append(out.Visitors, dto.VisitorRow{Name: record.Name, Gender: record.Gender, LoginTime: record.LoginTime})
	}
	if i.catalog != nil {
		counts, countErr := i.catalog.CategoryCounts(ctx)
		if countErr == nil {
			out.CategoryCounts = counts
		}
	}
	return out, nil
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (string, error) {
	if err := i.require(ctx); err != nil {
		return "", err
	}
	return i.svc.Export(ctx, input.Path)
}

func (i *Interactor) Reindex(ctx context.Context, _ dto.ReindexInput) error {
	return i.svc.Reindex(ctx)
}

func (i *Interactor) require(ctx context.Context) error {
	if i.guard == nil {
		return nil
	}
	return i.guard.Require(ctx)
}
