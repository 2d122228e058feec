package usecase

import (
	"context"
	"time"

	"pustaka/internal/modules/account/domain"
	"pustaka/internal/modules/account/dto"
	accountin "pustaka/internal/modules/account/port/in"
	"pustaka/internal/modules/account/service"
	activitydto "pustaka/internal/modules/activity/dto"
	activityin "pustaka/internal/modules/activity/port/in"
)

type Interactor struct {
	svc      *service.AccountService
	activity activityin.Usecase
}

func NewInteractor(svc *service.AccountService, activity activityin.Usecase) accountin.Usecase {
	return &Interactor{svc: svc, activity: activity}
}

func (i *Interactor) RegisterVisitor(ctx context.Context, input dto.RegisterVisitorInput) (dto.VisitorOutput, error) {
	visitor, err := i.svc.RegisterVisitor(ctx, input.Name, domain.Gender(input.Gender))
	if err != nil {
		return dto.VisitorOutput{}, err
	}
	if i.activity != nil {
		err := i.activity.RecordVisit(ctx, activitydto.RecordVisitInput{
			VisitorID: visitor.ID,
			Name:      visitor.Name,
			Gender:    string(visitor.Gender),
			LoginTime: visitor.VisitedAt.Format(time.RFC3339),
		})
		if err != nil {
			return dto.VisitorOutput{}, err
		}
	}
	return dto.VisitorOutput{
		ID:        visitor.ID,
		Name:      visitor.Name,
		Gender:    string(visitor.Gender),
		VisitedAt: visitor.VisitedAt.Format(time.RFC3339),
	}, nil
}

func (i *Interactor) SetCredential(ctx context.Context, input dto.SetCredentialInput) error {
	return i.svc.SetCredential(ctx, input.Email, input.Password)
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error) {
	session, err := i.svc.Login(ctx, input.Email, input.Password)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.svc.Logout(ctx)
}

func (i *Interactor) Status(ctx context.Context) (dto.SessionOutput, error) {
	session, err := i.svc.Status(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

func (i *Interactor) Require(ctx context.Context) error {
	return i.svc.Require(ctx)
}

func toSessionOutput(session domain.AdminSession) dto.SessionOutput {
	return dto.SessionOutput{
		Email:          session.Email,
		LoggedInAt:     session.LoggedInAt.Format(time.RFC3339),
		LastActivityAt: session.LastActivityAt.Format(time.RFC3339),
	}
}
