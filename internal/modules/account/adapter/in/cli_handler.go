package in

import (
	"context"

	"pustaka/internal/modules/account/dto"
	accountin "pustaka/internal/modules/account/port/in"
)

type CLIHandler struct {
	usecase accountin.Usecase
}

func NewCLIHandler(usecase accountin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) RegisterVisitor(ctx context.Context, name, gender string) (dto.VisitorOutput, error) {
	return h.usecase.RegisterVisitor(ctx, dto.RegisterVisitorInput{Name: name, Gender: gender})
}

func (h CLIHandler) SetCredential(ctx context.Context, email, password string) error {
	return h.usecase.SetCredential(ctx, dto.SetCredentialInput{Email: email, Password: password})
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (dto.SessionOutput, error) {
	return h.usecase.Login(ctx, dto.LoginInput{Email: email, Password: password})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Status(ctx)
}
