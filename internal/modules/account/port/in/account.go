package in

import (
	"context"

	"pustaka/internal/modules/account/dto"
)

type Usecase interface {
	RegisterVisitor(ctx context.Context, input dto.RegisterVisitorInput) (dto.VisitorOutput, error)
	SetCredential(ctx context.Context, input dto.SetCredentialInput) error
	Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error)
	Logout(ctx context.Context) error
	Status(ctx context.Context) (dto.SessionOutput, error)
	Require(ctx context.Context) error
}

// Guard is the slice of the account usecase other modules depend on to
// fence admin-only operations. Require refreshes the inactivity window
// on success.
type Guard interface {
	Require(ctx context.Context) error
}
