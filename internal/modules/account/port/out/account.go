package out

import (
	"context"

	"pustaka/internal/modules/account/domain"
)

type CredentialStore interface {
	SetPassword(ctx context.Context, email, password string) error
	Verify(ctx context.Context, email, password string) error
}

type SessionStore interface {
	Save(ctx context.Context, session domain.AdminSession) error
	Load(ctx context.Context) (domain.AdminSession, error)
	Clear(ctx context.Context) error
}
