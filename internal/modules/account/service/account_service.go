package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pustaka/internal/modules/account/domain"
	accountout "pustaka/internal/modules/account/port/out"
	"pustaka/internal/platform/clock"
	apperrors "pustaka/internal/platform/errors"
	"pustaka/internal/platform/id"
)

type AccountService struct {
	clock       clock.Clock
	idGen       id.Generator
	credentials accountout.CredentialStore
	sessions    accountout.SessionStore
	timeout     time.Duration
}

func NewAccountService(clock clock.Clock, idGen id.Generator, credentials accountout.CredentialStore, sessions accountout.SessionStore, timeout time.Duration) *AccountService {
	return &AccountService{clock: clock, idGen: idGen, credentials: credentials, sessions: sessions, timeout: timeout}
}

func (s *AccountService) RegisterVisitor(_ context.Context, name string, gender domain.Gender) (domain.Visitor, error) {
	visitor := domain.Visitor{
		ID:        s.idGen.New(),
		Name:      strings.TrimSpace(name),
		Gender:    gender,
		VisitedAt: s.clock.Now(),
	}
	if err := visitor.Validate(); err != nil {
		return domain.Visitor{}, err
	}
	return visitor, nil
}

func (s *AccountService) SetCredential(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return s.credentials.SetPassword(ctx, email, password)
}

func (s *AccountService) Login(ctx context.Context, email, password string) (domain.AdminSession, error) {
	email = strings.TrimSpace(email)
	if err := s.credentials.Verify(ctx, email, password); err != nil {
		return domain.AdminSession{}, err
	}
	now := s.clock.Now()
	session := domain.AdminSession{Email: email, LoggedInAt: now, LastActivityAt: now}
	if err := s.sessions.Save(ctx, session); err != nil {
		return domain.AdminSession{}, err
	}
	return session, nil
}

func (s *AccountService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func (s *AccountService) Status(ctx context.Context) (domain.AdminSession, error) {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		return domain.AdminSession{}, err
	}
	if session.Expired(s.clock.Now(), s.timeout) {
		_ = s.sessions.Clear(ctx)
		return domain.AdminSession{}, apperrors.ErrSessionExpired
	}
	return session, nil
}

// Require checks the admin session and, when still live, resets the
// inactivity window. Expired sessions are cleared on sight.
func (s *AccountService) Require(ctx context.Context) error {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		return err
	}
	now := s.clock.Now()
	if session.Expired(now, s.timeout) {
		_ = s.sessions.Clear(ctx)
		return apperrors.ErrSessionExpired
	}
	session.Touch(now)
	return s.sessions.Save(ctx, session)
}
