package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	accountout "pustaka/internal/modules/account/adapter/out"
	"pustaka/internal/modules/account/dto"
	accountin "pustaka/internal/modules/account/port/in"
	"pustaka/internal/modules/account/service"
	"pustaka/internal/modules/account/usecase"
	activitydto "pustaka/internal/modules/activity/dto"
	apperrors "pustaka/internal/platform/errors"
	"pustaka/internal/platform/id"
)

// stepClock lets tests move time forward.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeActivity struct {
	visits []activitydto.RecordVisitInput
}

func (f *fakeActivity) RecordVisit(_ context.Context, input activitydto.RecordVisitInput) error {
	f.visits = append(f.visits, input)
	return nil
}

func (f *fakeActivity) Dashboard(context.Context) (activitydto.DashboardOutput, error) {
	return activitydto.DashboardOutput{}, nil
}

func (f *fakeActivity) Export(context.Context, activitydto.ExportInput) (string, error) {
	return "", nil
}

func (f *fakeActivity) Reindex(context.Context, activitydto.ReindexInput) error { return nil }

func newAccount(t *testing.T) (*stepClock, *fakeActivity, accountin.Usecase) {
	t.Helper()
	library := t.TempDir()
	clk := &stepClock{now: time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)}
	activity := &fakeActivity{}
	svc := service.NewAccountService(
		clk,
		id.UUID{},
		accountout.NewFileCredentialStore(library),
		accountout.NewFileSessionStore(library),
		30*time.Minute,
	)
	return clk, activity, usecase.NewInteractor(svc, activity)
}

func TestRegisterVisitorRecordsVisit(t *testing.T) {
	t.Parallel()
	_, activity, uc := newAccount(t)

	out, err := uc.RegisterVisitor(context.Background(), dto.RegisterVisitorInput{Name: "Andi", Gender: "Laki-laki"})
	if err != nil {
		t.Fatalf("register visitor: %v", err)
	}
	if out.ID == "" || out.VisitedAt == "" {
		t.Fatalf("visitor output incomplete: %+v", out)
	}
	if len(activity.visits) != 1 || activity.visits[0].Name != "Andi" {
		t.Fatalf("visit was not recorded: %+v", activity.visits)
	}
	if _, err := time.Parse(time.RFC3339, activity.visits[0].LoginTime); err != nil {
		t.Fatalf("visit timestamp should be RFC 3339: %v", err)
	}
}

func TestRegisterVisitorRejectsBadInput(t *testing.T) {
	t.Parallel()
	_, activity, uc := newAccount(t)
	if _, err := uc.RegisterVisitor(context.Background(), dto.RegisterVisitorInput{Name: "", Gender: "Laki-laki"}); err == nil {
		t.Fatalf("blank name should be rejected")
	}
	if _, err := uc.RegisterVisitor(context.Background(), dto.RegisterVisitorInput{Name: "Andi", Gender: "other"}); err == nil {
		t.Fatalf("unknown gender label should be rejected")
	}
	if len(activity.visits) != 0 {
		t.Fatalf("rejected registrations must not log visits: %+v", activity.visits)
	}
}

func TestLoginRequireAndInactivityExpiry(t *testing.T) {
	t.Parallel()
	clk, _, uc := newAccount(t)

	if err := uc.SetCredential(context.Background(), dto.SetCredentialInput{Email: "admin@desa.id", Password: "rahasia1"}); err != nil {
		t.Fatalf("set credential: %v", err)
	}

	if _, err := uc.Login(context.Background(), dto.LoginInput{Email: "admin@desa.id", Password: "salah"}); !errors.Is(err, apperrors.ErrBadCredentials) {
		t.Fatalf("wrong password should fail, got %v", err)
	}
	if err := uc.Require(context.Background()); !errors.Is(err, apperrors.ErrNoAdminSession) {
		t.Fatalf("require without session should fail, got %v", err)
	}

	if _, err := uc.Login(context.Background(), dto.LoginInput{Email: "admin@desa.id", Password: "rahasia1"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	// Activity inside the window keeps the session alive.
	clk.Advance(20 * time.Minute)
	if err := uc.Require(context.Background()); err != nil {
		t.Fatalf("require inside window: %v", err)
	}
	clk.Advance(25 * time.Minute)
	if err := uc.Require(context.Background()); err != nil {
		t.Fatalf("require after touch: %v", err)
	}

	// 31 idle minutes expire the session and clear it.
	clk.Advance(31 * time.Minute)
	if err := uc.Require(context.Background()); !errors.Is(err, apperrors.ErrSessionExpired) {
		t.Fatalf("expected expiry, got %v", err)
	}
	if err := uc.Require(context.Background()); !errors.Is(err, apperrors.ErrNoAdminSession) {
		t.Fatalf("expired session should be cleared, got %v", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	t.Parallel()
	_, _, uc := newAccount(t)
	if err := uc.SetCredential(context.Background(), dto.SetCredentialInput{Email: "admin@desa.id", Password: "rahasia1"}); err != nil {
		t.Fatalf("set credential: %v", err)
	}
	if _, err := uc.Login(context.Background(), dto.LoginInput{Email: "admin@desa.id", Password: "rahasia1"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := uc.Status(context.Background()); err != nil {
		t.Fatalf("status while logged in: %v", err)
	}
	if err := uc.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := uc.Status(context.Background()); !errors.Is(err, apperrors.ErrNoAdminSession) {
		t.Fatalf("status after logout should fail, got %v", err)
	}
}
