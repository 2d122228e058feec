package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	catalogdto "pustaka/internal/modules/catalog/dto"

	activityout "pustaka/internal/modules/activity/adapter/out"
	"pustaka/internal/modules/activity/dto"
	"pustaka/internal/modules/activity/service"
	"pustaka/internal/modules/activity/usecase"
	"pustaka/internal/platform/clock"
	apperrors "pustaka/internal/platform/errors"
	"pustaka/internal/platform/id"
)

type fakeGuard struct {
	called int
	err    error
}

func (f *fakeGuard) Require(context.Context) error {
	f.called++
	return f.err
}

type fakeCatalog struct{}

func (fakeCatalog) AddBook(context.Context, catalogdto.AddBookInput) (catalogdto.BookOutput, error) {
	return catalogdto.BookOutput{}, nil
}

func (fakeCatalog) UpdateBook(context.Context, catalogdto.UpdateBookInput) (catalogdto.BookOutput, error) {
	return catalogdto.BookOutput{}, nil
}

func (fakeCatalog) DeleteBook(context.Context, string) error { return nil }

func (fakeCatalog) ListBooks(context.Context, catalogdto.ListBooksInput) ([]catalogdto.BookOutput, error) {
	return nil, nil
}

func (fakeCatalog) GetBook(context.Context, string) (catalogdto.BookDetailOutput, error) {
	return catalogdto.BookDetailOutput{}, nil
}

func (fakeCatalog) CategoryCounts(context.Context) (map[string]int, error) {
	return map[string]int{"SD": 3, "SMA": 1}, nil
}

func (fakeCatalog) Reindex(context.Context, catalogdto.ReindexInput) error { return nil }

func TestRecordDashboardAndExport(t *testing.T) {
	t.Parallel()
	library := t.TempDir()
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	store := activityout.NewFileVisitStore(library)
	projector, err := activityout.NewSQLiteVisitProjector(filepath.Join(library, ".pustaka", "pustaka.db"))
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	guard := &fakeGuard{}
	svc := service.NewActivityService(clock.Fixed{At: now}, id.UUID{}, store, projector, activityout.NewXLSXExporter())
	uc := usecase.NewInteractor(svc, fakeCatalog{}, guard)

	visits := []dto.RecordVisitInput{
		{Name: "Andi", Gender: "Laki-laki"},
		{Name: "Siti", Gender: "Perempuan", LoginTime: now.AddDate(0, 0, -3).Format(time.RFC3339)},
		{Name: "Budi", Gender: "Laki-laki", LoginTime: "25/12/2023 10:30:00"},
		{Name: "Rusak", Gender: "Perempuan", LoginTime: "not a timestamp"},
	}
	for _, visit := range visits {
		if err := uc.RecordVisit(context.Background(), visit); err != nil {
			t.Fatalf("record visit %q: %v", visit.Name, err)
		}
	}

	out, err := uc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if guard.called != 1 {
		t.Fatalf("dashboard should be guarded, guard calls = %d", guard.called)
	}
	if out.TotalVisits != 4 {
		t.Fatalf("expected 4 projected visits, got %d", out.TotalVisits)
	}
	if out.Daily[6] != 1 || out.Daily[3] != 1 {
		t.Fatalf("unexpected daily buckets: %v", out.Daily)
	}
	if len(out.Yearly) != 2 {
		t.Fatalf("expected 2024 and 2023 in yearly, got %v", out.Yearly)
	}
	if out.CategoryCounts["SD"] != 3 {
		t.Fatalf("category counts not attached: %v", out.CategoryCounts)
	}
	if len(out.Visitors) != 4 {
		t.Fatalf("visitor table should list every record, got %d", len(out.Visitors))
	}

	reportPath := filepath.Join(t.TempDir(), "laporan.xlsx")
	written, err := uc.Export(context.Background(), dto.ExportInput{Path: reportPath})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if written != reportPath {
		t.Fatalf("expected report at %s, got %s", reportPath, written)
	}
	info, err := os.Stat(reportPath)
	if err != nil || info.Size() == 0 {
		t.Fatalf("report file missing or empty: %v", err)
	}
}

func TestDashboardRejectedWithoutAdminSession(t *testing.T) {
	t.Parallel()
	library := t.TempDir()
	projector, err := activityout.NewSQLiteVisitProjector(filepath.Join(library, ".pustaka", "pustaka.db"))
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	svc := service.NewActivityService(clock.SystemClock{}, id.UUID{}, activityout.NewFileVisitStore(library), projector, nil)
	uc := usecase.NewInteractor(svc, nil, &fakeGuard{err: apperrors.ErrSessionExpired})

	if _, err := uc.Dashboard(context.Background()); !errors.Is(err, apperrors.ErrSessionExpired) {
		t.Fatalf("expected expired session error, got %v", err)
	}
	if _, err := uc.Export(context.Background(), dto.ExportInput{Path: "x.xlsx"}); !errors.Is(err, apperrors.ErrSessionExpired) {
		t.Fatalf("export should be guarded, got %v", err)
	}
	// Visit capture stays open to unauthenticated visitors.
	if err := uc.RecordVisit(context.Background(), dto.RecordVisitInput{Name: "Tamu"}); err != nil {
		t.Fatalf("record visit: %v", err)
	}
}

func TestReindexRebuildsProjection(t *testing.T) {
	t.Parallel()
	library := t.TempDir()
	store := activityout.NewFileVisitStore(library)
	projector, err := activityout.NewSQLiteVisitProjector(filepath.Join(library, ".pustaka", "pustaka.db"))
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	svc := service.NewActivityService(clock.SystemClock{}, id.UUID{}, store, projector, nil)
	uc := usecase.NewInteractor(svc, nil, nil)

	for _, name := range []string{"Andi", "Siti", "Budi"} {
		if err := uc.RecordVisit(context.Background(), dto.RecordVisitInput{Name: name}); err != nil {
			t.Fatalf("record visit: %v", err)
		}
	}
	if err := projector.Reset(context.Background()); err != nil {
		t.Fatalf("reset projection: %v", err)
	}
	if err := uc.Reindex(context.Background(), dto.ReindexInput{}); err != nil {
		t.Fatalf("reindex: %v", err)
	}
	count, err := projector.CountVisits(context.Background())
	if err != nil {
		t.Fatalf("count visits: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 visits after reindex, got %d", count)
	}
}
