package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	catalogout "pustaka/internal/modules/catalog/adapter/out"
	"pustaka/internal/modules/catalog/dto"
	catalogin "pustaka/internal/modules/catalog/port/in"
	"pustaka/internal/modules/catalog/service"
	"pustaka/internal/modules/catalog/usecase"
	"pustaka/internal/platform/clock"
	apperrors "pustaka/internal/platform/errors"
	"pustaka/internal/platform/id"
	"pustaka/internal/platform/tx"
)

type fakeGuard struct {
	called int
	err    error
}

func (f *fakeGuard) Require(context.Context) error {
	f.called++
	return f.err
}

func newCatalog(t *testing.T, guard *fakeGuard) (string, catalogin.Usecase) {
	t.Helper()
	library := t.TempDir()
	store := catalogout.NewShelfBookStore(library)
	projector, err := catalogout.NewSQLiteBookProjector(filepath.Join(library, ".pustaka", "pustaka.db"))
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	blobs := catalogout.NewFileBlobStore(filepath.Join(library, "storage"))
	svc := service.NewBookService(clock.SystemClock{}, id.UUID{}, store, projector, blobs, tx.NoopManager{})
	return library, usecase.NewInteractor(svc, guard)
}

func writeUpload(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("%PDF-1.4 stub"), 0o644); err != nil {
		t.Fatalf("write upload: %v", err)
	}
	return path
}

func TestAddListGetUpdateDeleteAndCounts(t *testing.T) {
	t.Parallel()
	guard := &fakeGuard{}
	library, uc := newCatalog(t, guard)

	out, err := uc.AddBook(context.Background(), dto.AddBookInput{
		Title:    "Matematika Kelas 4",
		Author:   "Tim Penyusun",
		Category: "SD",
		PDFPath:  writeUpload(t, "matematika.pdf"),
	})
	if err != nil {
		t.Fatalf("add book: %v", err)
	}
	if guard.called != 1 {
		t.Fatalf("add should be guarded, guard calls = %d", guard.called)
	}

	content, err := os.ReadFile(out.NotePath)
	if err != nil {
		t.Fatalf("read shelf note: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, "<!-- pustaka:shelf:start -->") || !strings.Contains(text, "[[sd]]") {
		t.Fatalf("managed shelf block missing: %s", text)
	}

	detail, err := uc.GetBook(context.Background(), out.ID)
	if err != nil {
		t.Fatalf("get book: %v", err)
	}
	wantPDF := filepath.Join(library, "storage", "pdf", "matematika.pdf")
	if detail.PDFPath != wantPDF {
		t.Fatalf("expected pdf stored at %s, got %s", wantPDF, detail.PDFPath)
	}
	if _, err := os.Stat(detail.PDFPath); err != nil {
		t.Fatalf("stored pdf missing: %v", err)
	}

	if _, err := uc.AddBook(context.Background(), dto.AddBookInput{
		Title:    "Fisika Dasar",
		Category: "SMA",
		PDFPath:  writeUpload(t, "fisika.pdf"),
	}); err != nil {
		t.Fatalf("add second book: %v", err)
	}

	list, err := uc.ListBooks(context.Background(), dto.ListBooksInput{Category: "SD"})
	if err != nil {
		t.Fatalf("list books: %v", err)
	}
	if len(list) != 1 || list[0].ID != out.ID {
		t.Fatalf("unexpected SD list: %+v", list)
	}

	counts, err := uc.CategoryCounts(context.Background())
	if err != nil {
		t.Fatalf("category counts: %v", err)
	}
	if counts["SD"] != 1 || counts["SMA"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}

	if _, err := uc.UpdateBook(context.Background(), dto.UpdateBookInput{BookID: out.ID, Category: "SMP"}); err != nil {
		t.Fatalf("update book: %v", err)
	}
	detail, err = uc.GetBook(context.Background(), out.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if detail.Category != "SMP" {
		t.Fatalf("expected category SMP, got %s", detail.Category)
	}

	if err := uc.DeleteBook(context.Background(), out.ID); err != nil {
		t.Fatalf("delete book: %v", err)
	}
	if _, err := os.Stat(wantPDF); !os.IsNotExist(err) {
		t.Fatalf("pdf blob should be removed, stat err = %v", err)
	}
	if _, err := uc.GetBook(context.Background(), out.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("deleted book should be gone, got %v", err)
	}

	if err := uc.Reindex(context.Background(), dto.ReindexInput{}); err != nil {
		t.Fatalf("reindex: %v", err)
	}
	counts, err = uc.CategoryCounts(context.Background())
	if err != nil {
		t.Fatalf("counts after reindex: %v", err)
	}
	if counts["SD"] != 0 || counts["SMA"] != 1 {
		t.Fatalf("unexpected counts after delete+reindex: %v", counts)
	}
}

func TestMutationsRejectedWithoutAdminSession(t *testing.T) {
	t.Parallel()
	guard := &fakeGuard{err: apperrors.ErrNoAdminSession}
	_, uc := newCatalog(t, guard)

	if _, err := uc.AddBook(context.Background(), dto.AddBookInput{Title: "x", Category: "SD", PDFPath: "x.pdf"}); !errors.Is(err, apperrors.ErrNoAdminSession) {
		t.Fatalf("add without session should fail, got %v", err)
	}
	if err := uc.DeleteBook(context.Background(), "b1"); !errors.Is(err, apperrors.ErrNoAdminSession) {
		t.Fatalf("delete without session should fail, got %v", err)
	}
	if _, err := uc.ListBooks(context.Background(), dto.ListBooksInput{}); err != nil {
		t.Fatalf("list should stay open to visitors: %v", err)
	}
}

func TestRejectsUnknownCategory(t *testing.T) {
	t.Parallel()
	_, uc := newCatalog(t, &fakeGuard{})
	if _, err := uc.AddBook(context.Background(), dto.AddBookInput{Title: "x", Category: "TK", PDFPath: "x.pdf"}); err == nil {
		t.Fatalf("unknown category should be rejected")
	}
}
