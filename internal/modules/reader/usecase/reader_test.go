package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	readerout "pustaka/internal/modules/reader/adapter/out"
	"pustaka/internal/modules/reader/domain"
	"pustaka/internal/modules/reader/dto"
	readerin "pustaka/internal/modules/reader/port/in"
	"pustaka/internal/modules/reader/service"
	"pustaka/internal/modules/reader/usecase"
	"pustaka/internal/platform/clock"
	apperrors "pustaka/internal/platform/errors"
	"pustaka/internal/platform/kv"
)

type fakeResolver struct {
	book domain.BookRef
	err  error
}

func (r fakeResolver) Resolve(context.Context, string) (domain.BookRef, error) {
	return r.book, r.err
}

type fakeRenderer struct {
	total int
	err   error
}

func (r fakeRenderer) ReadPage(_ context.Context, _ string, page int) (domain.Page, int, error) {
	if r.err != nil {
		return domain.Page{}, 0, r.err
	}
	if page > r.total {
		page = r.total
	}
	return domain.Page{Number: page, Text: "halaman"}, r.total, nil
}

func newReader(t *testing.T, resolver fakeResolver, renderer fakeRenderer) (kv.Store, readerin.Usecase) {
	t.Helper()
	store := kv.NewFileStore(t.TempDir())
	fixed := clock.Fixed{At: time.Date(2024, time.May, 10, 9, 0, 0, 0, time.UTC)}
	svc := service.NewReaderService(
		resolver,
		renderer,
		readerout.NewKVProgressStore(store, fixed),
		readerout.NewKVBookmarkStore(store),
	)
	return store, usecase.NewInteractor(svc)
}

func TestTurnPagePersistsProgressAndPercent(t *testing.T) {
	t.Parallel()
	_, uc := newReader(t,
		fakeResolver{book: domain.BookRef{ID: "b1", Title: "IPA Terpadu", PDFPath: "/x.pdf"}},
		fakeRenderer{total: 50},
	)

	out, err := uc.TurnPage(context.Background(), dto.TurnPageInput{BookID: "b1", Page: 24})
	if err != nil {
		t.Fatalf("turn page: %v", err)
	}
	if out.State != "viewing" || out.Page != 24 || out.Percent != 50 {
		t.Fatalf("unexpected session after turn: %+v", out)
	}

	// Re-open restores the saved page.
	out, err = uc.OpenBook(context.Background(), dto.OpenBookInput{BookID: "b1"})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if out.Page != 24 || out.Percent != 50 {
		t.Fatalf("progress not restored: %+v", out)
	}
}

func TestOpenBookWithoutProgressStartsAtZero(t *testing.T) {
	t.Parallel()
	_, uc := newReader(t,
		fakeResolver{book: domain.BookRef{ID: "b1", PDFPath: "/x.pdf"}},
		fakeRenderer{total: 50},
	)
	out, err := uc.OpenBook(context.Background(), dto.OpenBookInput{BookID: "b1"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if out.Page != 0 || out.Percent != 0 || out.State != "ready" {
		t.Fatalf("unexpected fresh session: %+v", out)
	}
}

func TestBookmarksAreIdempotentAndSorted(t *testing.T) {
	t.Parallel()
	_, uc := newReader(t,
		fakeResolver{book: domain.BookRef{ID: "b1", PDFPath: "/x.pdf"}},
		fakeRenderer{total: 50},
	)

	if _, err := uc.AddBookmark(context.Background(), dto.AddBookmarkInput{BookID: "b1", Page: 5}); err != nil {
		t.Fatalf("add bookmark: %v", err)
	}
	if _, err := uc.AddBookmark(context.Background(), dto.AddBookmarkInput{BookID: "b1", Page: 2}); err != nil {
		t.Fatalf("add second bookmark: %v", err)
	}
	pages, err := uc.AddBookmark(context.Background(), dto.AddBookmarkInput{BookID: "b1", Page: 5})
	if err != nil {
		t.Fatalf("re-add bookmark: %v", err)
	}
	if len(pages) != 2 || pages[0] != 2 || pages[1] != 5 {
		t.Fatalf("expected [2 5], got %v", pages)
	}

	empty, err := uc.ListBookmarks(context.Background(), "unknown-book")
	if err != nil {
		t.Fatalf("list bookmarks: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("absent set should be empty, got %v", empty)
	}
}

func TestJumpToBookmarkTurnsToThatPage(t *testing.T) {
	t.Parallel()
	_, uc := newReader(t,
		fakeResolver{book: domain.BookRef{ID: "b1", PDFPath: "/x.pdf"}},
		fakeRenderer{total: 50},
	)
	out, err := uc.JumpToBookmark(context.Background(), dto.TurnPageInput{BookID: "b1", Page: 30})
	if err != nil {
		t.Fatalf("jump: %v", err)
	}
	if out.Page != 30 || out.State != "viewing" {
		t.Fatalf("unexpected session after jump: %+v", out)
	}
}

func TestOpenBookErrorStates(t *testing.T) {
	t.Parallel()
	_, uc := newReader(t, fakeResolver{err: apperrors.ErrNotFound}, fakeRenderer{total: 50})
	out, err := uc.OpenBook(context.Background(), dto.OpenBookInput{BookID: "missing"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if out.State != "fetch_error" {
		t.Fatalf("expected fetch_error state, got %s", out.State)
	}

	_, uc = newReader(t,
		fakeResolver{book: domain.BookRef{ID: "b1", PDFPath: "/broken.pdf"}},
		fakeRenderer{err: errors.New("bad xref")},
	)
	out, err = uc.OpenBook(context.Background(), dto.OpenBookInput{BookID: "b1"})
	if err == nil {
		t.Fatalf("render failure should surface")
	}
	if out.State != "render_error" {
		t.Fatalf("expected render_error state, got %s", out.State)
	}
}
