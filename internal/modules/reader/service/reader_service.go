package service

import (
	"context"
	"fmt"

	"pustaka/internal/modules/reader/domain"
	readerout "pustaka/internal/modules/reader/port/out"
)

type ReaderService struct {
	books     readerout.BookResolver
	renderer  readerout.DocumentRenderer
	progress  readerout.ProgressStore
	bookmarks readerout.BookmarkStore
}

func NewReaderService(books readerout.BookResolver, renderer readerout.DocumentRenderer, progress readerout.ProgressStore, bookmarks readerout.BookmarkStore) *ReaderService {
	return &ReaderService{books: books, renderer: renderer, progress: progress, bookmarks: bookmarks}
}

// OpenBook runs the open flow for a book: fetch metadata, render the
// restored page, and report the session. The session is returned even
// on failure so callers can show the error state.
func (s *ReaderService) OpenBook(ctx context.Context, bookID string) (*domain.Session, domain.Page, error) {
	sess := domain.NewSession(bookID)
	book, err := s.books.Resolve(ctx, bookID)
	if err != nil {
		sess.FetchFailed(err)
		return sess, domain.Page{}, err
	}
	if err := sess.MetadataFetched(book); err != nil {
		return sess, domain.Page{}, err
	}

	var restored *domain.ReadingProgress
	if progress, ok, loadErr := s.progress.Load(ctx, bookID); loadErr == nil && ok {
		restored = &progress
	}

	startPage := 0
	if restored != nil {
		startPage = restored.Page
	}
	page, total, err := s.renderer.ReadPage(ctx, book.PDFPath, startPage+1)
	if err != nil {
		sess.RenderFailed(err)
		return sess, domain.Page{}, err
	}
	if err := sess.PageCountKnown(total, restored); err != nil {
		return sess, domain.Page{}, err
	}
	return sess, page, nil
}

// TurnPage renders the requested page and persists it as the new
// reading progress.
func (s *ReaderService) TurnPage(ctx context.Context, bookID string, pageIndex int) (*domain.Session, domain.Page, error) {
	sess, _, err := s.OpenBook(ctx, bookID)
	if err != nil {
		return sess, domain.Page{}, err
	}
	if err := sess.PageChanged(pageIndex); err != nil {
		return sess, domain.Page{}, err
	}
	page, _, err := s.renderer.ReadPage(ctx, sess.Book.PDFPath, sess.Page+1)
	if err != nil {
		sess.RenderFailed(err)
		return sess, domain.Page{}, err
	}
	if err := s.progress.SavePage(ctx, bookID, sess.Page); err != nil {
		return sess, domain.Page{}, fmt.Errorf("save progress: %w", err)
	}
	return sess, page, nil
}

func (s *ReaderService) AddBookmark(ctx context.Context, bookID string, page int) ([]int, error) {
	if page < 0 {
		return nil, fmt.Errorf("page must not be negative")
	}
	if err := s.bookmarks.Add(ctx, bookID, page); err != nil {
		return nil, err
	}
	return s.bookmarks.List(ctx, bookID)
}

func (s *ReaderService) ListBookmarks(ctx context.Context, bookID string) ([]int, error) {
	return s.bookmarks.List(ctx, bookID)
}

// JumpToBookmark resolves the jump target through the bookmark store
// and turns to that page.
func (s *ReaderService) JumpToBookmark(ctx context.Context, bookID string, page int) (*domain.Session, domain.Page, error) {
	return s.TurnPage(ctx, bookID, s.bookmarks.JumpTarget(bookID, page))
}
