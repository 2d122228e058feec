package usecase

import (
	"context"

	"pustaka/internal/modules/reader/domain"
	"pustaka/internal/modules/reader/dto"
	readerin "pustaka/internal/modules/reader/port/in"
	"pustaka/internal/modules/reader/service"
)

type Interactor struct {
	svc *service.ReaderService
}

func NewInteractor(svc *service.ReaderService) readerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) OpenBook(ctx context.Context, input dto.OpenBookInput) (dto.SessionOutput, error) {
	sess, page, err := i.svc.OpenBook(ctx, input.BookID)
	if err != nil {
		return toOutput(sess, domain.Page{}, nil), err
	}
	bookmarks, _ := i.svc.ListBookmarks(ctx, input.BookID)
	return toOutput(sess, page, bookmarks), nil
}

func (i *Interactor) TurnPage(ctx context.Context, input dto.TurnPageInput) (dto.SessionOutput, error) {
	sess, page, err := i.svc.TurnPage(ctx, input.BookID, input.Page)
	if err != nil {
		return toOutput(sess, domain.Page{}, nil), err
	}
	bookmarks, _ := i.svc.ListBookmarks(ctx, input.BookID)
	return toOutput(sess, page, bookmarks), nil
}

func (i *Interactor) AddBookmark(ctx context.Context, input dto.AddBookmarkInput) ([]int, error) {
	return i.svc.AddBookmark(ctx, input.BookID, input.Page)
}

func (i *Interactor) ListBookmarks(ctx context.Context, bookID string) ([]int, error) {
	return i.svc.ListBookmarks(ctx, bookID)
}

func (i *Interactor) JumpToBookmark(ctx context.Context, input dto.TurnPageInput) (dto.SessionOutput, error) {
	sess, page, err := i.svc.JumpToBookmark(ctx, input.BookID, input.Page)
	if err != nil {
		return toOutput(sess, domain.Page{}, nil), err
	}
	bookmarks, _ := i.svc.ListBookmarks(ctx, input.BookID)
	return toOutput(sess, page, bookmarks), nil
}

func toOutput(sess *domain.Session, page domain.Page, bookmarks []int) dto.SessionOutput {
	if sess == nil {
		return dto.SessionOutput{}
	}
	return dto.SessionOutput{
		BookID:     sess.BookID,
		Title:      sess.Book.Title,
		Author:     sess.Book.Author,
		Category:   sess.Book.Category,
		State:      string(sess.State),
		Page:       sess.Page,
		TotalPages: sess.TotalPages,
		Percent:    sess.Percent,
		Content:    page.Text,
		Bookmarks:  bookmarks,
	}
}
