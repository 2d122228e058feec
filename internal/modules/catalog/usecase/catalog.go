package usecase

import (
	"context"
	"time"

	accountin "pustaka/internal/modules/account/port/in"
	"pustaka/internal/modules/catalog/domain"
	"pustaka/internal/modules/catalog/dto"
	catalogin "pustaka/internal/modules/catalog/port/in"
	"pustaka/internal/modules/catalog/service"
)

type Interactor struct {
	svc   *service.BookService
	guard accountin.Guard
}

func NewInteractor(svc *service.BookService, guard accountin.Guard) catalogin.Usecase {
	return &Interactor{svc: svc, guard: guard}
}

func (i *Interactor) AddBook(ctx context.Context, input dto.AddBookInput) (dto.BookOutput, error) {
	if err := i.require(ctx); err != nil {
		return dto.BookOutput{}, err
	}
	book, err := i.svc.AddBook(ctx, input.Title, input.Author, domain.Category(input.Category), input.PDFPath, input.CoverPath)
	if err != nil {
		return dto.BookOutput{}, err
	}
	return toOutput(book), nil
}

func (i *Interactor) UpdateBook(ctx context.Context, input dto.UpdateBookInput) (dto.BookOutput, error) {
	if err := i.require(ctx); err != nil {
		return dto.BookOutput{}, err
	}
	book, err := i.svc.UpdateBook(ctx, input.BookID, input.Title, input.Author, domain.Category(input.Category))
	if err != nil {
		return dto.BookOutput{}, err
	}
	return toOutput(book), nil
}

func (i *Interactor) DeleteBook(ctx context.Context, id string) error {
	if err := i.require(ctx); err != nil {
		return err
	}
	return i.svc.DeleteBook(ctx, id)
}

func (i *Interactor) ListBooks(ctx context.Context, input dto.ListBooksInput) ([]dto.BookOutput, error) {
	books, err := i.svc.ListBooks(ctx, domain.Category(input.Category))
	if err != nil {
		return nil, err
	}
	out := make([]dto.BookOutput, 0, len(books))
	for _, book := range books {
		out = append(out, toOutput(book))
	}
	return out, nil
}

func (i *Interactor) GetBook(ctx context.Context, id string) (dto.BookDetailOutput, error) {
	book, err := i.svc.GetBook(ctx, id)
	if err != nil {
		return dto.BookDetailOutput{}, err
	}
	return dto.BookDetailOutput{
		ID:        book.ID,
		Title:     book.Title,
		Author:    book.Author,
		Category:  string(book.Category),
		PDFPath:   book.PDFPath,
		CoverPath: book.CoverPath,
		NotePath:  book.NotePath,
		AddedAt:   book.AddedAt.Format(time.RFC3339),
		UpdatedAt: book.UpdatedAt.Format(time.RFC3339),
	}, nil
}

func (i *Interactor) CategoryCounts(ctx context.Context) (map[string]int, error) {
	return i.svc.CategoryCounts(ctx)
}

func (i *Interactor) Reindex(ctx context.Context, _ dto.ReindexInput) error {
	if err := i.require(ctx); err != nil {
		return err
	}
	return i.svc.Reindex(ctx)
}

func (i *Interactor) require(ctx context.Context) error {
	if i.guard == nil {
		return nil
	}
	return i.guard.Require(ctx)
}

func toOutput(book domain.Book) dto.BookOutput {
	return dto.BookOutput{
		ID:       book.ID,
		Title:    book.Title,
		Author:   book.Author,
		Category: string(book.Category),
		NotePath: book.NotePath,
	}
}
