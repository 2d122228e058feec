package in

import (
	"context"

	"pustaka/internal/modules/catalog/dto"
	catalogin "pustaka/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) AddBook(ctx context.Context, title, author, category, pdfPath, coverPath string) (dto.BookOutput, error) {
	return h.usecase.AddBook(ctx, dto.AddBookInput{
		Title:     title,
		Author:    author,
		Category:  category,
		PDFPath:   pdfPath,
		CoverPath: coverPath,
	})
}

func (h CLIHandler) UpdateBook(ctx context.Context, bookID, title, author, category string) (dto.BookOutput, error) {
	return h.usecase.UpdateBook(ctx, dto.UpdateBookInput{BookID: bookID, Title: title, Author: author, Category: category})
}

func (h CLIHandler) DeleteBook(ctx context.Context, bookID string) error {
	return h.usecase.DeleteBook(ctx, bookID)
}

func (h CLIHandler) ListBooks(ctx context.Context, category string) ([]dto.BookOutput, error) {
	return h.usecase.ListBooks(ctx, dto.ListBooksInput{Category: category})
}

func (h CLIHandler) GetBook(ctx context.Context, bookID string) (dto.BookDetailOutput, error) {
	return h.usecase.GetBook(ctx, bookID)
}

func (h CLIHandler) CategoryCounts(ctx context.Context) (map[string]int, error) {
	return h.usecase.CategoryCounts(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx, dto.ReindexInput{})
}
