package in

import (
	"context"

	"pustaka/internal/modules/catalog/dto"
)

type Usecase interface {
	AddBook(ctx context.Context, input dto.AddBookInput) (dto.BookOutput, error)
	UpdateBook(ctx context.Context, input dto.UpdateBookInput) (dto.BookOutput, error)
	DeleteBook(ctx context.Context, id string) error
	ListBooks(ctx context.Context, input dto.ListBooksInput) ([]dto.BookOutput, error)
	GetBook(ctx context.Context, id string) (dto.BookDetailOutput, error)
	CategoryCounts(ctx context.Context) (map[string]int, error)
	Reindex(ctx context.Context, input dto.ReindexInput) error
}
