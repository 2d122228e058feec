package in

import (
	"context"

	"pustaka/internal/modules/reader/dto"
)

type Usecase interface {
	OpenBook(ctx context.Context, input dto.OpenBookInput) (dto.SessionOutput, error)
	TurnPage(ctx context.Context, input dto.TurnPageInput) (dto.SessionOutput, error)
	AddBookmark(ctx context.Context, input dto.AddBookmarkInput) ([]int, error)
	ListBookmarks(ctx context.Context, bookID string) ([]int, error)
	JumpToBookmark(ctx context.Context, input dto.TurnPageInput) (dto.SessionOutput, error)
}
