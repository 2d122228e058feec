package in

import (
	"context"

	"pustaka/internal/modules/reader/dto"
	readerin "pustaka/internal/modules/reader/port/in"
)

type CLIHandler struct {
	usecase readerin.Usecase
}

func NewCLIHandler(usecase readerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) OpenBook(ctx context.Context, bookID string) (dto.SessionOutput, error) {
	return h.usecase.OpenBook(ctx, dto.OpenBookInput{BookID: bookID})
}

func (h CLIHandler) TurnPage(ctx context.Context, bookID string, page int) (dto.SessionOutput, error) {
	return h.usecase.TurnPage(ctx, dto.TurnPageInput{BookID: bookID, Page: page})
}

func (h CLIHandler) AddBookmark(ctx context.Context, bookID string, page int) ([]int, error) {
	return h.usecase.AddBookmark(ctx, dto.AddBookmarkInput{BookID: bookID, Page: page})
}

func (h CLIHandler) ListBookmarks(ctx context.Context, bookID string) ([]int, error) {
	return h.usecase.ListBookmarks(ctx, bookID)
}

func (h CLIHandler) JumpToBookmark(ctx context.Context, bookID string, page int) (dto.SessionOutput, error) {
	return h.usecase.JumpToBookmark(ctx, dto.TurnPageInput{BookID: bookID, Page: page})
}
