package out

import (
	"context"

	"pustaka/internal/modules/reader/domain"
)

type BookResolver interface {
	Resolve(ctx context.Context, bookID string) (domain.BookRef, error)
}

// DocumentRenderer serves one page of a paginated document and reports
// the total page count. Pages are one-based on this boundary.
type DocumentRenderer interface {
	ReadPage(ctx context.Context, path string, page int) (domain.Page, int, error)
}

type ProgressStore interface {
	SavePage(ctx context.Context, bookID string, page int) error
	Load(ctx context.Context, bookID string) (domain.ReadingProgress, bool, error)
}

type BookmarkStore interface {
	Add(ctx context.Context, bookID string, page int) error
	List(ctx context.Context, bookID string) ([]int, error)
	JumpTarget(bookID string, page int) int
}
