package out

import (
	"context"

	"pustaka/internal/modules/catalog/domain"
)

type BookStore interface {
	Save(ctx context.Context, document domain.BookDocument) (string, error)
	FindByID(ctx context.Context, id string) (domain.BookDocument, error)
	List(ctx context.Context) ([]domain.BookDocument, error)
	Delete(ctx context.Context, id string) error
}

type BookIndexProjector interface {
	Reset(ctx context.Context) error
	UpsertBook(ctx context.Context, book domain.Book) error
	DeleteBook(ctx context.Context, id string) error
	CountByCategory(ctx context.Context) (map[string]int, error)
}

// BlobStore keeps uploaded PDFs and cover images and hands back the
// path they can be read from later.
type BlobStore interface {
	Put(ctx context.Context, kind, sourcePath string) (string, error)
	Remove(ctx context.Context, storedPath string) error
}
