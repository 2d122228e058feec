package out

import (
	"context"

	catalogin "pustaka/internal/modules/catalog/port/in"
	"pustaka/internal/modules/reader/domain"
	readerout "pustaka/internal/modules/reader/port/out"
)

// CatalogBookAdapter resolves book metadata through the catalog module.
type CatalogBookAdapter struct {
	catalog catalogin.Usecase
}

func NewCatalogBookAdapter(catalog catalogin.Usecase) readerout.BookResolver {
	return &CatalogBookAdapter{catalog: catalog}
}

func (a *CatalogBookAdapter) Resolve(ctx context.Context, bookID string) (domain.BookRef, error) {
	book, err := a.catalog.GetBook(ctx, bookID)
	if err != nil {
		return domain.BookRef{}, err
	}
	return domain.BookRef{
		ID:        book.ID,
		Title:     book.Title,
		Author:    book.Author,
		Category:  book.Category,
		PDFPath:   book.PDFPath,
		CoverPath: book.CoverPath,
	}, nil
}
