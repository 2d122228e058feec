package service

import (
	"context"
	"fmt"
	"strings"

	"pustaka/internal/modules/catalog/domain"
	catalogout "pustaka/internal/modules/catalog/port/out"
	"pustaka/internal/platform/clock"
	"pustaka/internal/platform/id"
	"pustaka/internal/platform/slug"
	"pustaka/internal/platform/tx"
)

type BookService struct {
	clock     clock.Clock
	idGen     id.Generator
	store     catalogout.BookStore
	projector catalogout.BookIndexProjector
	blobs     catalogout.BlobStore
	tx        tx.Manager
}

func NewBookService(clock clock.Clock, idGen id.Generator, store catalogout.BookStore, projector catalogout.BookIndexProjector, blobs catalogout.BlobStore, txm tx.Manager) *BookService {
	return &BookService{clock: clock, idGen: idGen, store: store, projector: projector, blobs: blobs, tx: txm}
}

func (s *BookService) AddBook(ctx context.Context, title, author string, category domain.Category, pdfSource, coverSource string) (domain.Book, error) {
	if err := category.Validate(); err != nil {
		return domain.Book{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Book{}, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(pdfSource) == "" {
		return domain.Book{}, fmt.Errorf("pdf path is required")
	}

	pdfPath, err := s.blobs.Put(ctx, "pdf", pdfSource)
	if err != nil {
		return domain.Book{}, fmt.Errorf("store pdf: %w", err)
	}
	coverPath := ""
	if strings.TrimSpace(coverSource) != "" {
		coverPath, err = s.blobs.Put(ctx, "cover", coverSource)
		if err != nil {
			return domain.Book{}, fmt.Errorf("store cover: %w", err)
		}
	}

	now := s.clock.Now()
	book := domain.Book{
		ID:           s.idGen.New(),
		Title:        title,
		Author:       strings.TrimSpace(author),
		Category:     category,
		PDFPath:      pdfPath,
		CoverPath:    coverPath,
		Slug:         slug.Make(title),
		AddedAt:      now,
		UpdatedAt:    now,
		ManagedLinks: []string{"[[" + slug.Make(string(category)) + "]]"},
	}
	if err := book.Validate(); err != nil {
		return domain.Book{}, err
	}
	err = s.tx.Within(ctx, func(ctx context.Context) error {
		path, saveErr := s.store.Save(ctx, domain.BookDocument{Book: book})
		if saveErr != nil {
			return saveErr
		}
		book.NotePath = path
		return s.projector.UpsertBook(ctx, book)
	})
	if err != nil {
		return domain.Book{}, err
	}
	return book, nil
}

func (s *BookService) UpdateBook(ctx context.Context, bookID, title, author string, category domain.Category) (domain.Book, error) {
	doc, err := s.store.FindByID(ctx, bookID)
	if err != nil {
		return domain.Book{}, err
	}
	if strings.TrimSpace(title) != "" {
		doc.Book.Title = strings.TrimSpace(title)
	}
	if strings.TrimSpace(author) != "" {
		doc.Book.Author = strings.TrimSpace(author)
	}
	if strings.TrimSpace(string(category)) != "" {
		if err := category.Validate(); err != nil {
			return domain.Book{}, err
		}
		doc.Book.Category = category
	}
	doc.Book.UpdatedAt = s.clock.Now()
	doc.Book.ManagedLinks = []string{"[[" + slug.Make(string(doc.Book.Category)) + "]]"}
	err = s.tx.Within(ctx, func(ctx context.Context) error {
		if _, saveErr := s.store.Save(ctx, doc); saveErr != nil {
			return saveErr
		}
		return s.projector.UpsertBook(ctx, doc.Book)
	})
	if err != nil {
		return domain.Book{}, err
	}
	return doc.Book, nil
}

func (s *BookService) DeleteBook(ctx context.Context, bookID string) error {
	doc, err := s.store.FindByID(ctx, bookID)
	if err != nil {
		return err
	}
	if doc.Book.PDFPath != "" {
		if err := s.blobs.Remove(ctx, doc.Book.PDFPath); err != nil {
			return fmt.Errorf("remove pdf: %w", err)
		}
	}
	if doc.Book.CoverPath != "" {
		if err := s.blobs.Remove(ctx, doc.Book.CoverPath); err != nil {
			return fmt.Errorf("remove cover: %w", err)
		}
	}
	return s.tx.Within(ctx, func(ctx context.Context) error {
		if err := s.store.Delete(ctx, bookID); err != nil {
			return err
		}
		return s.projector.DeleteBook(ctx, bookID)
	})
}

func (s *BookService) ListBooks(ctx context.Context, category domain.Category) ([]domain.Book, error) {
	if string(category) != "" {
		if err := category.Validate(); err != nil {
			return nil, err
		}
	}
	docs, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Book, 0, len(docs))
	for _, doc := range docs {
		if string(category) != "" && doc.Book.Category != category {
			continue
		}
		out = append(out, doc.Book)
	}
	return out, nil
}

func (s *BookService) GetBook(ctx context.Context, bookID string) (domain.Book, error) {
	doc, err := s.store.FindByID(ctx, bookID)
	if err != nil {
		return domain.Book{}, err
	}
	return doc.Book, nil
}

func (s *BookService) CategoryCounts(ctx context.Context) (map[string]int, error) {
	return s.projector.CountByCategory(ctx)
}

func (s *BookService) Reindex(ctx context.Context) error {
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	docs, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if err := s.projector.UpsertBook(ctx, doc.Book); err != nil {
			return err
		}
	}
	return nil
}
