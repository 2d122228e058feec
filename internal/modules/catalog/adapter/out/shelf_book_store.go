package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"pustaka/internal/modules/catalog/domain"
	catalogout "pustaka/internal/modules/catalog/port/out"
	apperrors "pustaka/internal/platform/errors"
	"pustaka/internal/platform/markdown"
)

type ShelfBookStore struct {
	libraryPath string
}

func NewShelfBookStore(libraryPath string) catalogout.BookStore {
	return &ShelfBookStore{libraryPath: libraryPath}
}

func (s *ShelfBookStore) Save(_ context.Context, document domain.BookDocument) (string, error) {
	book := document.Book
	bookPath := filepath.Join(s.libraryPath, "shelf", book.Slug+".md")
	if err := os.MkdirAll(filepath.Dir(bookPath), 0o755); err != nil {
		return "", fmt.Errorf("create shelf directory: %w", err)
	}

	body := document.Body
	if existing, err := os.ReadFile(bookPath); err == nil {
		_, existingBody, splitErr := markdown.SplitFrontmatter(string(existing))
		if splitErr == nil && strings.TrimSpace(body) == "" {
			body = existingBody
		}
	}

	if strings.TrimSpace(body) == "" {
		body = "## Ringkasan\n\n## Catatan\n"
	}
	linksContent := strings.Join(book.ManagedLinks, "\n")
	body = markdown.ReplaceManagedBlock(body, domain.ManagedShelfStart, domain.ManagedShelfEnd, linksContent)

	rendered, err := markdown.RenderFrontmatter(toFrontmatter(book), body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(bookPath, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write book markdown: %w", err)
	}
	return bookPath, nil
}

func (s *ShelfBookStore) FindByID(ctx context.Context, id string) (domain.BookDocument, error) {
	docs, err := s.List(ctx)
	if err != nil {
		return domain.BookDocument{}, err
	}
	for _, doc := range docs {
		if doc.Book.ID == id {
			return doc, nil
		}
	}
	return domain.BookDocument{}, apperrors.ErrNotFound
}

func (s *ShelfBookStore) List(_ context.Context) ([]domain.BookDocument, error) {
	glob := filepath.Join(s.libraryPath, "shelf", "*.md")
	matches, err := filepath.Glob(glob)
	if err != nil {
		return nil, fmt.Errorf("glob shelf notes: %w", err)
	}
	sort.Strings(matches)

	out := make([]domain.BookDocument, 0, len(matches))
	for _, path := range matches {
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("read %s: %w", path, readErr)
		}
		meta, body, splitErr := markdown.SplitFrontmatter(string(content))
		if splitErr != nil {
			return nil, fmt.Errorf("parse %s: %w", path, splitErr)
		}
		book, convErr := fromFrontmatter(meta, path)
		if convErr != nil {
			return nil, fmt.Errorf("decode book %s: %w", path, convErr)
		}
		out = append(out, domain.BookDocument{Book: book, Body: body})
	}
	return out, nil
}

func (s *ShelfBookStore) Delete(ctx context.Context, id string) error {
	doc, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := os.Remove(doc.Book.NotePath); err != nil {
		return fmt.Errorf("remove book markdown: %w", err)
	}
	return nil
}

func toFrontmatter(book domain.Book) map[string]any {
	return map[string]any{
		"schema_version": domain.SchemaVersion,
		"id":             book.ID,
		"title":          book.Title,
		"author":         book.Author,
		"category":       string(book.Category),
		"pdf_path":       book.PDFPath,
		"cover_path":     book.CoverPath,
		"added_at":       book.AddedAt.Format(time.RFC3339),
		"updated_at":     book.UpdatedAt.Format(time.RFC3339),
	}
}

func fromFrontmatter(meta map[string]any, notePath string) (domain.Book, error) {
	book := domain.Book{
		ID:        asString(meta["id"]),
		Title:     asString(meta["title"]),
		Author:    asString(meta["author"]),
		Category:  domain.Category(asString(meta["category"])),
		PDFPath:   asString(meta["pdf_path"]),
		CoverPath: asString(meta["cover_path"]),
		NotePath:  notePath,
	}
	book.Slug = strings.TrimSuffix(filepath.Base(notePath), filepath.Ext(notePath))
	addedAt, _ := time.Parse(time.RFC3339, asString(meta["added_at"]))
	updatedAt, _ := time.Parse(time.RFC3339, asString(meta["updated_at"]))
	book.AddedAt = addedAt
	book.UpdatedAt = updatedAt
	if err := book.Validate(); err != nil {
		return domain.Book{}, err
	}
	return book, nil
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	default:
		return fmt.Sprint(v)
	}
}
