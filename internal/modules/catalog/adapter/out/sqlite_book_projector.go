package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"pustaka/internal/modules/catalog/domain"
	catalogout "pustaka/internal/modules/catalog/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteBookProjector struct {
	db *sql.DB
}

func NewSQLiteBookProjector(dbPath string) (catalogout.BookIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteBookProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteBookProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS books (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  author TEXT,
  category TEXT NOT NULL,
  slug TEXT NOT NULL,
  pdf_path TEXT,
  cover_path TEXT,
  updated_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create books table: %w", err)
	}
	return nil
}

func (s *SQLiteBookProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM books`); err != nil {
		return fmt.Errorf("reset books: %w", err)
	}
	return nil
}

func (s *SQLiteBookProjector) UpsertBook(ctx context.Context, book domain.Book) error {
	const stmt = `
INSERT INTO books (id, title, author, category, slug, pdf_path, cover_path, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  title=excluded.title,
  author=excluded.author,
  category=excluded.category,
  slug=excluded.slug,
  pdf_path=excluded.pdf_path,
  cover_path=excluded.cover_path,
  updated_at=excluded.updated_at;
`
	_, err := s.db.ExecContext(ctx, stmt,
		book.ID,
		book.Title,
		book.Author,
		string(book.Category),
		book.Slug,
		book.PDFPath,
		book.CoverPath,
		book.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("upsert book: %w", err)
	}
	return nil
}

func (s *SQLiteBookProjector) DeleteBook(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

func (s *SQLiteBookProjector) CountByCategory(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT category, COUNT(*) FROM books GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("count books: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		out[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category counts: %w", err)
	}
	return out, nil
}
