package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"pustaka/internal/modules/activity/domain"
	activityout "pustaka/internal/modules/activity/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteVisitProjector struct {
	db *sql.DB
}

func NewSQLiteVisitProjector(dbPath string) (activityout.VisitIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteVisitProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteVisitProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS visits (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  gender TEXT,
  login_time TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create visits table: %w", err)
	}
	return nil
}

func (s *SQLiteVisitProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM visits`); err != nil {
		return fmt.Errorf("reset visits: %w", err)
	}
	return nil
}

func (s *SQLiteVisitProjector) UpsertVisit(ctx context.Context, record domain.VisitRecord) error {
	const stmt = `
INSERT INTO visits (id, name, gender, login_time)
VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name,
  gender=excluded.gender,
  login_time=excluded.login_time;
`
	if _, err := s.db.ExecContext(ctx, stmt, record.ID, record.Name, record.Gender, record.LoginTime); err != nil {
		return fmt.Errorf("upsert visit: %w", err)
	}
	return nil
}

func (s *SQLiteVisitProjector) CountVisits(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM visits`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count visits: %w", err)
	}
	return count, nil
}
