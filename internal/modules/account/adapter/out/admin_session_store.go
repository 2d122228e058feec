package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pustaka/internal/modules/account/domain"
	accountout "pustaka/internal/modules/account/port/out"
	apperrors "pustaka/internal/platform/errors"
)

type FileSessionStore struct {
	path string
}

func NewFileSessionStore(libraryPath string) accountout.SessionStore {
	return &FileSessionStore{path: filepath.Join(libraryPath, ".pustaka", "admin-session.json")}
}

func (s *FileSessionStore) Save(_ context.Context, session domain.AdminSession) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	payload, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal admin session: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write admin session: %w", err)
	}
	return nil
}

func (s *FileSessionStore) Load(_ context.Context) (domain.AdminSession, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.AdminSession{}, apperrors.ErrNoAdminSession
		}
		return domain.AdminSession{}, fmt.Errorf("read admin session: %w", err)
	}
	session := domain.AdminSession{}
	if err := json.Unmarshal(payload, &session); err != nil {
		return domain.AdminSession{}, fmt.Errorf("decode admin session: %w", err)
	}
	if session.Email == "" {
		return domain.AdminSession{}, apperrors.ErrNoAdminSession
	}
	return session, nil
}

func (s *FileSessionStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear admin session: %w", err)
	}
	return nil
}
