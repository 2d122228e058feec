package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"

	"pustaka/internal/modules/account/domain"
	accountout "pustaka/internal/modules/account/port/out"
	apperrors "pustaka/internal/platform/errors"
)

// FileCredentialStore keeps admin credentials as a JSON list of
// email + bcrypt hash pairs.
type FileCredentialStore struct {
	path string
}

func NewFileCredentialStore(libraryPath string) accountout.CredentialStore {
	return &FileCredentialStore{path: filepath.Join(libraryPath, ".pustaka", "credentials.json")}
}

func (s *FileCredentialStore) SetPassword(_ context.Context, email, password string) error {
	creds, err := s.load()
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	replaced := false
	for idx := range creds {
		if creds[idx].Email == email {
			creds[idx].PasswordHash = string(hash)
			replaced = true
			break
		}
	}
	if !replaced {
		creds = append(creds, domain.Credential{Email: email, PasswordHash: string(hash)})
	}
	return s.save(creds)
}

func (s *FileCredentialStore) Verify(_ context.Context, email, password string) error {
	creds, err := s.load()
	if err != nil {
		return err
	}
	for _, cred := range creds {
		if cred.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
			return apperrors.ErrBadCredentials
		}
		return nil
	}
	return apperrors.ErrBadCredentials
}

func (s *FileCredentialStore) load() ([]domain.Credential, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.Credential{}, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	var creds []domain.Credential
	if err := json.Unmarshal(payload, &creds); err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}
	return creds, nil
}

func (s *FileCredentialStore) save(creds []domain.Credential) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	payload, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}
