package out

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pustaka/internal/modules/activity/domain"
	activityout "pustaka/internal/modules/activity/port/out"
)

// FileVisitStore keeps the visit log as JSON lines, one visit per line.
type FileVisitStore struct {
	path string
}

func NewFileVisitStore(libraryPath string) activityout.VisitStore {
	return &FileVisitStore{path: filepath.Join(libraryPath, ".pustaka", "visits.log")}
}

func (s *FileVisitStore) Append(_ context.Context, record domain.VisitRecord) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create visit log dir: %w", err)
	}
	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open visit log: %w", err)
	}
	defer file.Close()
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode visit: %w", err)
	}
	if _, err := file.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("write visit log: %w", err)
	}
	return nil
}

func (s *FileVisitStore) List(_ context.Context) ([]domain.VisitRecord, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.VisitRecord{}, nil
		}
		return nil, fmt.Errorf("open visit log: %w", err)
	}
	defer file.Close()

	out := []domain.VisitRecord{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		record := domain.VisitRecord{}
		if err := json.Unmarshal(line, &record); err != nil {
			continue
		}
		out = append(out, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan visit log: %w", err)
	}
	return out, nil
}
