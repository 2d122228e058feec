package out

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pustaka/internal/modules/reader/domain"
	readerout "pustaka/internal/modules/reader/port/out"
	"pustaka/internal/platform/clock"
	"pustaka/internal/platform/kv"
)

// progressKey is a storage contract; data written by earlier releases
// lives under these keys.
func progressKey(bookID string) string {
	return fmt.Sprintf("readProgress-%s", bookID)
}

type progressRecord struct {
	Page      int    `json:"page"`
	UpdatedAt string `json:"updatedAt"`
}

type KVProgressStore struct {
	store kv.Store
	clock clock.Clock
}

func NewKVProgressStore(store kv.Store, clock clock.Clock) readerout.ProgressStore {
	return &KVProgressStore{store: store, clock: clock}
}

func (s *KVProgressStore) SavePage(_ context.Context, bookID string, page int) error {
	payload, err := json.Marshal(progressRecord{Page: page, UpdatedAt: s.clock.Now().Format(time.RFC3339)})
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	return s.store.Set(progressKey(bookID), payload)
}

func (s *KVProgressStore) Load(_ context.Context, bookID string) (domain.ReadingProgress, bool, error) {
	payload, ok, err := s.store.Get(progressKey(bookID))
	if err != nil || !ok {
		return domain.ReadingProgress{}, false, err
	}
	var record progressRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return domain.ReadingProgress{}, false, fmt.Errorf("decode progress: %w", err)
	}
	updatedAt, _ := time.Parse(time.RFC3339, record.UpdatedAt)
	return domain.ReadingProgress{Page: record.Page, UpdatedAt: updatedAt}, true, nil
}
