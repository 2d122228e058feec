package out

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	readerout "pustaka/internal/modules/reader/port/out"
	"pustaka/internal/platform/kv"
)

func bookmarkKey(bookID string) string {
	return fmt.Sprintf("bookmarks-%s", bookID)
}

type KVBookmarkStore struct {
	store kv.Store
}

func NewKVBookmarkStore(store kv.Store) readerout.BookmarkStore {
	return &KVBookmarkStore{store: store}
}

func (s *KVBookmarkStore) Add(ctx context.Context, bookID string, page int) error {
	pages, err := s.List(ctx, bookID)
	if err != nil {
		return err
	}
	for _, existing := range pages {
		if existing == page {
			return nil
		}
	}
	pages = append(pages, page)
	sort.Ints(pages)
	payload, err := json.Marshal(pages)
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	return s.store.Set(bookmarkKey(bookID), payload)
}

func (s *KVBookmarkStore) List(_ context.Context, bookID string) ([]int, error) {
	payload, ok, err := s.store.Get(bookmarkKey(bookID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []int{}, nil
	}
	var pages []int
	if err := json.Unmarshal(payload, &pages); err != nil {
		return nil, fmt.Errorf("decode bookmarks: %w", err)
	}
	return pages, nil
}

// JumpTarget hands the page back; the renderer owns the jump itself.
func (s *KVBookmarkStore) JumpTarget(_ string, page int) int {
	return page
}
