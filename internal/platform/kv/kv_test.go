package kv_test

import (
	"testing"

	"pustaka/internal/platform/kv"
)

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()
	store := kv.NewFileStore(t.TempDir())

	if _, ok, err := store.Get("readProgress-b1"); err != nil || ok {
		t.Fatalf("missing key should be absent without error, ok=%t err=%v", ok, err)
	}
	if err := store.Set("readProgress-b1", []byte(`{"page":4}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	payload, ok, err := store.Get("readProgress-b1")
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%t err=%v", ok, err)
	}
	if string(payload) != `{"page":4}` {
		t.Fatalf("unexpected payload %q", payload)
	}
}

func TestFileStoreLastWriteWins(t *testing.T) {
	t.Parallel()
	store := kv.NewFileStore(t.TempDir())
	if err := store.Set("bookmarks-b1", []byte(`[1]`)); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := store.Set("bookmarks-b1", []byte(`[1,5]`)); err != nil {
		t.Fatalf("second set: %v", err)
	}
	payload, _, err := store.Get("bookmarks-b1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(payload) != `[1,5]` {
		t.Fatalf("expected last write, got %q", payload)
	}
}
