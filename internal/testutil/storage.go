package testutil

import (
	"context"
	"errors"
	"io"
	"sync"
)

// MemoryStore is an in-memory document store for tests.
type MemoryStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
	// SaveErr, when set, is returned by every Save call.
	SaveErr error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Objects: make(map[string][]byte)}
}

// Save reads r fully and keeps the bytes under key.
func (s *MemoryStore) Save(_ context.Context, key string, r io.Reader, _ string) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Objects[key] = data
	return nil
}

// Delete removes key. Missing keys are not an error.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Objects, key)
	return nil
}

// URL returns a fake public URL for key.
func (s *MemoryStore) URL(key string) string {
	return "/media/" + key
}

// Has reports whether key is stored.
func (s *MemoryStore) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.Objects[key]
	return ok
}

// ErrStoreDown is a canned storage failure.
var ErrStoreDown = errors.New("store unavailable")
