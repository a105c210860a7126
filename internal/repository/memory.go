package repository

import (
	"context"
	"sync"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
)

// MemoryCredentialStore keeps credentials for the lifetime of the process.
type MemoryCredentialStore struct {
	mu    sync.RWMutex
	creds model.Credentials
}

// NewMemoryCredentialStore creates an empty store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

// Load returns the stored credentials.
func (s *MemoryCredentialStore) Load(_ context.Context) (model.Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds, nil
}

// Save replaces the stored credentials.
func (s *MemoryCredentialStore) Save(_ context.Context, creds model.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = creds
	return nil
}

// Clear forgets the stored credentials.
func (s *MemoryCredentialStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = model.Credentials{}
	return nil
}
