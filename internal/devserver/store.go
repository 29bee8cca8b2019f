package devserver

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"lead-console/internal/spreadsheet"
)

// StagedUpload is an inspected file waiting for its commit.
type StagedUpload struct {
	Workbook     *spreadsheet.Workbook
	OriginalName string
	Size         int64
	expiresAt    time.Time
}

// TokenStore keeps staged uploads in memory under short-lived opaque tokens.
// Entries expire after the TTL; expired entries are dropped lazily on access.
type TokenStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*StagedUpload
}

func NewTokenStore(ttl time.Duration) *TokenStore {
	return &TokenStore{
		ttl:     ttl,
		entries: make(map[string]*StagedUpload),
	}
}

// TTL returns the configured token lifetime.
func (s *TokenStore) TTL() time.Duration {
	return s.ttl
}

// Put stages an upload and mints its token.
func (s *TokenStore) Put(staged *StagedUpload) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	token := uuid.NewString()
	staged.expiresAt = time.Now().Add(s.ttl)
	s.entries[token] = staged
	return token
}

// Get resolves a token. Expired and unknown tokens look the same to callers.
// The entry stays staged so a transiently-failed commit can be retried.
func (s *TokenStore) Get(token string) (*StagedUpload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	staged, ok := s.entries[token]
	if !ok {
		return nil, false
	}
	if time.Now().After(staged.expiresAt) {
		delete(s.entries, token)
		return nil, false
	}
	return staged, true
}

// Delete consumes a token after a successful commit.
func (s *TokenStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
}

func (s *TokenStore) purgeLocked() {
	now := time.Now()
	for token, staged := range s.entries {
		if now.After(staged.expiresAt) {
			delete(s.entries, token)
		}
	}
}
