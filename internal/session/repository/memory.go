package repository

import (
	"context"
	"sync"

	"banking-console/internal/session/domain"
)

// MemoryTier keeps the session for the lifetime of the process. It backs
// sign-ins where the user declined to be remembered.
type MemoryTier struct {
	mu      sync.Mutex
	current *domain.Session
}

func NewMemoryTier() *MemoryTier {
	return &MemoryTier{}
}

func (t *MemoryTier) Load(_ context.Context) (*domain.Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current.Clone(), nil
}

func (t *MemoryTier) Save(_ context.Context, s *domain.Session) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = s.Clone()
	return nil
}

func (t *MemoryTier) Clear(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = nil
	return nil
}
