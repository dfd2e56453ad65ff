// Package repository provides the storage tiers that back the session store.
// A tier holds at most one session. Load returns (nil, nil) when the tier is
// empty.
package repository

import (
	"context"

	"banking-console/internal/session/domain"
)

// Tier is a single-slot session storage backend.
type Tier interface {
	Load(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, s *domain.Session) error
	Clear(ctx context.Context) error
}
