package repository

import (
	"context"

	"athletehub/internal/domain/entity"
)

// SnapshotStore loads and saves the whole athlete collection at once.
type SnapshotStore interface {
	// Load returns the saved collection, or an empty one when nothing was saved yet.
	Load(ctx context.Context) ([]*entity.Athlete, error)

	// Save replaces the saved collection with athletes.
	Save(ctx context.Context, athletes []*entity.Athlete) error
}
