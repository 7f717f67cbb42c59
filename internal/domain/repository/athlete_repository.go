// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"athletehub/internal/domain/entity"
)

var (
	// ErrAthleteNotFound is returned when no athlete matches the lookup.
	ErrAthleteNotFound = errors.New("athlete not found")

	// ErrUsernameTaken is returned by Create when the username is already registered.
	ErrUsernameTaken = errors.New("username already exists")
)

// AthleteRepository defines the operations on the athlete collection.
// Every mutating call is persisted before it returns.
type AthleteRepository interface {
	// FindByID retrieves a single athlete by its identifier.
	FindByID(ctx context.Context, id int64) (*entity.Athlete, error)

	// FindByUsername retrieves a single athlete by its username (case-sensitive).
	FindByUsername(ctx context.Context, username string) (*entity.Athlete, error)

	// Create assigns an identifier to athlete, appends it and persists the collection.
	Create(ctx context.Context, athlete *entity.Athlete) error

	// Update merges patch over the stored athlete and returns the result.
	Update(ctx context.Context, id int64, patch entity.AthletePatch) (*entity.Athlete, error)

	// Delete removes the athlete and reports whether one was removed.
	Delete(ctx context.Context, id int64) (bool, error)

	// List returns all athletes in insertion order.
	List(ctx context.Context) ([]*entity.Athlete, error)
}
