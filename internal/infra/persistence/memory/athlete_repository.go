// Package memory holds the athlete collection in process memory and writes it
// through a repository.SnapshotStore after every mutation.
package memory

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"athletehub/internal/domain/entity"
	"athletehub/internal/domain/repository"
	"athletehub/internal/errors"

	"go.uber.org/fx"
)

// Params defines the dependencies of the athlete repository
type Params struct {
	fx.In

	Snapshot repository.SnapshotStore
	Logger   *slog.Logger
}

// athleteRepository implements repository.AthleteRepository.
// mu is held across every read-modify-write sequence, including the save,
// so at most one writer is in flight and memory never runs ahead of the snapshot.
type athleteRepository struct {
	mu       sync.RWMutex
	athletes []*entity.Athlete
	lastID   int64

	snapshot repository.SnapshotStore
	logger   *slog.Logger
	now      func() time.Time
}

// NewAthleteRepository loads the saved collection once and returns the repository.
func NewAthleteRepository(params Params) (repository.AthleteRepository, error) {
	return newAthleteRepository(context.Background(), params.Snapshot, params.Logger)
}

func newAthleteRepository(ctx context.Context, snapshot repository.SnapshotStore, logger *slog.Logger) (*athleteRepository, error) {
	athletes, err := snapshot.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load athletes")
	}

	repo := &athleteRepository{
		athletes: athletes,
		snapshot: snapshot,
		logger:   logger,
		now:      time.Now,
	}
	for _, a := range athletes {
		repo.lastID = max(repo.lastID, a.ID)
	}

	logger.Info("Athlete collection loaded", slog.Int("count", len(athletes)))

	return repo, nil
}

// FindByID retrieves a single athlete by its identifier.
func (repo *athleteRepository) FindByID(_ context.Context, id int64) (*entity.Athlete, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	idx := repo.indexByID(id)
	if idx < 0 {
		return nil, repository.ErrAthleteNotFound
	}

	return repo.athletes[idx].Clone(), nil
}

// FindByUsername retrieves a single athlete by its exact username.
func (repo *athleteRepository) FindByUsername(_ context.Context, username string) (*entity.Athlete, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	idx := repo.indexByUsername(username)
	if idx < 0 {
		return nil, repository.ErrAthleteNotFound
	}

	return repo.athletes[idx].Clone(), nil
}

// Create assigns the next identifier, appends and persists.
// athlete.ID is set on success.
func (repo *athleteRepository) Create(ctx context.Context, athlete *entity.Athlete) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.indexByUsername(athlete.Username) >= 0 {
		return repository.ErrUsernameTaken
	}

	stored := athlete.Clone()
	stored.ID = repo.nextID()
	repo.athletes = append(repo.athletes, stored)

	if err := repo.save(ctx); err != nil {
		repo.athletes = repo.athletes[:len(repo.athletes)-1]

		return err
	}

	repo.lastID = stored.ID
	athlete.ID = stored.ID

	return nil
}

// Update merges patch over the stored athlete, persists and returns the result.
func (repo *athleteRepository) Update(ctx context.Context, id int64, patch entity.AthletePatch) (*entity.Athlete, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	idx := repo.indexByID(id)
	if idx < 0 {
		return nil, repository.ErrAthleteNotFound
	}

	previous := repo.athletes[idx]
	updated := previous.Clone()
	updated.Apply(patch)
	repo.athletes[idx] = updated

	if err := repo.save(ctx); err != nil {
		repo.athletes[idx] = previous

		return nil, err
	}

	return updated.Clone(), nil
}

// Delete removes the athlete if present and persists the collection.
func (repo *athleteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	idx := repo.indexByID(id)
	if idx < 0 {
		return false, nil
	}

	previous := repo.athletes
	repo.athletes = slices.Delete(slices.Clone(previous), idx, idx+1)

	if err := repo.save(ctx); err != nil {
		repo.athletes = previous

		return false, err
	}

	return true, nil
}

// List returns copies of all athletes in insertion order.
func (repo *athleteRepository) List(_ context.Context) ([]*entity.Athlete, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Athlete, 0, len(repo.athletes))
	for _, a := range repo.athletes {
		out = append(out, a.Clone())
	}

	return out, nil
}

// nextID is the current time in milliseconds, bumped past the last issued id when needed.
// Must be called with mu held.
func (repo *athleteRepository) nextID() int64 {
	return max(repo.now().UnixMilli(), repo.lastID+1)
}

// save must be called with mu held.
func (repo *athleteRepository) save(ctx context.Context) error {
	if err := repo.snapshot.Save(ctx, repo.athletes); err != nil {
		repo.logger.Error("Failed to persist athletes", slog.Any("error", err))

		return errors.Wrap(err, "failed to persist athletes")
	}

	return nil
}

func (repo *athleteRepository) indexByID(id int64) int {
	return slices.IndexFunc(repo.athletes, func(a *entity.Athlete) bool { return a.ID == id })
}

func (repo *athleteRepository) indexByUsername(username string) int {
	return slices.IndexFunc(repo.athletes, func(a *entity.Athlete) bool { return a.Username == username })
}
