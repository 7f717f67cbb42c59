package blobstore

import (
	"context"
	"encoding/json"

	"athletehub/config"
	"athletehub/internal/domain/entity"
	"athletehub/internal/domain/repository"
	"athletehub/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// snapshotStore implements repository.SnapshotStore on top of a blob bucket.
type snapshotStore struct {
	bucket *blob.Bucket
	key    string
}

// NewSnapshotStore is the constructor for snapshotStore.
func NewSnapshotStore(bucket *blob.Bucket, cfg *config.Config) repository.SnapshotStore {
	return newSnapshotStore(bucket, cfg.Storage.Key)
}

func newSnapshotStore(bucket *blob.Bucket, key string) *snapshotStore {
	return &snapshotStore{bucket: bucket, key: key}
}

// Load reads the collection. A missing object yields an empty collection.
func (s *snapshotStore) Load(ctx context.Context) ([]*entity.Athlete, error) {
	data, err := s.bucket.ReadAll(ctx, s.key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return []*entity.Athlete{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", s.key)
	}

	var athletes []*entity.Athlete
	if err := json.Unmarshal(data, &athletes); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", s.key)
	}
	if athletes == nil {
		athletes = []*entity.Athlete{}
	}

	return athletes, nil
}

// Save rewrites the whole collection as indented JSON.
func (s *snapshotStore) Save(ctx context.Context, athletes []*entity.Athlete) error {
	if athletes == nil {
		athletes = []*entity.Athlete{}
	}

	data, err := json.MarshalIndent(athletes, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode athletes")
	}

	if err := s.bucket.WriteAll(ctx, s.key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrapf(err, "failed to write %s", s.key)
	}

	return nil
}
