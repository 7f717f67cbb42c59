// Package blobstore persists the athlete collection as a single JSON object in a gocloud.dev bucket.
package blobstore

import (
	"context"
	"log/slog"
	"path/filepath"

	"athletehub/config"
	"athletehub/internal/domain/lifecycle"
	"athletehub/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob" // registers mem://
)

// BucketParams defines the parameters required to open the bucket
type BucketParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the configured bucket. storage.bucketURL wins over storage.dir.
func NewBucket(params BucketParams) (*blob.Bucket, error) {
	bucket, err := openBucket(context.Background(), params.Config.Storage)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if _, err := bucket.IsAccessible(ctx); err != nil {
				return errors.Wrap(err, "bucket is not accessible")
			}

			return nil
		},
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing athlete bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}

func openBucket(ctx context.Context, cfg *config.StorageConfig) (*blob.Bucket, error) {
	if cfg == nil {
		return nil, errors.New("storage config is missing")
	}

	if cfg.BucketURL != "" {
		bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
		}

		return bucket, nil
	}

	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, errors.Wrap(err, "filepath.Abs")
	}

	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file bucket %s", dir)
	}

	return bucket, nil
}
