// Package storage implements object storage for uploaded product images.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"raseed/config"
	"raseed/internal/domain/lifecycle"
	"raseed/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver for development
	_ "gocloud.dev/blob/gcsblob"  // gs:// bucket driver
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStorage opens the configured bucket and returns it as a
// service.ImageStorage.
func NewImageStorage(params Params) (service.ImageStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Image storage bucket opened",
		slog.String("bucket", cfg.BucketURL),
	)

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload writes the object under the given key and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(writer, body); err != nil {
		writer.Close()

		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize object %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}
