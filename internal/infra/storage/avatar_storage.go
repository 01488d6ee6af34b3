// Package storage implements blob storage for profile avatars using the
// Go CDK, so local disk and GCS buckets share one code path.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"orda/config"
	"orda/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/gcsblob"
	"gocloud.dev/gcerrors"
	"gocloud.dev/gcp"
)

// Storage provider types.
const (
	ProviderFile = "file"
	ProviderGCS  = "gcs"
)

// avatarStorage implements the AvatarStorage domain service on a blob bucket.
type avatarStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for AvatarStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAvatarStorage opens the configured bucket and wires its lifecycle.
func NewAvatarStorage(params Params) (service.AvatarStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.Bucket == "" {
		return nil, errors.New("storage bucket must be configured")
	}

	var bucket *blob.Bucket
	var err error

	switch cfg.Provider {
	case ProviderGCS:
		bucket, err = openGCSBucket(params.Ctx, cfg.Bucket)
	case ProviderFile, "":
		bucket, err = fileblob.OpenBucket(cfg.Bucket, nil)
	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to open avatar bucket")
	}

	params.Logger.Info("avatar storage initialized",
		slog.String("provider", cfg.Provider),
		slog.String("bucket", cfg.Bucket),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &avatarStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

func openGCSBucket(ctx context.Context, name string) (*blob.Bucket, error) {
	creds, err := gcp.DefaultCredentials(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	client, err := gcp.NewHTTPClient(gcp.DefaultTransport(), gcp.CredentialsTokenSource(creds))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return gcsblob.OpenBucket(ctx, client, name, nil)
}

// Upload writes the image bytes and returns the public URL for the object.
func (s *avatarStorage) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}

	if err := s.bucket.WriteAll(ctx, path, data, opts); err != nil {
		return "", errors.Wrap(err, "failed to write avatar object")
	}

	return s.publicBaseURL + "/" + path, nil
}

// Remove deletes the object behind a previously returned URL.
// Missing objects are not an error; the profile row is the source of truth.
func (s *avatarStorage) Remove(ctx context.Context, publicURL string) error {
	if !strings.HasPrefix(publicURL, s.publicBaseURL+"/") {
		// URL from another bucket generation; nothing to delete here.
		return nil
	}
	key := strings.TrimPrefix(publicURL, s.publicBaseURL+"/")
	if key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete avatar object")
	}

	return nil
}
