package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/camaradigital/gabinete-api/internal/config"
	"github.com/camaradigital/gabinete-api/internal/logger"
)

// ErrObjectNotFound is returned by Open when no stored object has the
// requested name
var ErrObjectNotFound = errors.New("uploaded object not found")

// MinioStore keeps uploaded files in an S3-compatible bucket
type MinioStore struct {
	client *minio.Client
	bucket string
	log    *log.Logger
}

// NewMinioStore connects to the configured MinIO endpoint and ensures the
// bucket exists
func NewMinioStore(cfg *config.Config) (*MinioStore, error) {
	client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Minio.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Minio.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinioStore{
		client: client,
		bucket: cfg.Minio.Bucket,
		log:    logger.Uploads().With("backend", "minio", "bucket", cfg.Minio.Bucket),
	}, nil
}

func (s *MinioStore) Save(ctx context.Context, originalName string, r io.Reader, size int64, contentType string) (string, error) {
	name := GenerateName(originalName)

	_, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.log.Error("Failed to store object", "name", name, "error", err)
		return "", fmt.Errorf("failed to store object: %w", err)
	}

	s.log.Debug("Object stored", "name", name, "size", size)
	return PublicPath(name), nil
}

func (s *MinioStore) Open(ctx context.Context, object string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}

	// GetObject is lazy; Stat surfaces a missing object before we stream it
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to stat object: %w", err)
	}

	return obj, nil
}
