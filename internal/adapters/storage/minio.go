// Package storage provides S3-compatible object storage via MinIO.
package storage

import (
	"bytes"
	"context"
	"fmt"

	"leadsync_backend/platform/config"
	"leadsync_backend/platform/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOService wraps the MinIO client for object storage operations.
type MinIOService struct {
	client *minio.Client
	log    *logger.Logger
}

// NewMinIOService creates a new MinIO storage service.
func NewMinIOService(cfg config.StorageConfig, log *logger.Logger) (*MinIOService, error) {
	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinIOService{client: client, log: log}, nil
}

// EnsureBucketExists creates the bucket if it does not exist.
func (s *MinIOService) EnsureBucketExists(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	s.log.Info("bucket_created", "bucket", bucket)
	return nil
}

// PutObject uploads an object to the given bucket.
func (s *MinIOService) PutObject(ctx context.Context, bucket, objectName, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s/%s: %w", bucket, objectName, err)
	}
	return nil
}
