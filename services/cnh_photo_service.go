package services

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"motorent-api/apperrors"
	"motorent-api/config"
)

var allowedCNHContentTypes = map[string]bool{
	"image/png": true,
	"image/bmp": true,
}

// CNHPhotoService stores driver license photos in an S3-compatible bucket.
type CNHPhotoService struct {
	client *minio.Client
	bucket string
}

func NewCNHPhotoService(cfg *config.Config) (*CNHPhotoService, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	return &CNHPhotoService{client: client, bucket: cfg.MinIOBucket}, nil
}

// EnsureBucket creates the photo bucket if it does not exist yet.
func (s *CNHPhotoService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

// Upload stores a CNH photo and returns its object name. Only PNG and BMP
// are accepted.
func (s *CNHPhotoService) Upload(ctx context.Context, userID, filename, contentType string, reader io.Reader, size int64) (string, error) {
	if !allowedCNHContentTypes[contentType] {
		return "", apperrors.ErrInvalidImageFormat
	}

	objectName := fmt.Sprintf("cnh/%s/%s-%s", userID, uuid.New().String(), filename)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", apperrors.Internal("Error uploading CNH photo")
	}

	return objectName, nil
}
