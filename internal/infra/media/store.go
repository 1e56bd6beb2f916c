package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/m04kA/BMC-HallBookingService/internal/config"
)

// Store хранилище изображений залов и записей блога
// Работает с любым S3-совместимым хранилищем (MinIO, Supabase Storage, S3)
type Store struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewStore создает клиент хранилища изображений
func NewStore(cfg config.MediaConfig) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("media.store: failed to create client: %w", err)
	}

	return &Store{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// EnsureBucket проверяет наличие bucket и создает его при необходимости
func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBucket, err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("%w: %v", ErrBucket, err)
	}

	return nil
}

// Upload загружает файл и возвращает его публичный URL
// Имя объекта получает uuid-префикс, чтобы исключить коллизии имен файлов
func (s *Store) Upload(ctx context.Context, fileName string, reader io.Reader, size int64, contentType string) (string, error) {
	objectName := fmt.Sprintf("%s%s", uuid.NewString(), path.Ext(fileName))

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUpload, objectName, err)
	}

	return s.publicBaseURL + "/" + objectName, nil
}

// Delete удаляет объект по имени
func (s *Store) Delete(ctx context.Context, objectName string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDelete, objectName, err)
	}
	return nil
}
