package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/rs/zerolog"

	"blogcms/api/internal/config"
	"blogcms/api/internal/storage"
)

type UploadService struct {
	store *storage.ObjectStore
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewUploadService(store *storage.ObjectStore, cfg *config.AppConfig, log zerolog.Logger) *UploadService {
	return &UploadService{
		store: store,
		cfg:   cfg,
		log:   log,
	}
}

type UploadInput struct {
	File   multipart.File
	Header *multipart.FileHeader
	Folder string
}

type UploadResult struct {
	Key     string
	FileURL string
}

// Upload stores the file and returns a URL that routes reads back through
// the image proxy endpoint rather than exposing the bucket directly.
func (s *UploadService) Upload(ctx context.Context, input UploadInput) (UploadResult, error) {
	if input.File == nil || input.Header == nil {
		return UploadResult{}, fmt.Errorf("invalid file payload")
	}

	folder := input.Folder
	if folder == "" {
		folder = "uploads"
	}

	name := strings.ReplaceAll(input.Header.Filename, " ", "-")
	key := path.Join(folder, fmt.Sprintf("%d-%s", time.Now().UnixMilli(), name))

	contentType := input.Header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.store.Client().PutObject(ctx, s.cfg.Storage.Bucket, key, input.File, input.Header.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("put object: %w", err)
	}

	fileURL := fmt.Sprintf("%s/images?key=%s",
		strings.TrimSuffix(s.cfg.BaseURL, "/"), url.QueryEscape(key))

	return UploadResult{Key: key, FileURL: fileURL}, nil
}
