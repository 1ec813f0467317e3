// Package filestorage keeps uploaded design files and manual layout files in
// an S3 compatible bucket. Objects are addressed by URL, <base>/<bucket>/<key>.
package filestorage

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"printflow/internal/core/ports"
	"printflow/internal/pkg/errs"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Storage implements ports.FileStorage.
type Storage struct {
	client *minio.Client
	bucket string
	base   string
}

func New(cfg Config) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return &Storage{
		client: client,
		bucket: cfg.Bucket,
		base:   fmt.Sprintf("%s://%s/%s/", scheme, cfg.Endpoint, cfg.Bucket),
	}, nil
}

// EnsureBucket creates the bucket on first start.
func (s *Storage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *Storage) Upload(ctx context.Context, file ports.FileUpload) (ports.FileInfo, error) {
	key := path.Join(file.Folder, file.Name)
	info, err := s.client.PutObject(ctx, s.bucket, key, file.Body, file.Size, minio.PutObjectOptions{
		ContentType: file.ContentType,
	})
	if err != nil {
		return ports.FileInfo{}, fmt.Errorf("upload file: %w", err)
	}

	return ports.FileInfo{
		URL:         s.base + key,
		Size:        info.Size,
		ContentType: file.ContentType,
	}, nil
}

// Stat fails with errs.ObjectNotFoundError for URLs outside the bucket as well
// as for missing objects.
func (s *Storage) Stat(ctx context.Context, fileURL string) (ports.FileInfo, error) {
	key, ok := s.objectKey(fileURL)
	if !ok {
		return ports.FileInfo{}, errs.NewObjectNotFoundError("file", fileURL)
	}

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return ports.FileInfo{}, errs.NewObjectNotFoundErrorWithCause("file", fileURL, err)
		}
		return ports.FileInfo{}, fmt.Errorf("stat file: %w", err)
	}

	return ports.FileInfo{
		URL:         s.base + key,
		Size:        info.Size,
		ContentType: info.ContentType,
	}, nil
}

func (s *Storage) objectKey(fileURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(fileURL))
	if err != nil {
		return "", false
	}
	u.RawQuery, u.Fragment = "", ""

	key, found := strings.CutPrefix(u.String(), s.base)
	if !found || key == "" || strings.Contains(key, "..") {
		return "", false
	}
	return key, true
}
