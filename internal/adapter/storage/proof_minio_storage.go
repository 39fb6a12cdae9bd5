package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/IgorSouzaLima/rjlima/internal/infrastructure/config"
	"github.com/IgorSouzaLima/rjlima/internal/usecase/interfaces"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const proofPrefix = "proofs"

// ErrProofPathUnresolvable is returned when a public URL does not point inside
// the proof bucket.
var ErrProofPathUnresolvable = errors.New("proof path unresolvable")

var extByContentType = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
	"image/heic": "heic",
}

// ProofMinioStorage keeps delivery proof photos in an S3-compatible bucket
// readable by the public (the tracking page links to the photos directly).
//
// Object keys: proofs/{invoiceID}-{unixMillis}.{ext}
// Public URLs: {baseURL}/{bucket}/{key}
type ProofMinioStorage struct {
	client  *minio.Client
	bucket  string
	region  string
	baseURL string
	now     func() time.Time
}

var _ interfaces.IProofStorage = (*ProofMinioStorage)(nil)

func NewProofMinioStorage(cfg *config.Config) (*ProofMinioStorage, error) {
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
		Region: cfg.S3Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio: %w", err)
	}
	return &ProofMinioStorage{
		client:  client,
		bucket:  cfg.ProofBucket,
		region:  cfg.S3Region,
		baseURL: cfg.ProofBaseURL(),
		now:     time.Now,
	}, nil
}

// EnsureBucket creates the proof bucket when missing and opens its proofs/
// prefix to anonymous reads.
func (s *ProofMinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("make bucket %s: %w", s.bucket, err)
		}
		log.Printf("[storage][minio] bucket created bucket=%s", s.bucket)
	}
	if err := s.client.SetBucketPolicy(ctx, s.bucket, publicReadPolicy(s.bucket)); err != nil {
		return fmt.Errorf("set bucket policy %s: %w", s.bucket, err)
	}
	return nil
}

func (s *ProofMinioStorage) Upload(ctx context.Context, invoiceID string, file interfaces.ProofFile) (interfaces.StoredProof, error) {
	key := proofObjectKey(invoiceID, file.Name, file.ContentType, s.now())
	size := file.Size
	if size <= 0 {
		size = -1
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, file.Body, size, minio.PutObjectOptions{
		ContentType:  file.ContentType,
		CacheControl: "public, max-age=3600",
	})
	if err != nil {
		return interfaces.StoredProof{}, fmt.Errorf("upload proof object: %w", err)
	}
	return interfaces.StoredProof{Path: key, URL: s.publicURL(key)}, nil
}

func (s *ProofMinioStorage) Delete(ctx context.Context, objectKey string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("remove proof object: %w", err)
	}
	return nil
}

func (s *ProofMinioStorage) PathFromURL(url string) (string, error) {
	return ProofPathFromURL(url, s.bucket)
}

func (s *ProofMinioStorage) publicURL(key string) string {
	return s.baseURL + "/" + s.bucket + "/" + key
}

// ProofPathFromURL extracts the object key following the /{bucket}/ segment
// of a public URL. Query strings and fragments are dropped.
func ProofPathFromURL(url, bucket string) (string, error) {
	marker := "/" + bucket + "/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return "", fmt.Errorf("%w: %q", ErrProofPathUnresolvable, url)
	}
	key := url[idx+len(marker):]
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	if key == "" {
		return "", fmt.Errorf("%w: %q", ErrProofPathUnresolvable, url)
	}
	return key, nil
}

func proofObjectKey(invoiceID, fileName, contentType string, at time.Time) string {
	return fmt.Sprintf("%s/%s-%d.%s", proofPrefix, invoiceID, at.UnixMilli(), proofExtension(fileName, contentType))
}

// proofExtension prefers the content type, then the uploaded file name when it
// carries a known image extension.
func proofExtension(fileName, contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	if ext, ok := extByContentType[strings.ToLower(strings.TrimSpace(mediaType))]; ok {
		return ext
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(fileName), "."))
	if ext == "jpeg" {
		return "jpg"
	}
	for _, known := range extByContentType {
		if ext == known {
			return ext
		}
	}
	return "jpg"
}
