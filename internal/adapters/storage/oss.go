package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

type ossStorage struct {
	bucket        *oss.Bucket
	endpoint      string
	bucketName    string
	publicRead    bool
	publicBaseURL string
	urlTTLSeconds int64
}

func newOSSStorage(cfg Config, opts ...oss.ClientOption) (*ossStorage, error) {
	if cfg.OSS.SecurityToken != "" {
		opts = append(opts, oss.SecurityToken(cfg.OSS.SecurityToken))
	}
	client, err := oss.New(cfg.OSS.Endpoint, cfg.OSS.AccessKeyID, cfg.OSS.SecretAccessKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(cfg.OSS.Bucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}
	log.Printf("[STORAGE] Using OSS bucket %s at %s", cfg.OSS.Bucket, cfg.OSS.Endpoint)
	return &ossStorage{
		bucket:        bkt,
		endpoint:      cfg.OSS.Endpoint,
		bucketName:    cfg.OSS.Bucket,
		publicRead:    cfg.OSS.PublicRead,
		publicBaseURL: cfg.PublicBaseURL,
		urlTTLSeconds: int64(cfg.URLTTL.Seconds()),
	}, nil
}

func (s *ossStorage) Put(ctx context.Context, key string, body io.ReadSeeker, size int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentLength(size),
		oss.ContentDisposition("inline"),
		oss.CacheControl(cacheForever),
	}
	if err := s.bucket.PutObject(key, body, opts...); err != nil {
		return fmt.Errorf("oss put object: %w", err)
	}
	return nil
}

// URL prefers the configured public base, then the bucket's virtual-host URL
// for public-read buckets, and falls back to a signed GET URL.
func (s *ossStorage) URL(_ context.Context, key string) (string, error) {
	if s.publicBaseURL != "" {
		return publicURL(s.publicBaseURL, key), nil
	}
	if s.publicRead {
		end := strings.TrimPrefix(strings.TrimPrefix(s.endpoint, "https://"), "http://")
		return publicURL(fmt.Sprintf("https://%s.%s", s.bucketName, end), key), nil
	}
	signed, err := s.bucket.SignURL(key, oss.HTTPGet, s.urlTTLSeconds)
	if err != nil {
		return "", fmt.Errorf("oss sign url: %w", err)
	}
	return signed, nil
}
