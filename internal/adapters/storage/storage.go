package storage

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"acaradashboard/internal/domain"
)

// cacheForever is sent with uploaded posters; object keys are never reused.
const cacheForever = "public, max-age=31536000, immutable"

// DefaultURLTTL is the lifetime of signed URLs when none is configured.
const DefaultURLTTL = 7 * 24 * time.Hour

// S3Config holds configuration for an S3-compatible bucket.
type S3Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Endpoint        string // optional, for S3-compatible services
	UsePathStyle    bool
}

// OSSConfig holds configuration for an Alibaba Cloud OSS bucket.
type OSSConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	SecurityToken   string
	Bucket          string
	PublicRead      bool // bucket allows anonymous reads via its virtual-host URL
}

// Config selects and configures the blob storage provider.
type Config struct {
	Provider      string // "s3" or "oss"
	PublicBaseURL string // optional CDN/base URL; objects are served at PublicBaseURL/key
	URLTTL        time.Duration
	S3            S3Config
	OSS           OSSConfig
}

// NewBlobStorage creates blob storage from config.
func NewBlobStorage(cfg Config) (domain.BlobStorage, error) {
	if cfg.URLTTL <= 0 {
		cfg.URLTTL = DefaultURLTTL
	}
	switch cfg.Provider {
	case "s3":
		if cfg.S3.Bucket == "" {
			return nil, fmt.Errorf("s3 storage: bucket is required")
		}
		return newS3Storage(cfg), nil
	case "oss":
		if cfg.OSS.Endpoint == "" || cfg.OSS.Bucket == "" {
			return nil, fmt.Errorf("oss storage: endpoint and bucket are required")
		}
		return newOSSStorage(cfg)
	default:
		log.Printf("[STORAGE] Unknown storage provider %q", cfg.Provider)
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

// publicURL joins base and key, escaping each key segment.
func publicURL(base, key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(segments, "/")
}
