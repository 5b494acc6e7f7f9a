package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3Storage struct {
	client        *s3.Client
	presign       *s3.PresignClient
	bucket        string
	publicBaseURL string
	cfg           Config
}

func newS3Storage(cfg Config) *s3Storage {
	awsCfg := aws.Config{
		Region: cfg.S3.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				cfg.S3.AccessKeyID,
				cfg.S3.SecretAccessKey,
				"",
			),
		),
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
		}
		o.UsePathStyle = cfg.S3.UsePathStyle
	})
	return &s3Storage{
		client:        client,
		presign:       s3.NewPresignClient(client),
		bucket:        cfg.S3.Bucket,
		publicBaseURL: cfg.PublicBaseURL,
		cfg:           cfg,
	}
}

func (s *s3Storage) Put(ctx context.Context, key string, body io.ReadSeeker, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:             aws.String(s.bucket),
		Key:                aws.String(key),
		Body:               body,
		ContentLength:      aws.Int64(size),
		CacheControl:       aws.String(cacheForever),
		ContentDisposition: aws.String("inline"),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("s3 put object: %w", err)
	}
	return nil
}

// URL returns PublicBaseURL/key when a public base is configured, otherwise a
// presigned GET URL valid for the configured TTL.
func (s *s3Storage) URL(ctx context.Context, key string) (string, error) {
	if s.publicBaseURL != "" {
		return publicURL(s.publicBaseURL, key), nil
	}
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.cfg.URLTTL))
	if err != nil {
		return "", fmt.Errorf("s3 presign get object: %w", err)
	}
	return req.URL, nil
}
