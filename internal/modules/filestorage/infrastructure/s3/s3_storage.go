package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds configuration for S3 or MinIO backed avatar storage.
type S3Config struct {
	BucketName     string
	Region         string
	Endpoint       string // internal endpoint (e.g. minio:9000)
	PublicEndpoint string // endpoint browsers can reach (e.g. localhost:9000)
	AccessKey      string
	SecretKey      string
	UseSSL         bool
}

// S3Storage hosts avatars in an S3-compatible bucket. The bucket is expected
// to allow public reads on the avatars/ prefix.
type S3Storage struct {
	client *s3.Client
	config S3Config
}

func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	var awsCfg aws.Config
	var err error

	if cfg.Endpoint != "" {
		// MinIO / LocalStack configuration
		awsCfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		)
	} else {
		awsCfg, err = config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(normalizeEndpoint(cfg.Endpoint, cfg.UseSSL))
			o.UsePathStyle = true // required for MinIO
		}
	})

	return &S3Storage{client: client, config: cfg}, nil
}

func (s *S3Storage) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.BucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to s3: %w", err)
	}

	if s.config.PublicEndpoint != "" {
		return fmt.Sprintf("%s/%s/%s",
			normalizeEndpoint(s.config.PublicEndpoint, s.config.UseSSL), s.config.BucketName, key), nil
	}
	if s.config.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s",
			normalizeEndpoint(s.config.Endpoint, s.config.UseSSL), s.config.BucketName, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.BucketName, s.config.Region, key), nil
}

func (s *S3Storage) DeleteFile(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3Storage) GetKeyFromURL(fileURL string) (string, error) {
	checkPrefix := func(endpoint string) (string, bool) {
		if endpoint == "" {
			return "", false
		}
		prefix := fmt.Sprintf("%s/%s/", normalizeEndpoint(endpoint, s.config.UseSSL), s.config.BucketName)
		if strings.HasPrefix(fileURL, prefix) {
			return strings.TrimPrefix(fileURL, prefix), true
		}
		return "", false
	}

	if key, ok := checkPrefix(s.config.PublicEndpoint); ok {
		return key, nil
	}
	if key, ok := checkPrefix(s.config.Endpoint); ok {
		return key, nil
	}

	if s.config.Endpoint == "" {
		prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.config.BucketName, s.config.Region)
		if strings.HasPrefix(fileURL, prefix) {
			return strings.TrimPrefix(fileURL, prefix), nil
		}
	}

	return "", fmt.Errorf("url does not match expected format: %s", fileURL)
}

func normalizeEndpoint(endpoint string, useSSL bool) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}
