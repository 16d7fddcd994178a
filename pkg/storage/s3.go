// Package storage uploads user media to S3-compatible object storage.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Provider represents the S3-compatible storage provider
type Provider string

const (
	ProviderAWS    Provider = "aws"
	ProviderWasabi Provider = "wasabi"
	ProviderMinIO  Provider = "minio"
)

// Config holds configuration for S3-compatible storage
type Config struct {
	Provider        Provider
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	// Endpoint is required for wasabi/minio, e.g. "https://s3.ap-southeast-1.wasabisys.com"
	Endpoint string
	// PublicBaseURL, when set, prefixes object keys in returned URLs (CDN or public bucket domain)
	PublicBaseURL string
}

// putObjectAPI is the subset of *s3.Client used here
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store uploads objects and reports their public URL
type S3Store struct {
	api  putObjectAPI
	conf Config
}

// NewS3Store creates an S3 store with the given config.
// Wasabi and MinIO use a custom endpoint with path-style addressing.
func NewS3Store(ctx context.Context, cfg Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage: bucket not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	switch cfg.Provider {
	case ProviderWasabi, ProviderMinIO:
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("storage: endpoint required for provider %q", cfg.Provider)
		}
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	default:
		client = s3.NewFromConfig(awsCfg)
	}

	return &S3Store{api: client, conf: cfg}, nil
}

// Put uploads data under key and returns the object's public URL
func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.conf.Bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=86400"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return s.PublicURL(key), nil
}

// PublicURL builds the URL clients use to fetch key
func (s *S3Store) PublicURL(key string) string {
	key = strings.TrimLeft(key, "/")
	switch {
	case s.conf.PublicBaseURL != "":
		return strings.TrimRight(s.conf.PublicBaseURL, "/") + "/" + key
	case s.conf.Endpoint != "":
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.conf.Endpoint, "/"), s.conf.Bucket, key)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.conf.Bucket, s.conf.Region, key)
	}
}
