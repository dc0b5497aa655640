package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader stores an object and returns the URL clients can fetch it from.
type Uploader interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type Options struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	PublicURL string
}

type S3 struct {
	client *s3.Client
	opts   Options
}

// NewS3 builds a client from explicit settings. A custom endpoint (MinIO,
// R2, localstack) switches to path-style addressing.
func NewS3(opts Options) *S3 {
	awsCfg := aws.Config{Region: opts.Region}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3{client: client, opts: opts}
}

func (s *S3) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.opts.Bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return ObjectURL(s.opts, key), nil
}

func ObjectURL(opts Options, key string) string {
	switch {
	case opts.PublicURL != "":
		return strings.TrimRight(opts.PublicURL, "/") + "/" + key
	case opts.Endpoint != "":
		return strings.TrimRight(opts.Endpoint, "/") + "/" + opts.Bucket + "/" + key
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", opts.Bucket, opts.Region, key)
	}
}

var _ Uploader = (*S3)(nil)
