package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"portfolio_studio/internal/infrastructure/database"
	"portfolio_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ConnectS3 creates the S3 client used by the gallery blob store.
//
// Supported env vars (local-friendly):
//   - S3_ENDPOINT (optional; e.g. http://minio:9000, switches to path style)
func ConnectS3() *s3.Client {
	cfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create s3 config: %v", err)
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

// S3ObjectStorage is the gallery blob store: one fixed bucket, objects keyed
// by the folder-tree path.

type S3ObjectStorage struct {
	client  *s3.Client
	bucket  string
	baseURL string
	region  string
}

var _ interfaces.IObjectStorage = (*S3ObjectStorage)(nil)

func NewS3ObjectStorage(client *s3.Client, bucket, publicBaseURL string) *S3ObjectStorage {
	return &S3ObjectStorage{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(publicBaseURL, "/"),
		region:  getenvDefault("AWS_REGION", "sa-east-1"),
	}
}

func (s *S3ObjectStorage) Upload(ctx context.Context, path string, body io.Reader, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	_, err := s.client.PutObject(ctx, input)
	return err
}

func (s *S3ObjectStorage) Copy(ctx context.Context, fromPath, toPath string) error {
	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.bucket),
		CopySource: aws.String(s.bucket + "/" + fromPath),
		Key:        aws.String(toPath),
	})
	return err
}

func (s *S3ObjectStorage) Remove(ctx context.Context, path string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	return err
}

// PublicURL resolves the browser-facing URL of an object. A CDN or reverse
// proxy base URL takes precedence over the raw bucket URL.
func (s *S3ObjectStorage) PublicURL(path string) string {
	if s.baseURL != "" {
		return s.baseURL + "/" + path
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, path)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
