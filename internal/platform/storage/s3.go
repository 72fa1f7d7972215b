package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"storefront_backend/internal/feature/account/usecase"
)

// S3API is the subset of the S3 client used by S3Storage.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Config holds the bucket settings. Endpoint is set for S3-compatible
// servers such as MinIO; the static keys are optional.
type S3Config struct {
	Bucket        string
	Region        string
	Endpoint      string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

// S3Storage stores photos as objects under perfiles/ and reports absolute URLs.
type S3Storage struct {
	client  S3API
	bucket  string
	baseURL string
}

var _ usecase.PhotoStorage = (*S3Storage)(nil)

// NewS3Client builds an S3 client from the default AWS configuration chain,
// overridden by cfg where set.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// NewS3Storage creates an S3Storage. Without PublicBaseURL the virtual-hosted
// bucket URL is used, or <endpoint>/<bucket> for custom endpoints.
func NewS3Storage(client S3API, cfg S3Config) *S3Storage {
	base := cfg.PublicBaseURL
	switch {
	case base != "":
	case cfg.Endpoint != "":
		base = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return &S3Storage{client: client, bucket: cfg.Bucket, baseURL: strings.TrimRight(base, "/")}
}

// Save uploads content as perfiles/name and returns its public URL.
func (s *S3Storage) Save(ctx context.Context, name string, content io.Reader) (string, error) {
	body, ok := content.(io.ReadSeeker)
	if !ok {
		b, err := io.ReadAll(content)
		if err != nil {
			return "", err
		}
		body = bytes.NewReader(b)
	}

	key := path.Join(ProfileFolder, filepath.Base(name))
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		in.ContentType = aws.String(ct)
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}
	return s.baseURL + "/" + key, nil
}

// Delete removes an object previously returned by Save. Other paths are ignored.
func (s *S3Storage) Delete(ctx context.Context, p string) error {
	key, ok := strings.CutPrefix(p, s.baseURL+"/")
	if !ok || key == "" {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
