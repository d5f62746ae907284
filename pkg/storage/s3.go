package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/JaimeStill/jobtracker/pkg/lifecycle"
)

type s3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	region  string
	logger  *slog.Logger
	now     func() time.Time
}

func newS3(cfg *Config, logger *slog.Logger) (*s3Store, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
		}
		o.UsePathStyle = cfg.S3.UsePathStyle
	})

	return &s3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.ContainerName,
		region:  cfg.S3.Region,
		logger:  logger,
		now:     time.Now,
	}, nil
}

func (s *s3Store) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting storage system")

	lc.OnStartup(func() error {
		ctx := lc.Context()

		_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
		if err == nil {
			s.logger.Info("storage bucket ready", "bucket", s.bucket)
			return nil
		}
		if !isNotFound(err) {
			s.logger.Error("storage bucket check failed", "error", err)
			return fmt.Errorf("storage bucket: %w", err)
		}

		input := &s3.CreateBucketInput{Bucket: aws.String(s.bucket)}
		if s.region != "us-east-1" {
			input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
				LocationConstraint: types.BucketLocationConstraint(s.region),
			}
		}

		if _, err := s.client.CreateBucket(ctx, input); err != nil {
			s.logger.Error("storage bucket creation failed", "error", err)
			return fmt.Errorf("create storage bucket: %w", err)
		}

		s.logger.Info("storage bucket created", "bucket", s.bucket)
		return nil
	})

	return nil
}

func (s *s3Store) UploadURL(ctx context.Context, key, contentType string, ttl time.Duration) (*SignedURL, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	expires := s.now().UTC().Add(ttl)
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return nil, fmt.Errorf("presign put %s: %w", key, err)
	}

	return &SignedURL{
		URL:       req.URL,
		Method:    http.MethodPut,
		Headers:   signedHeaders(req.SignedHeader, contentType),
		ExpiresAt: expires,
	}, nil
}

func (s *s3Store) DownloadURL(ctx context.Context, key, fileName string, ttl time.Duration) (*SignedURL, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	expires := s.now().UTC().Add(ttl)
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket:                     aws.String(s.bucket),
		Key:                        aws.String(key),
		ResponseContentDisposition: aws.String(attachmentDisposition(fileName)),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return nil, fmt.Errorf("presign get %s: %w", key, err)
	}

	return &SignedURL{
		URL:       req.URL,
		Method:    http.MethodGet,
		ExpiresAt: expires,
	}, nil
}

func (s *s3Store) Find(ctx context.Context, key string) (*Object, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("head object %s: %w", key, err)
	}

	return &Object{
		Key:           key,
		ContentType:   aws.ToString(out.ContentType),
		ContentLength: aws.ToInt64(out.ContentLength),
		LastModified:  out.LastModified,
	}, nil
}

// Delete reports ErrNotFound for missing objects to match the Azure
// behaviour; S3 itself treats deletes of missing keys as success.
func (s *s3Store) Delete(ctx context.Context, key string) error {
	if _, err := s.Find(ctx, key); err != nil {
		return err
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}

	return nil
}

func signedHeaders(h http.Header, contentType string) map[string]string {
	headers := map[string]string{"Content-Type": contentType}
	for name, values := range h {
		if name == "Host" || len(values) == 0 {
			continue
		}
		headers[http.CanonicalHeaderKey(name)] = values[0]
	}
	return headers
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey", "NoSuchBucket":
			return true
		}
	}
	return false
}
