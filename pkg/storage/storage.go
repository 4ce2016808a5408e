package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/legalpulse/survey-api/config"
	"github.com/legalpulse/survey-api/pkg/logger"
	"github.com/legalpulse/survey-api/pkg/metrics"
	"go.uber.org/zap"
)

// ContentTypeCSV is used for export archives
const ContentTypeCSV = "text/csv; charset=utf-8"

// objectPutter is the part of *s3.Client used here
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Client uploads export archives to an S3-compatible bucket
type Client struct {
	s3         objectPutter
	bucketName string
	baseURL    string
	prefix     string
}

// NewClient builds a Client from configuration. Custom endpoints (MinIO,
// Yandex, R2) are addressed path-style.
func NewClient(cfg config.StorageConfig) (*Client, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("object storage is not configured")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	opts := s3.Options{
		Region: region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL(cfg.Endpoint, cfg.BucketName, region)
	}

	logger.Info("Object storage client initialized",
		zap.String("bucket", cfg.BucketName),
		zap.String("endpoint", cfg.Endpoint),
		zap.String("region", region),
	)

	return newClient(s3.New(opts), cfg.BucketName, baseURL, cfg.Prefix), nil
}

func newClient(putter objectPutter, bucket, baseURL, prefix string) *Client {
	return &Client{
		s3:         putter,
		bucketName: bucket,
		baseURL:    strings.TrimRight(baseURL, "/"),
		prefix:     strings.Trim(prefix, "/"),
	}
}

// defaultBaseURL is the public address of the bucket when none is configured
func defaultBaseURL(endpoint, bucket, region string) string {
	if endpoint != "" {
		return strings.TrimRight(endpoint, "/") + "/" + bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
}

// ExportKey names an archive object after its creation time
func (c *Client) ExportKey(kind string, at time.Time) string {
	name := fmt.Sprintf("%s-%s.csv", kind, at.UTC().Format("20060102T150405Z"))
	if c.prefix == "" {
		return name
	}
	return path.Join(c.prefix, name)
}

// Upload stores body under key and returns its public URL
func (c *Client) Upload(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	start := time.Now()
	operation := "putObject"

	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})

	duration := metrics.MeasureDuration(start)

	if err != nil {
		metrics.StorageRequestDuration.WithLabelValues(operation, "error").Observe(duration)
		metrics.StorageRequestTotal.WithLabelValues(operation, "error").Inc()
		logger.LogAPICall("object_storage", operation, "error", duration,
			zap.Error(err),
			zap.String("key", key),
		)
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	metrics.StorageRequestDuration.WithLabelValues(operation, "success").Observe(duration)
	metrics.StorageRequestTotal.WithLabelValues(operation, "success").Inc()
	logger.LogAPICall("object_storage", operation, "success", duration,
		zap.String("key", key),
		zap.Int("size_bytes", len(body)),
	)

	return c.baseURL + "/" + key, nil
}
