package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/wellness-atlas/pkg/services/config"
	"github.com/rs/zerolog"
)

const (
	DefaultRegion  = "us-east-1"
	pdfContentType = "application/pdf"
)

// PutObjectAPI is the part of the S3 client the publisher needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads finished reports to a bucket under a key prefix.
type Publisher struct {
	client PutObjectAPI
	bucket string
	prefix string
}

func NewPublisher(client PutObjectAPI, bucket, prefix string) (*Publisher, error) {
	if client == nil {
		return nil, fmt.Errorf("s3 client is nil")
	}
	if bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}
	return &Publisher{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}, nil
}

// NewPublisherFromConfig builds a publisher on the default AWS credential
// chain.
func NewPublisherFromConfig(ctx context.Context, cfg config.StorageConfig) (*Publisher, error) {
	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewPublisher(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Prefix)
}

// loadAWSConfig pins storage.region when it is set. Otherwise the usual AWS
// environment and profile settings apply, falling back to DefaultRegion.
func loadAWSConfig(ctx context.Context, cfg config.StorageConfig) (aws.Config, error) {
	region := awsconfig.WithDefaultRegion(DefaultRegion)
	if cfg.Region != "" {
		region = awsconfig.WithRegion(cfg.Region)
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, region)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return awsCfg, nil
}

func (p *Publisher) Key(filename string) string {
	if p.prefix == "" {
		return filename
	}
	return path.Join(p.prefix, filename)
}

// Publish uploads data as filename and returns its s3:// location.
func (p *Publisher) Publish(ctx context.Context, filename string, data []byte) (string, error) {
	key := p.Key(filename)
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(pdfContentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", key, p.bucket, err)
	}

	location := fmt.Sprintf("s3://%s/%s", p.bucket, key)
	zerolog.Ctx(ctx).Info().Str("location", location).Int("bytes", len(data)).Msg("report published")
	return location, nil
}
