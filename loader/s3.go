package loader

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config selects the AWS configuration used for s3:// locations.
// Empty values fall back to the standard AWS config and credential chain.
type S3Config struct {
	Region       string
	Profile      string
	UsePathStyle bool
}

type loadConfigFunc func(context.Context, ...func(*config.LoadOptions) error) (aws.Config, error)

// S3Fetcher reads s3://bucket/key documents. The client is created on first successful use;
// a failed attempt is retried by the next fetch.
type S3Fetcher struct {
	cfg        S3Config
	loadConfig loadConfigFunc

	mu     sync.Mutex
	client *s3.Client
}

func NewS3Fetcher(cfg S3Config) *S3Fetcher {
	return &S3Fetcher{cfg: cfg, loadConfig: config.LoadDefaultConfig}
}

func (f *S3Fetcher) init(ctx context.Context) (*s3.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client != nil {
		return f.client, nil
	}

	var loadOpts []func(*config.LoadOptions) error
	if f.cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(f.cfg.Region))
	}
	if f.cfg.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(f.cfg.Profile))
	}

	awsCfg, err := f.loadConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	f.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = f.cfg.UsePathStyle
	})
	return f.client, nil
}

func (f *S3Fetcher) Fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	bucket, objectKey, err := parseS3Location(location)
	if err != nil {
		return nil, err
	}

	client, err := f.init(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, err
	}

	return out.Body, nil
}

// parseS3Location splits s3://bucket/path/to/key into bucket and key.
func parseS3Location(location string) (bucket, objectKey string, err error) {
	parsed, err := url.Parse(location)
	if err != nil {
		return "", "", err
	}

	bucket = parsed.Host
	objectKey = strings.TrimPrefix(parsed.Path, "/")
	if bucket == "" || objectKey == "" {
		return "", "", fmt.Errorf("invalid s3 location %q, expected s3://bucket/key", location)
	}

	return bucket, objectKey, nil
}
