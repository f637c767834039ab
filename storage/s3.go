package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader publishes a finished video file and returns a URL clients can
// play it from.
type Uploader interface {
	Upload(ctx context.Context, localPath, key string) (string, error)
}

// S3Store uploads finished videos to an S3 bucket.
type S3Store struct {
	client *s3.Client
	bucket string
	region string
}

// NewS3Store uses the standard AWS config/credential chain.
func NewS3Store(ctx context.Context, bucket, region string) (*S3Store, error) {
	if bucket == "" {
		return nil, errors.New("bucket is required")
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &S3Store{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
		region: region,
	}, nil
}

// Upload implements Uploader. The key defaults to the file's base name.
func (s *S3Store) Upload(ctx context.Context, localPath, key string) (string, error) {
	if key == "" {
		key = filepath.Base(localPath)
	}

	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open video: %w", err)
	}
	defer file.Close()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String("video/mp4"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

// Exists returns true if the key is present (HTTP 200 from HeadObject);
// false on a 404.
func (s *S3Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == 404 {
		return false, nil
	}
	return false, err
}
