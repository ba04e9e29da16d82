package archive

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the part of the S3 client used by the archive.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3RepositoryImpl arquiva os relatórios serializados em um bucket S3.
type S3RepositoryImpl struct {
	client s3API
	bucket string
}

// NewS3Repository loads the default AWS configuration chain (environment,
// shared profile, instance role) and creates the archive for the bucket.
func NewS3Repository(ctx context.Context, bucket string) (*S3RepositoryImpl, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &S3RepositoryImpl{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

// Upload stores data under key and returns its s3:// location.
func (r *S3RepositoryImpl) Upload(ctx context.Context, key string, data []byte) (string, error) {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading %s to bucket %s: %w", key, r.bucket, err)
	}
	return fmt.Sprintf("s3://%s/%s", r.bucket, key), nil
}
