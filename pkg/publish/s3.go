package publish

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the slice of the S3 client the store uses.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store publishes snapshot files to an S3 bucket.
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := publish.NewS3Store(s3.NewFromConfig(cfg), "my-bucket", "gallery/")
type S3Store struct {
	client s3API
	bucket string
	prefix string
}

// NewS3Store creates an S3 publish target. The prefix is prepended to
// every snapshot key.
func NewS3Store(client *s3.Client, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

// Put uploads one snapshot file.
func (s *S3Store) Put(ctx context.Context, f File) error {
	key, err := cleanKey(f.Key)
	if err != nil {
		return err
	}
	if s.prefix != "" {
		key = path.Join(s.prefix, key)
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(f.Body),
		ContentType: aws.String(f.ContentType),
	})
	if err != nil {
		return fmt.Errorf("s3 put %s: %w", key, err)
	}
	return nil
}
