package sources

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const listPageSize = 1000

// S3Client is the subset of the S3 API the source needs.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	s3.ListObjectsV2APIClient
}

type s3Source struct {
	client S3Client
	bucket string
	prefix string
}

// NewS3Source creates a source that yields every object under bucket/prefix
// as one blob, following list pagination. Objects with a .gz suffix are
// decompressed transparently.
func NewS3Source(ctx context.Context, bucket, prefix, region string) (Source, error) {
	if bucket == "" {
		return nil, fmt.Errorf("%w: bucket not configured", ErrSourceUnavailable)
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	return NewS3SourceWithClient(s3.NewFromConfig(cfg), bucket, prefix), nil
}

// NewS3SourceWithClient is the injection point for tests.
func NewS3SourceWithClient(client S3Client, bucket, prefix string) Source {
	return &s3Source{client: client, bucket: bucket, prefix: prefix}
}

func (s *s3Source) EachBlob(ctx context.Context, fn func(ctx context.Context, blob *Blob) error) error {
	input := &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(s.prefix),
		MaxKeys: aws.Int32(listPageSize),
	}

	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("%w: list objects in %s/%s: %w", ErrSourceUnavailable, s.bucket, s.prefix, err)
		}

		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if strings.HasSuffix(key, "/") {
				// directory placeholder object
				continue
			}

			text, err := s.fetchObject(ctx, key)
			if err != nil {
				return err
			}

			if err := fn(ctx, &Blob{Key: key, Text: text}); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *s3Source) fetchObject(ctx context.Context, key string) (string, error) {
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("%w: get object %s: %w", ErrSourceUnavailable, key, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read object %s: %w", ErrSourceUnavailable, key, err)
	}

	if strings.HasSuffix(key, ".gz") {
		gr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("%w: decompress object %s: %w", ErrSourceUnavailable, key, err)
		}
		defer gr.Close()
		data, err = io.ReadAll(gr)
		if err != nil {
			return "", fmt.Errorf("%w: decompress object %s: %w", ErrSourceUnavailable, key, err)
		}
	}

	return string(data), nil
}
