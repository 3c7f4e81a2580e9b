package sources

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3Client struct {
	objects map[string][]byte // key -> body, listed in insertion order via keys
	keys    []string
	listErr error
	getErr  error
}

func newFakeS3Client() *fakeS3Client {
	return &fakeS3Client{objects: make(map[string][]byte)}
}

func (c *fakeS3Client) add(key string, body []byte) {
	c.keys = append(c.keys, key)
	c.objects[key] = body
}

func (c *fakeS3Client) ListObjectsV2(_ context.Context, _ *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	contents := make([]types.Object, 0, len(c.keys))
	for _, key := range c.keys {
		contents = append(contents, types.Object{
			Key:  aws.String(key),
			Size: aws.Int64(int64(len(c.objects[key]))),
		})
	}
	return &s3.ListObjectsV2Output{Contents: contents, IsTruncated: aws.Bool(false)}, nil
}

func (c *fakeS3Client) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	body, ok := c.objects[aws.ToString(params.Key)]
	if !ok {
		return nil, errors.New("no such key")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func gzipBytes(t *testing.T, text string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func TestS3Source_EnumeratesObjects(t *testing.T) {
	t.Parallel()

	client := newFakeS3Client()
	client.add("logs/2022-04-19-00-00-00-AAAA", []byte("line one"))
	client.add("logs/", nil) // directory placeholder
	client.add("logs/2022-04-19-01-00-00-BBBB.gz", gzipBytes(t, "line two"))

	source := NewS3SourceWithClient(client, "access-logs", "logs/")

	var keys, texts []string
	err := source.EachBlob(context.Background(), func(_ context.Context, blob *Blob) error {
		keys = append(keys, blob.Key)
		texts = append(texts, blob.Text)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"logs/2022-04-19-00-00-00-AAAA",
		"logs/2022-04-19-01-00-00-BBBB.gz",
	}, keys)
	assert.Equal(t, []string{"line one", "line two"}, texts)
}

func TestS3Source_ListFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	client := newFakeS3Client()
	client.listErr = errors.New("access denied")

	source := NewS3SourceWithClient(client, "access-logs", "")

	err := source.EachBlob(context.Background(), func(_ context.Context, _ *Blob) error { return nil })
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestS3Source_DownloadFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	client := newFakeS3Client()
	client.add("logs/a", []byte("x"))
	client.getErr = errors.New("timeout")

	source := NewS3SourceWithClient(client, "access-logs", "logs/")

	err := source.EachBlob(context.Background(), func(_ context.Context, _ *Blob) error { return nil })
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}
