package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Scheme prefixes destinations handled by S3Sink.
const S3Scheme = "s3://"

// ErrInvalidS3URL is returned for destinations that are not s3://bucket[/prefix].
var ErrInvalidS3URL = errors.New("invalid s3 destination")

// PutObjectAPI is the subset of *s3.Client used by S3Sink.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads exports to S3 objects.
type S3Sink struct {
	client PutObjectAPI
}

// NewS3Sink creates an S3Sink backed by client.
func NewS3Sink(client PutObjectAPI) *S3Sink {
	return &S3Sink{client: client}
}

// Save uploads r to s3://bucket/prefix/name. The body is spooled to a
// temporary file first because PutObject needs a seekable body with a known
// length.
func (s *S3Sink) Save(ctx context.Context, dest, name string, r io.Reader) (string, int64, error) {
	bucket, prefix, err := ParseS3URL(dest)
	if err != nil {
		return "", 0, err
	}

	spool, err := os.CreateTemp("", "pbi-export-*")
	if err != nil {
		return "", 0, fmt.Errorf("creating spool file: %w", err)
	}
	defer func() {
		_ = spool.Close()
		_ = os.Remove(spool.Name())
	}()

	n, err := io.Copy(spool, contextReader{ctx: ctx, r: r})
	if err != nil {
		return "", 0, fmt.Errorf("spooling %s: %w", name, err)
	}
	if _, err := spool.Seek(0, io.SeekStart); err != nil {
		return "", 0, fmt.Errorf("rewinding spool file: %w", err)
	}

	key := path.Join(prefix, name)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          spool,
		ContentLength: aws.Int64(n),
		ContentType:   aws.String(contentType(name)),
	})
	if err != nil {
		return "", 0, fmt.Errorf("uploading s3://%s/%s: %w", bucket, key, err)
	}
	return S3Scheme + bucket + "/" + key, n, nil
}

// ParseS3URL splits s3://bucket/prefix into its bucket and key prefix.
func ParseS3URL(dest string) (bucket, prefix string, err error) {
	u, err := url.Parse(dest)
	if err != nil || u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidS3URL, dest)
	}
	return u.Host, strings.Trim(u.Path, "/"), nil
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}
