// Package s3storage implements the summarize.Storage interface on top of AWS
// S3. Buckets are taken from the event notification, so the service itself is
// bucket agnostic.
package s3storage

import (
	"context"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/pkg/errors"
	"github.com/tomomira/s3-summarizer/internal/log"
	"github.com/tomomira/s3-summarizer/internal/summarize"
)

type Service struct {
	s3client s3iface.S3API
	now      func() time.Time
}

// New allocates and returns a Service backed by the provided S3 client.
func New(s3client s3iface.S3API) *Service {
	return &Service{
		s3client: s3client,
		now:      time.Now,
	}
}

// ReadText fetches an object and decodes its body strictly as UTF-8. Any
// failure, including an invalid encoding, is reported as a
// summarize.StorageReadError.
func (s *Service) ReadText(ctx context.Context, bucket, key string) (string, error) {
	resp, err := s.s3client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", &summarize.StorageReadError{Bucket: bucket, Key: key, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &summarize.StorageReadError{
			Bucket: bucket,
			Key:    key,
			Err:    errors.WithMessage(err, "read object body"),
		}
	}
	if !utf8.Valid(body) {
		return "", &summarize.StorageReadError{
			Bucket: bucket,
			Key:    key,
			Err:    errors.New("object body is not valid UTF-8"),
		}
	}
	return string(body), nil
}

// WriteSummary stores summary text under a timestamped key derived from
// sourceKey and returns that key. The object is written as UTF-8 plain text.
func (s *Service) WriteSummary(ctx context.Context, bucket, sourceKey, summary string) (string, error) {
	key := summaryKeyName(sourceKey, s.now())

	_, err := s.s3client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(summary),
		ContentType: aws.String(summaryContentType),
	})
	if err != nil {
		return "", &summarize.StorageWriteError{Bucket: bucket, Key: key, Err: err}
	}

	log.WithContext(ctx).WithFields("bucket", bucket, "key", key).
		Infof("Summary saved to: s3://%s/%s", bucket, key)
	return key, nil
}
