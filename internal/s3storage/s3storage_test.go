package s3storage

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/johannesboyne/gofakes3"
	"github.com/johannesboyne/gofakes3/backend/s3mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomomira/s3-summarizer/internal/summarize"
)

// setupS3 instantiates a fake S3 backend with a single bucket.
func setupS3(t *testing.T, bucket string) (s3iface.S3API, func()) {
	t.Helper()
	backend := s3mem.New()
	faker := gofakes3.New(backend)
	ts := httptest.NewServer(faker.Server())

	// configure S3 client
	s3Config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials("YOUR-ACCESSKEYID", "YOUR-SECRETACCESSKEY", ""),
		Endpoint:         aws.String(ts.URL),
		Region:           aws.String("eu-central-1"),
		DisableSSL:       aws.Bool(true),
		S3ForcePathStyle: aws.Bool(true),
	}
	newSession, err := session.NewSession(s3Config)
	if err != nil {
		t.Fatalf("Failed to instantiate session: %v", err)
	}

	s3Client := s3.New(newSession)

	_, err = s3Client.CreateBucket(&s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		t.Fatalf("Failed to create test bucket: %v", err)
	}

	return s3Client, ts.Close
}

func seedObject(t *testing.T, s3Client s3iface.S3API, bucket, key, body string) {
	t.Helper()
	_, err := s3Client.PutObject(&s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   strings.NewReader(body),
	})
	if err != nil {
		t.Fatalf("Failed to seed object '%s': %v", key, err)
	}
}

func TestService_ReadText(t *testing.T) {
	s3Client, closeS3 := setupS3(t, "invoices")
	defer closeS3()
	seedObject(t, s3Client, "invoices", "reports/q1.txt", "第1四半期の売上レポート")

	service := New(s3Client)

	text, err := service.ReadText(context.Background(), "invoices", "reports/q1.txt")

	require.NoError(t, err)
	assert.Equal(t, "第1四半期の売上レポート", text)
}

func TestService_ReadText_missingObject(t *testing.T) {
	s3Client, closeS3 := setupS3(t, "invoices")
	defer closeS3()

	service := New(s3Client)

	_, err := service.ReadText(context.Background(), "invoices", "reports/missing.txt")

	require.Error(t, err)
	var readErr *summarize.StorageReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, "invoices", readErr.Bucket)
	assert.Equal(t, "reports/missing.txt", readErr.Key)
}

func TestService_ReadText_invalidUTF8(t *testing.T) {
	s3Client, closeS3 := setupS3(t, "invoices")
	defer closeS3()
	seedObject(t, s3Client, "invoices", "reports/q1.txt", string([]byte{0xff, 0xfe, 0xfd}))

	service := New(s3Client)

	_, err := service.ReadText(context.Background(), "invoices", "reports/q1.txt")

	require.Error(t, err)
	var readErr *summarize.StorageReadError
	require.ErrorAs(t, err, &readErr)
	assert.Contains(t, readErr.Error(), "not valid UTF-8")
}

func TestService_WriteSummary(t *testing.T) {
	s3Client, closeS3 := setupS3(t, "invoices")
	defer closeS3()

	service := New(s3Client)
	service.now = func() time.Time {
		return time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	}

	key, err := service.WriteSummary(context.Background(), "invoices", "reports/q1.txt", "四半期の要約")

	require.NoError(t, err)
	assert.Equal(t, "summaries/reports/q1_summary_20240102_150405.txt", key)

	resp, err := s3Client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String("invoices"),
		Key:    aws.String(key),
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "四半期の要約", string(body))
	require.NotNil(t, resp.ContentType)
	assert.Equal(t, "text/plain; charset=utf-8", *resp.ContentType)
}

func TestService_WriteSummary_distinctTimestamps(t *testing.T) {
	s3Client, closeS3 := setupS3(t, "invoices")
	defer closeS3()

	service := New(s3Client)
	timestamps := []time.Time{
		time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC),
		time.Date(2024, 1, 2, 15, 4, 6, 0, time.UTC),
	}
	service.now = func() time.Time {
		next := timestamps[0]
		timestamps = timestamps[1:]
		return next
	}

	first, err := service.WriteSummary(context.Background(), "invoices", "reports/q1.txt", "最初の要約")
	require.NoError(t, err)
	second, err := service.WriteSummary(context.Background(), "invoices", "reports/q1.txt", "二つ目の要約")
	require.NoError(t, err)

	// repeated invocations create distinct objects, not overwrites
	assert.NotEqual(t, first, second)

	list, err := s3Client.ListObjectsV2(&s3.ListObjectsV2Input{
		Bucket: aws.String("invoices"),
		Prefix: aws.String("summaries/"),
	})
	require.NoError(t, err)
	assert.Len(t, list.Contents, 2)
}

func TestService_WriteSummary_missingBucket(t *testing.T) {
	s3Client, closeS3 := setupS3(t, "invoices")
	defer closeS3()

	service := New(s3Client)

	_, err := service.WriteSummary(context.Background(), "unknown-bucket", "reports/q1.txt", "四半期の要約")

	require.Error(t, err)
	var writeErr *summarize.StorageWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, "unknown-bucket", writeErr.Bucket)
}
