package summarize

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tomomira/s3-summarizer/internal/log"
	"github.com/tomomira/s3-summarizer/internal/tracing"
)

// Handler processes S3 object creation notifications. Storage and inference
// backends are injected so tests can substitute fakes.
type Handler struct {
	storage   Storage
	inference Inference
	tracer    tracing.Tracer
}

// NewHandler allocates and returns a Handler.
func NewHandler(storage Storage, inference Inference, tracer tracing.Tracer) *Handler {
	return &Handler{
		storage:   storage,
		inference: inference,
		tracer:    tracer,
	}
}

// Result is the invocation result reported back to the trigger
// infrastructure.
type Result struct {
	StatusCode int        `json:"statusCode"`
	Body       ResultBody `json:"body"`
}

// ResultBody describes the outcome of a batch. ProcessedFiles counts records
// attempted, not records actually summarized.
type ResultBody struct {
	Status         string `json:"status"`
	ProcessedFiles int    `json:"processed_files,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Handle processes all records of an S3 event notification in order. The
// first record failure aborts the batch; remaining records are not attempted
// and the whole invocation is reported as failed, even if earlier records
// were already stored. Failures are encoded in the Result, never returned as
// an error to the runtime.
func (h *Handler) Handle(ctx context.Context, event events.S3Event) (Result, error) {
	span, ctx := h.tracer.FromCtx(ctx, "summarize.Handle")
	defer span.Finish()

	ctx = log.AddContext(ctx, "batchId", uuid.New().String())
	logger := log.WithContext(ctx)

	for _, record := range event.Records {
		bucket := record.S3.Bucket.Name
		key, err := url.QueryUnescape(record.S3.Object.Key)
		if err != nil {
			return h.failure(ctx, &BatchAbortError{
				Key: record.S3.Object.Key,
				Err: errors.WithMessage(err, "decode object key"),
			}), nil
		}

		logger.WithFields("bucket", bucket, "key", key).Infof("Processing file: s3://%s/%s", bucket, key)

		if isSummaryKey(key) {
			logger.WithFields("key", key).Infof("Skipping summary file: %s", key)
			continue
		}
		if !isTextKey(key) {
			logger.WithFields("key", key).Infof("Skipping non-txt file: %s", key)
			continue
		}

		err = h.process(ctx, bucket, key)
		if err != nil {
			return h.failure(ctx, &BatchAbortError{Key: key, Err: err}), nil
		}
	}

	return Result{
		StatusCode: http.StatusOK,
		Body: ResultBody{
			Status:         "success",
			ProcessedFiles: len(event.Records),
		},
	}, nil
}

// process runs the fetch, gate, summarize and store stages for a single
// record. A too short source is a skip, not an error.
func (h *Handler) process(ctx context.Context, bucket, key string) error {
	span, ctx := h.tracer.FromCtxf(ctx, "summarize record %s", key)
	defer span.Finish()

	logger := log.WithContext(ctx).WithFields("bucket", bucket, "key", key)

	text, err := h.storage.ReadText(ctx, bucket, key)
	if err != nil {
		return err
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < minSourceLength {
		logger.Infof("File too short or empty, skipping: %s", key)
		return nil
	}

	completion, err := h.inference.Complete(ctx, summaryPrompt(text))
	if err != nil {
		return err
	}

	summaryKey, err := h.storage.WriteSummary(ctx, bucket, key, completion.Text)
	if err != nil {
		return err
	}

	logger.WithFields("summaryKey", summaryKey, "model", completion.ModelID).
		Infof("Successfully processed and saved summary for: %s", key)
	return nil
}

func (h *Handler) failure(ctx context.Context, err *BatchAbortError) Result {
	log.WithContext(ctx).WithFields("key", err.Key).Errorf("Error processing S3 event: %v", err)
	return Result{
		StatusCode: http.StatusInternalServerError,
		Body: ResultBody{
			Status: "error",
			Error:  err.Error(),
		},
	}
}
