// Package summarize implements the S3 object summarization pipeline. For
// every notified object creation it filters on key shape, fetches the text,
// delegates summarization to an inference backend and stores the result under
// the summaries/ prefix of the same bucket.
package summarize

import (
	"context"
	"fmt"
	"strings"
)

const (
	// summaryPrefix holds derived summaries. Objects under it are never read
	// back as input to avoid a feedback loop.
	summaryPrefix = "summaries/"
	// sourceSuffix is the only object extension that is summarized. Matched
	// case-insensitively.
	sourceSuffix = ".txt"
	// minSourceLength is the minimum trimmed rune count of a source object.
	// Shorter objects are skipped without calling the model.
	minSourceLength = 50
	// summaryMaxLength is the advisory character limit embedded in the
	// prompt. It is not enforced on the model output.
	summaryMaxLength = 200
)

// Storage reads source objects and persists derived summaries.
type Storage interface {
	// ReadText fetches the object and decodes it strictly as UTF-8.
	ReadText(ctx context.Context, bucket, key string) (string, error)
	// WriteSummary stores summary text derived from sourceKey and returns
	// the key it was stored under.
	WriteSummary(ctx context.Context, bucket, sourceKey, summary string) (string, error)
}

// Inference produces generated text for a prompt.
type Inference interface {
	Complete(ctx context.Context, prompt string) (Completion, error)
}

// Completion is the result of a single model invocation.
type Completion struct {
	Text    string
	ModelID string
}

func isSummaryKey(key string) bool {
	return strings.HasPrefix(key, summaryPrefix)
}

func isTextKey(key string) bool {
	return strings.HasSuffix(strings.ToLower(key), sourceSuffix)
}

func summaryPrompt(text string) string {
	return fmt.Sprintf("以下のテキストを%d文字以内で要約してください。\n\nテキスト:\n%s\n\n要約:", summaryMaxLength, text)
}
