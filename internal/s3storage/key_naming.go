package s3storage

import (
	"fmt"
	"strings"
	"time"
)

const (
	summaryKeyPrefix   = "summaries/"
	summaryContentType = "text/plain; charset=utf-8"
	timestampLayout    = "20060102_150405"
)

// summaryKeyName derives the storage key for a summary of sourceKey. A single
// trailing ".txt" is trimmed; the extension is matched exactly, so an
// uppercase ".TXT" source keeps it as part of the base name. Note that two
// summaries of the same source within the same second share a key and the
// later write wins.
func summaryKeyName(sourceKey string, t time.Time) string {
	base := strings.TrimSuffix(sourceKey, ".txt")
	return fmt.Sprintf("%s%s_summary_%s.txt", summaryKeyPrefix, base, t.Format(timestampLayout))
}
