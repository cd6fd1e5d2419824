package s3storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummaryKeyName(t *testing.T) {
	timestamp := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	tt := []struct {
		name      string
		sourceKey string
		output    string
	}{
		{
			name:      "plain key",
			sourceKey: "q1.txt",
			output:    "summaries/q1_summary_20240102_150405.txt",
		},
		{
			name:      "nested key",
			sourceKey: "reports/q1.txt",
			output:    "summaries/reports/q1_summary_20240102_150405.txt",
		},
		{
			name:      "uppercase extension kept in base",
			sourceKey: "reports/q1.TXT",
			output:    "summaries/reports/q1.TXT_summary_20240102_150405.txt",
		},
		{
			name:      "mid key txt occurrence untouched",
			sourceKey: "archive.txt.bak.txt",
			output:    "summaries/archive.txt.bak_summary_20240102_150405.txt",
		},
		{
			name:      "double extension trims one",
			sourceKey: "data.txt.txt",
			output:    "summaries/data.txt_summary_20240102_150405.txt",
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			output := summaryKeyName(tc.sourceKey, timestamp)

			assert.Equal(t, tc.output, output)
		})
	}
}
