package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Validate(t *testing.T) {
	tt := []struct {
		name    string
		options Options
		err     string
	}{
		{
			name: "complete",
			options: Options{
				EventFile: "event.json",
				Region:    "ap-northeast-1",
			},
			err: "",
		},
		{
			name: "missing event file",
			options: Options{
				Region: "ap-northeast-1",
			},
			err: "event-file is required",
		},
		{
			name:    "missing everything",
			options: Options{},
			err:     "event-file is required; region is required",
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.options.Validate()

			if tc.err == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.err)
		})
	}
}
