package command

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

// Options configures a local handler invocation.
type Options struct {
	EventFile string
	Endpoint  string
	Region    string
	ModelID   string
}

// Validate checks that required options are set.
func (o *Options) Validate() error {
	var errs error
	if o.EventFile == "" {
		errs = multierr.Append(errs, errors.New("event-file is required"))
	}
	if o.Region == "" {
		errs = multierr.Append(errs, errors.New("region is required"))
	}
	return errs
}

// NewRoot returns a new instance of a summarizer-local command.
func NewRoot() *cobra.Command {
	var options Options
	var command = &cobra.Command{
		Use:   "summarizer-local",
		Short: "replay captured S3 event notifications against the summarization handler",
		Run: func(c *cobra.Command, args []string) {
			c.HelpFunc()(c, args)
		},
	}
	command.AddCommand(NewInvoke(&options))
	command.PersistentFlags().StringVar(&options.EventFile, "event-file", "", "path to a captured S3 event notification JSON file")
	command.PersistentFlags().StringVar(&options.Endpoint, "s3-endpoint", "", "S3 endpoint override, e.g. an S3 compatible local server")
	command.PersistentFlags().StringVar(&options.Region, "region", "ap-northeast-1", "AWS region for the S3 and Bedrock clients")
	command.PersistentFlags().StringVar(&options.ModelID, "model", "", "Bedrock model id override")
	return command
}
