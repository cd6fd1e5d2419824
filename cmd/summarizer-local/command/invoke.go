package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/bedrockruntime"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tomomira/s3-summarizer/internal/bedrock"
	"github.com/tomomira/s3-summarizer/internal/log"
	"github.com/tomomira/s3-summarizer/internal/s3storage"
	"github.com/tomomira/s3-summarizer/internal/summarize"
	"github.com/tomomira/s3-summarizer/internal/tracing"
)

// NewInvoke returns a command that runs the handler once with the event read
// from the configured file and prints the invocation result as JSON.
func NewInvoke(options *Options) *cobra.Command {
	var logConfiguration *log.Configuration
	var command = &cobra.Command{
		Use:   "invoke",
		Short: "invoke the summarization handler with a captured S3 event",
		RunE: func(c *cobra.Command, args []string) error {
			logConfiguration.ParseFromEnvironmnet()
			log.Init(logConfiguration)

			err := options.Validate()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(options.EventFile)
			if err != nil {
				return errors.WithMessagef(err, "read event file '%s'", options.EventFile)
			}
			var event events.S3Event
			err = json.Unmarshal(data, &event)
			if err != nil {
				return errors.WithMessagef(err, "unmarshal event file '%s'", options.EventFile)
			}

			tracer, err := tracing.NewJaeger()
			if err != nil {
				return errors.WithMessage(err, "init tracing")
			}
			defer func() {
				cerr := tracer.Close()
				if cerr != nil {
					log.Errorf("Failed to close tracer: %v", cerr)
				}
			}()

			awsConfig := &aws.Config{
				Region: aws.String(options.Region),
			}
			if options.Endpoint != "" {
				awsConfig.Endpoint = aws.String(options.Endpoint)
				awsConfig.S3ForcePathStyle = aws.Bool(true)
			}
			sess, err := session.NewSession(awsConfig)
			if err != nil {
				return errors.WithMessage(err, "instantiate AWS session")
			}

			handler := summarize.NewHandler(
				s3storage.New(s3.New(sess)),
				bedrock.New(bedrockruntime.New(sess), options.ModelID),
				tracer,
			)

			result, err := handler.Handle(context.Background(), event)
			if err != nil {
				return err
			}

			output, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return errors.WithMessage(err, "marshal result")
			}
			fmt.Println(string(output))

			if result.StatusCode != 200 {
				return errors.Errorf("invocation failed: %s", result.Body.Error)
			}
			return nil
		},
	}
	logConfiguration = log.RegisterFlags(command)
	return command
}
