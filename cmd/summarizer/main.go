package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/bedrockruntime"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/tomomira/s3-summarizer/internal/bedrock"
	"github.com/tomomira/s3-summarizer/internal/log"
	"github.com/tomomira/s3-summarizer/internal/s3storage"
	"github.com/tomomira/s3-summarizer/internal/summarize"
	"github.com/tomomira/s3-summarizer/internal/tracing"
)

func main() {
	logConfiguration := log.Configuration{}
	logConfiguration.ParseFromEnvironmnet()
	log.Init(&logConfiguration)

	sess, err := session.NewSession()
	if err != nil {
		log.Errorf("Failed to instantiate AWS session: %v", err)
		os.Exit(1)
	}

	handler := summarize.NewHandler(
		s3storage.New(s3.New(sess)),
		bedrock.New(bedrockruntime.New(sess), os.Getenv("SUMMARIZER_MODEL_ID")),
		// no agent is reachable from inside the Lambda sandbox
		tracing.NewNoop(),
	)

	lambda.Start(handler.Handle)
}
