// Package bedrock implements the summarize.Inference interface on top of the
// Amazon Bedrock runtime, speaking the Anthropic Claude messages format.
package bedrock

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/bedrockruntime"
	"github.com/aws/aws-sdk-go/service/bedrockruntime/bedrockruntimeiface"
	"github.com/pkg/errors"
	"github.com/tomomira/s3-summarizer/internal/summarize"
)

// DefaultModelID is the model invoked when no override is configured.
const DefaultModelID = "anthropic.claude-3-haiku-20240307-v1:0"

const (
	anthropicVersion = "bedrock-2023-05-31"
	contentTypeJSON  = "application/json"

	// Fixed sampling parameters for summarization.
	maxTokens   = 500
	temperature = 0.3
	topP        = 0.9
)

type Client struct {
	runtime bedrockruntimeiface.BedrockRuntimeAPI
	modelID string
}

// New allocates and returns a Client backed by the provided Bedrock runtime.
// An empty modelID selects DefaultModelID.
func New(runtime bedrockruntimeiface.BedrockRuntimeAPI, modelID string) *Client {
	if modelID == "" {
		modelID = DefaultModelID
	}
	return &Client{
		runtime: runtime,
		modelID: modelID,
	}
}

type request struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	Temperature      float64   `json:"temperature"`
	TopP             float64   `json:"top_p"`
	Messages         []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type response struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Complete invokes the model with a single user message and returns the text
// of the first content block. All failures are reported as a
// summarize.InferenceError without distinguishing their cause.
func (c *Client) Complete(ctx context.Context, prompt string) (summarize.Completion, error) {
	body, err := json.Marshal(request{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        maxTokens,
		Temperature:      temperature,
		TopP:             topP,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return summarize.Completion{}, &summarize.InferenceError{
			ModelID: c.modelID,
			Err:     errors.WithMessage(err, "marshal request"),
		}
	}

	out, err := c.runtime.InvokeModelWithContext(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		ContentType: aws.String(contentTypeJSON),
		Accept:      aws.String(contentTypeJSON),
		Body:        body,
	})
	if err != nil {
		return summarize.Completion{}, &summarize.InferenceError{ModelID: c.modelID, Err: err}
	}

	var resp response
	err = json.Unmarshal(out.Body, &resp)
	if err != nil {
		return summarize.Completion{}, &summarize.InferenceError{
			ModelID: c.modelID,
			Err:     errors.WithMessage(err, "unmarshal response"),
		}
	}
	if len(resp.Content) == 0 || resp.Content[0].Text == "" {
		return summarize.Completion{}, &summarize.InferenceError{
			ModelID: c.modelID,
			Err:     errors.New("response contains no content text"),
		}
	}

	return summarize.Completion{
		Text:    resp.Content[0].Text,
		ModelID: c.modelID,
	}, nil
}
