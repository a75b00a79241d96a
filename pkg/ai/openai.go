package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/huytran-le/vidlens/pkg/config"
)

const systemPrompt = "You are an expert content moderator analyzing video transcripts for toxicity, bias, and misinformation. Be objective and thorough."

// ErrAnalysisTimeout is returned when the text-generation call exceeds
// its configured deadline.
var ErrAnalysisTimeout = errors.New("analysis timed out")

// ErrNotConfigured is returned when no API key is available. This is a
// configuration problem, not a network failure, and is reported as such.
var ErrNotConfigured = errors.New("OPENAI_API_KEY is not configured")

// Client sends analysis prompts to the text-generation service and
// returns the raw reply text. No interpretation happens here.
type Client struct {
	api         openai.Client
	apiKey      string
	model       string
	temperature float64
	maxTokens   int64
	timeout     time.Duration
}

// NewClient creates a client from config. BaseURL is overridable so
// tests can point at a local server.
func NewClient(cfg *config.OpenAIConfig) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		api:         openai.NewClient(opts...),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     timeout,
	}
}

// Analyze sends one prompt to the service under the configured timeout
// and returns the assistant's reply text.
func (c *Client) Analyze(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.temperature),
		MaxTokens:   openai.Int(c.maxTokens),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrAnalysisTimeout
		}
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("model service returned status %d: %s", apiErr.StatusCode, apiErr.Message)
		}
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	return resp.Choices[0].Message.Content, nil
}
