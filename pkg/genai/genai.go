// Package genai executes rendered prompts against a language model and
// rewrites prompt bodies for clarity. The CLI talks to the Client
// interface so commands stay testable without network access.
package genai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	DefaultModel = "gpt-4o-mini"

	defaultTimeout = 120 * time.Second
	apiKeyEnv      = "OPENAI_API_KEY"
)

// ErrNoAPIKey is returned when execution is requested without a key.
var ErrNoAPIKey = errors.New("genai: OPENAI_API_KEY is not set")

// Client generates a completion for a fully rendered prompt.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds settings for the OpenAI-backed client.
type Config struct {
	APIKey     string
	Model      string
	Timeout    time.Duration
	BaseURL    string       // Optional (tests)
	HTTPClient *http.Client // Optional (tests)
}

// OpenAI implements Client using the official SDK.
type OpenAI struct {
	model  string
	client openai.Client
}

// New creates an OpenAI client. The key falls back to OPENAI_API_KEY.
func New(cfg Config) (*OpenAI, error) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(apiKeyEnv)
	}
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAI{
		model:  cfg.Model,
		client: openai.NewClient(opts...),
	}, nil
}

// Generate sends the prompt as a single user message and returns the
// model's text.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("genai: completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("genai: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

// Optimize asks the model to rewrite a prompt body for precision while
// preserving its intent and bracket variables.
func Optimize(ctx context.Context, c Client, body string) (string, error) {
	meta := fmt.Sprintf(`You are an expert prompt engineer. Improve the following prompt to be more precise, structured, and effective for an LLM.
Do not change the intent or the variables (text in [brackets]).
Return ONLY the improved prompt text.

Original Prompt:
%s`, body)

	out, err := c.Generate(ctx, meta)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
