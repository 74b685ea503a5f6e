package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/brandguard/brandguard/internal/config"
	"github.com/brandguard/brandguard/pkg/formatting"
)

const maxCompletionTokens = 2048

// CompletionClient is the slice of the completion API the analyzer uses.
// *openai.Client satisfies it; tests substitute a fake.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAI analyzes compliance through a chat completion API.
type OpenAI struct {
	client  CompletionClient
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewOpenAI creates an analyzer backed by the configured completion API.
func NewOpenAI(cfg *config.AnalyzerConfig, logger *slog.Logger) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAI{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: cfg.TimeoutDuration(),
		logger:  logger.With("system", "analyzer", "mode", "openai"),
	}
}

// NewOpenAIWithClient creates an analyzer with an injected completion client.
func NewOpenAIWithClient(client CompletionClient, model string, timeout time.Duration, logger *slog.Logger) *OpenAI {
	return &OpenAI{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger.With("system", "analyzer", "mode", "openai"),
	}
}

// Analyze sends both text bodies to the completion API and parses the
// response content as a structured Result. API failure, unparseable content,
// or invariant violations all surface as ErrAnalysis; there is no fallback.
func (a *OpenAI) Analyze(ctx context.Context, guidelineText, materialText string) (*Result, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: a.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstructions},
			{Role: openai.ChatMessageRoleUser, Content: ComposeUserPrompt(guidelineText, materialText)},
		},
		MaxTokens: maxCompletionTokens,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: completion request: %w", ErrAnalysis, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: completion returned no choices", ErrAnalysis)
	}

	result, err := formatting.Parse[Result](resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}

	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}

	a.logger.Info("analysis complete", "score", result.Score, "issues", len(result.Issues))
	return &result, nil
}
