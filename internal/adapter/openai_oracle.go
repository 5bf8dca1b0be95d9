package adapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"
)

const openAISystemPrompt = "You are an expert software engineer specializing in automated testing. Answer with JSON only."

// OpenAIOracle calls an OpenAI compatible chat completion endpoint.
type OpenAIOracle struct {
	client *openai.Client
	model  string
}

// NewOpenAIOracle creates a client for cfg.Model. cfg.BaseURL points it at a
// compatible server when set.
func NewOpenAIOracle(cfg OracleConfig) *OpenAIOracle {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIOracle{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

// Generate requests a JSON object completion for prompt.
func (o *OpenAIOracle) Generate(ctx context.Context, prompt string) (string, error) {
	slog.Debug("Generating via OpenAI", "model", o.model, "prompt_bytes", len(prompt))

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openAISystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: openai: %w", ErrOracleUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai returned no choices", ErrOracleUnavailable)
	}

	slog.Debug("Received response from OpenAI", "finish_reason", resp.Choices[0].FinishReason)

	return resp.Choices[0].Message.Content, nil
}
