package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// contentGenerator is the part of *genai.GenerativeModel the oracle uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiOracle calls the Google Generative Language API.
type GeminiOracle struct {
	client *genai.Client
	model  contentGenerator
	name   string
}

// NewGeminiOracle creates a client for cfg.Model authenticated with cfg.APIKey.
func NewGeminiOracle(ctx context.Context, cfg OracleConfig) (*GeminiOracle, error) {
	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.ResponseMIMEType = "application/json"

	return &GeminiOracle{client: client, model: model, name: cfg.Model}, nil
}

// Generate sends prompt as a single user turn and concatenates the text parts
// of the first candidate.
func (g *GeminiOracle) Generate(ctx context.Context, prompt string) (string, error) {
	slog.Debug("Generating via Gemini", "model", g.name, "prompt_bytes", len(prompt))

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %w", ErrOracleUnavailable, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: gemini returned no candidates", ErrOracleUnavailable)
	}

	var b strings.Builder

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	return b.String(), nil
}

// Close releases the underlying gRPC connection.
func (g *GeminiOracle) Close() error {
	if g.client == nil {
		return nil
	}

	return g.client.Close()
}
