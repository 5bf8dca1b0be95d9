package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Oracle providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// DefaultOracleTimeout bounds a single oracle call when the config leaves it unset.
const DefaultOracleTimeout = 2 * time.Minute

var (
	// ErrOracleUnavailable wraps every failure to obtain text from the oracle.
	ErrOracleUnavailable = errors.New("oracle unavailable")
	// ErrMissingCredential is returned by NewOracleAdapter when no API key is configured.
	ErrMissingCredential = errors.New("missing oracle credential")
	// ErrUnknownProvider is returned for a provider name with no implementation.
	ErrUnknownProvider = errors.New("unknown oracle provider")
)

// OracleAdapter sends a prompt to the generative service and returns its raw text.
type OracleAdapter interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// OracleConfig is the immutable configuration handed to an oracle constructor.
type OracleConfig struct {
	Provider          string
	Model             string
	APIKey            string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerMinute int
}

// DefaultModel returns the model used by provider when none is configured.
func DefaultModel(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	default:
		return "gemini-2.5-flash"
	}
}

// CredentialEnv names the environment variable that holds the key for provider.
func CredentialEnv(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	default:
		return "GOOGLE_API_KEY"
	}
}

// NewOracleAdapter builds the adapter for cfg.Provider, wrapped so that every
// call is bounded by cfg.Timeout and, if configured, rate limited.
func NewOracleAdapter(ctx context.Context, cfg OracleConfig) (OracleAdapter, error) {
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if cfg.Provider == "" {
		cfg.Provider = ProviderGemini
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: set %s", ErrMissingCredential, CredentialEnv(cfg.Provider))
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel(cfg.Provider)
	}

	var (
		inner OracleAdapter
		err   error
	)

	switch cfg.Provider {
	case ProviderGemini:
		inner, err = NewGeminiOracle(ctx, cfg)
	case ProviderOpenAI:
		inner = NewOpenAIOracle(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}

	if err != nil {
		return nil, err
	}

	slog.Info("Oracle configured", "provider", cfg.Provider, "model", cfg.Model, "timeout", cfg.Timeout, "rpm", cfg.RequestsPerMinute)

	return NewBoundedOracle(inner, cfg.Timeout, cfg.RequestsPerMinute), nil
}

// BoundedOracle decorates an OracleAdapter with a per-call deadline and an
// optional client-side request rate.
type BoundedOracle struct {
	inner   OracleAdapter
	timeout time.Duration
	limiter *rate.Limiter
}

// NewBoundedOracle wraps inner. A non-positive timeout falls back to
// DefaultOracleTimeout; a non-positive rpm disables rate limiting.
func NewBoundedOracle(inner OracleAdapter, timeout time.Duration, rpm int) *BoundedOracle {
	if timeout <= 0 {
		timeout = DefaultOracleTimeout
	}

	bounded := &BoundedOracle{inner: inner, timeout: timeout}
	if rpm > 0 {
		bounded.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1)
	}

	return bounded
}

// Generate waits for a rate slot, then calls the wrapped oracle under a deadline.
func (b *BoundedOracle) Generate(ctx context.Context, prompt string) (string, error) {
	if b.limiter != nil {
		if err := b.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: rate limiter: %w", ErrOracleUnavailable, err)
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	text, err := b.inner.Generate(callCtx, prompt)
	if err != nil {
		if errors.Is(err, ErrOracleUnavailable) {
			return "", err
		}

		return "", fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
	}

	return text, nil
}

// Close releases the wrapped oracle when it holds resources.
func (b *BoundedOracle) Close() error {
	if closer, ok := b.inner.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}
