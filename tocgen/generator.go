package tocgen

import (
	"context"
	"errors"
	"fmt"

	"github.com/nonsonwune/course_generator/config"
)

var (
	// ErrMissingAPIKey is returned before any request when the selected provider has no credential.
	ErrMissingAPIKey = errors.New("missing API key")
	// ErrUnknownProvider is returned for an AI_PROVIDER value that is not supported.
	ErrUnknownProvider = errors.New("unknown AI provider")
	// ErrEmptyResponse is returned when the service answers without any choice.
	ErrEmptyResponse = errors.New("no response choices")
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-1.5-flash"
)

// Generator produces a table of contents for a course
type Generator interface {
	Generate(ctx context.Context, description, subject, level string) (string, error)
}

// NewGenerator builds the generator for the configured provider.
// A missing credential fails here, before any network call.
func NewGenerator(ctx context.Context, cfg *config.Config) (Generator, error) {
	switch cfg.AIProvider {
	case ProviderOpenAI, "":
		keys := NewKeyManager(cfg.OpenAIAPIKey, cfg.OpenAIAPIKeys...)
		if keys.Len() == 0 {
			return nil, fmt.Errorf("%w: set OPENAI_API_KEY", ErrMissingAPIKey)
		}
		return NewOpenAIGenerator(keys.GetNextKey(), cfg.AIModel, cfg.OpenAIBaseURL), nil
	case ProviderGemini:
		keys := NewKeyManager(cfg.GeminiAPIKey, cfg.GeminiAPIKeys...)
		if keys.Len() == 0 {
			return nil, fmt.Errorf("%w: set GEMINI_API_KEY", ErrMissingAPIKey)
		}
		return NewGeminiGenerator(ctx, keys.GetNextKey(), cfg.AIModel)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.AIProvider)
	}
}
