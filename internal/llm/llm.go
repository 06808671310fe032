// Package llm calls hosted text generation endpoints.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jonesrussell/north-cloud/content-creator/internal/prompt"
)

// Provider names accepted in configuration.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// ErrEmptyResponse is returned when the endpoint answers without any text.
var ErrEmptyResponse = errors.New("empty response from text endpoint")

// TextGenerator produces marketing copy for a prepared request. Each call is
// a single attempt.
type TextGenerator interface {
	Generate(ctx context.Context, req prompt.TextRequest) (string, error)
	// Provider returns the provider name for logs and metrics.
	Provider() string
}

// Config selects and configures a text provider.
type Config struct {
	Provider string
	BaseURL  string
	APIKey   string
}

// New builds the TextGenerator named by cfg.Provider.
func New(cfg Config, opts ...Option) (TextGenerator, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI, "":
		return NewOpenAIClient(cfg.BaseURL, cfg.APIKey, opts...), nil
	case ProviderAnthropic:
		return NewAnthropicClient(cfg.BaseURL, cfg.APIKey, opts...), nil
	default:
		return nil, fmt.Errorf("unknown text provider %q", cfg.Provider)
	}
}
