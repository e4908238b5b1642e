// Package translate calls external machine-translation providers.
package translate

import (
	"context"
	"errors"
)

// Format tells the provider what kind of text it is translating. HTML
// markup must survive translation untouched.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// Provider translates a single text into a target language. A failed
// call is never retried here; the background translator treats the first
// failure as fatal for the whole job.
type Provider interface {
	// Translate returns the translated text or a *ProviderError.
	Translate(ctx context.Context, text, targetLang string, format Format) (string, error)
	// Name returns the provider name.
	Name() string
}

// Config holds the configuration for a translation provider.
type Config struct {
	Provider string // google, openai, anthropic
	APIKey   string
	BaseURL  string // optional override
	Model    string // required for openai and anthropic
}

// Provider name constants
const (
	ProviderGoogle    = "google"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingModel    = errors.New("model is required")
)

// NewProvider creates a translation provider based on the config.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	switch cfg.Provider {
	case ProviderGoogle, "":
		return NewGoogleProvider(cfg.APIKey, cfg.BaseURL), nil
	case ProviderOpenAI:
		if cfg.Model == "" {
			return nil, ErrMissingModel
		}
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	case ProviderAnthropic:
		if cfg.Model == "" {
			return nil, ErrMissingModel
		}
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	default:
		return nil, ErrInvalidProvider
	}
}
