package llm

import (
	"fmt"

	"github.com/sant0-9/pix3lprompt/internal/config"
)

// NewProvider creates a provider from the AI settings
func NewProvider(cfg config.AIConfig) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderOllama:
		return NewOllamaProvider(cfg.BaseURL, cfg.Model), nil

	case config.ProviderLMStudio:
		return NewLMStudioProvider(cfg.BaseURL, cfg.APIKey, cfg.Model), nil

	case config.ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai requires an API key")
		}
		p := NewOpenAIProvider(cfg.APIKey, cfg.Model)
		if cfg.BaseURL != "" {
			p.WithBaseURL(cfg.BaseURL)
		}
		return p, nil

	case config.ProviderAnthropic:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("anthropic requires an API key")
		}
		p := NewAnthropicProvider(cfg.APIKey, cfg.Model)
		if cfg.BaseURL != "" {
			p.WithBaseURL(cfg.BaseURL)
		}
		return p, nil

	case config.ProviderOpenRouter:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openrouter requires an API key")
		}
		p := NewOpenRouterProvider(cfg.APIKey, cfg.Model)
		if cfg.BaseURL != "" {
			p.WithBaseURL(cfg.BaseURL)
		}
		return p, nil

	case config.ProviderNone, "":
		return nil, fmt.Errorf("no AI provider configured")

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
