package services

import (
	"context"
	"fmt"

	"alfredoptarigan/resume-analyzer/internal/config"
)

// LLMClient sends one composed prompt to a completion API and returns the
// first choice's text. Errors are returned as-is; callers do not classify them.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Provider() string
	Model() string
}

// NewLLMClient picks the provider named in cfg.LLM.Provider.
func NewLLMClient(cfg *config.Config) (LLMClient, error) {
	switch cfg.LLM.Provider {
	case config.ProviderOpenAI:
		if cfg.LLM.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for provider %q", cfg.LLM.Provider)
		}
		return NewOpenAIService(cfg.LLM.OpenAI.APIKey, cfg.LLM.OpenAI.Model, cfg.LLM.OpenAI.BaseURL), nil
	case config.ProviderGemini:
		if cfg.LLM.Gemini.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for provider %q", cfg.LLM.Provider)
		}
		return NewGeminiService(cfg.LLM.Gemini.APIKey, cfg.LLM.Gemini.Model, cfg.LLM.Gemini.BaseURL)
	case config.ProviderAnthropic:
		if cfg.LLM.Anthropic.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for provider %q", cfg.LLM.Provider)
		}
		return NewAnthropicService(cfg.LLM.Anthropic.APIKey, cfg.LLM.Anthropic.Model, cfg.LLM.Anthropic.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.LLM.Provider)
	}
}
