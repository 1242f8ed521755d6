package llm

import (
	"fmt"
	"os"
	"time"
)

// DefaultAttemptTimeout bounds a single model attempt.
const DefaultAttemptTimeout = 60 * time.Second

// DefaultModels is the preference list used when LIFEBUDDY_LLM_MODELS is unset.
const DefaultModels = "openrouter:deepseek/deepseek-r1:free," +
	"openrouter:meta-llama/llama-3.3-70b-instruct:free," +
	"openrouter:google/gemini-2.0-flash-exp:free," +
	"openrouter:mistralai/mistral-7b-instruct:free"

// Config holds all LLM backend configuration.
type Config struct {
	// Models is the ordered candidate list ("backend:model", comma-separated).
	Models string

	// Mock registers the mock backend instead of real ones. Used for demos
	// and tests; the mock echoes a fixed plan.
	Mock bool

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	// AttemptTimeout is the maximum duration of one model attempt.
	// Default: 60s.
	AttemptTimeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "deepseek/deepseek-r1:free"
	BaseURL string // Default: "https://openrouter.ai/api/v1"

	// SiteURL and SiteName are sent as HTTP-Referer and X-Title.
	// OpenRouter rejects some free-tier requests without them.
	SiteURL  string
	SiteName string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Models: DefaultModels,
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model:    "deepseek/deepseek-r1:free",
			SiteURL:  "https://lifebuddy.app",
			SiteName: "Lifebuddy",
		},
		AttemptTimeout: DefaultAttemptTimeout,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if m := os.Getenv("LIFEBUDDY_LLM_MODELS"); m != "" {
		cfg.Models = m
	}
	if os.Getenv("LIFEBUDDY_LLM_MOCK") == "1" {
		cfg.Mock = true
	}
	if t := os.Getenv("LIFEBUDDY_LLM_ATTEMPT_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.AttemptTimeout = d
		}
	}

	if k := os.Getenv("LIFEBUDDY_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("LIFEBUDDY_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("LIFEBUDDY_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("LIFEBUDDY_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("LIFEBUDDY_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("LIFEBUDDY_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("LIFEBUDDY_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := os.Getenv("LIFEBUDDY_OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
	}
	if m := os.Getenv("LIFEBUDDY_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}
	if u := os.Getenv("LIFEBUDDY_OPENROUTER_BASE_URL"); u != "" {
		cfg.OpenRouter.BaseURL = u
	}
	if u := os.Getenv("LIFEBUDDY_SITE_URL"); u != "" {
		cfg.OpenRouter.SiteURL = u
	}
	if n := os.Getenv("LIFEBUDDY_SITE_NAME"); n != "" {
		cfg.OpenRouter.SiteName = n
	}

	return cfg
}

// Validate checks that the preference list parses and that at least one
// referenced backend has credentials. Backends without credentials are
// tolerated: the Invoker classifies them as auth failures and moves on.
func (c Config) Validate() error {
	if c.Mock {
		return nil
	}
	refs, err := ParseModelRefs(c.Models)
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		return fmt.Errorf("LIFEBUDDY_LLM_MODELS lists no models")
	}
	for _, ref := range refs {
		if c.hasKey(ref.Backend) {
			return nil
		}
	}
	return fmt.Errorf("no API key configured for any backend in %q", c.Models)
}

func (c Config) hasKey(backend string) bool {
	switch backend {
	case "anthropic":
		return c.Anthropic.APIKey != ""
	case "openai":
		return c.OpenAI.APIKey != ""
	case "gemini":
		return c.Gemini.APIKey != ""
	case "openrouter":
		return c.OpenRouter.APIKey != ""
	case "mock":
		return true
	}
	return false
}
