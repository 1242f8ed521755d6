package schedule

import "github.com/lifebuddy/lifebuddy/internal/llm"

// Config controls generation policy. It is passed explicitly to the
// Generator and may be overridden per request.
type Config struct {
	// Models is the candidate preference list. Empty means the invoker's
	// configured defaults.
	Models []llm.ModelRef

	// MaxAttempts bounds generation passes. Clamped to [1, 2]: the first
	// pass uses the detailed prompt, the second the strict one.
	MaxAttempts int

	// MaxTokens and Temperature apply to the detailed prompt.
	MaxTokens   int
	Temperature float64

	// StrictMaxTokens and StrictTemperature apply to the retry prompt.
	StrictMaxTokens   int
	StrictTemperature float64

	// MinWordsPerDay is the per-day length the detailed prompt asks for.
	MinWordsPerDay int

	// StrictMinWordsPerDay is the per-day length the retry prompt asks for.
	StrictMinWordsPerDay int

	// Validators run in order on every parsed plan.
	Validators []Validator
}

// DefaultConfig returns the standard generation policy.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:          2,
		MaxTokens:            8000,
		Temperature:          0.7,
		StrictMaxTokens:      4000,
		StrictTemperature:    0.3,
		MinWordsPerDay:       120,
		StrictMinWordsPerDay: 30,
		Validators: []Validator{
			SequenceValidator{},
			SchemaValidator{},
		},
	}
}

func (c Config) attempts() int {
	return max(1, min(c.MaxAttempts, 2))
}
