// Package llm provides the client abstraction for the hosted generative-text
// service that produces breed recommendations and narrative content.
package llm

// ModelTier selects the capability level for a generation call.
type ModelTier string

const (
	// TierLite is for short narrative content (summaries, pros/cons).
	TierLite ModelTier = "lite"
	// TierStandard is for structured recommendation output.
	TierStandard ModelTier = "standard"
)

// Config holds the model configuration for the narrative collaborator.
type Config struct {
	Models map[ModelTier]string
	// Temperature applies to every generation call. Recommendations and
	// narrative text want some variety, so the default is relatively warm.
	Temperature float32
}

// DefaultConfig returns the default Gemini model configuration.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		Temperature: 0.7,
	}
}

// Model returns the model name for a tier, falling back to the standard
// model when the tier is unconfigured.
func (c *Config) Model(tier ModelTier) string {
	if m, ok := c.Models[tier]; ok {
		return m
	}
	return c.Models[TierStandard]
}
