// Package llm - generator.go adapts a Client to single-tier text generation.
package llm

import "context"

// TierGenerator binds a Client to one model tier so callers that only need
// prompt-in/text-out generation do not carry tier selection around.
type TierGenerator struct {
	client Client
	tier   ModelTier
}

// NewTierGenerator returns a generator that always uses the given tier.
func NewTierGenerator(client Client, tier ModelTier) *TierGenerator {
	return &TierGenerator{client: client, tier: tier}
}

// Generate produces text content for the prompt at the bound tier.
func (g *TierGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.client.GenerateContent(ctx, prompt, g.tier)
}
