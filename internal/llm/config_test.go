package llm

import "testing"

func TestGetModel_ConfiguredTier(t *testing.T) {
	cfg := DefaultGeminiConfig()

	if got := cfg.GetModel(TierStandard); got != "gemini-2.5-flash" {
		t.Errorf("GetModel(standard) = %q, want gemini-2.5-flash", got)
	}
	if got := cfg.GetModel(TierAdvanced); got != "gemini-2.5-pro" {
		t.Errorf("GetModel(advanced) = %q, want gemini-2.5-pro", got)
	}
}

func TestGetModel_FallbackChain(t *testing.T) {
	cfg := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierLite: "lite-model"},
	}

	// Unknown tier falls back through standard to lite
	if got := cfg.GetModel(TierAdvanced); got != "lite-model" {
		t.Errorf("GetModel(advanced) = %q, want lite-model fallback", got)
	}

	empty := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	if got := empty.GetModel(TierStandard); got != "" {
		t.Errorf("GetModel on empty config = %q, want empty string", got)
	}
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	cfg := DefaultGeminiConfig()
	custom := cfg.WithModel(TierStandard, "custom-model")

	if got := custom.GetModel(TierStandard); got != "custom-model" {
		t.Errorf("custom GetModel(standard) = %q, want custom-model", got)
	}
	if got := cfg.GetModel(TierStandard); got != "gemini-2.5-flash" {
		t.Errorf("original config mutated: GetModel(standard) = %q", got)
	}
}
