package llm

import "testing"

func TestValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingKey(t *testing.T) {
	for _, provider := range []string{"anthropic", "openai", "gemini"} {
		cfg := DefaultConfig()
		cfg.Provider = provider
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected error for missing API key", provider)
		}
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "frontier9000"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestConfigFromEnv_ProbesStandardKeys(t *testing.T) {
	t.Setenv("MINDMAKER_LLM_PROVIDER", "")
	t.Setenv("MINDMAKER_ANTHROPIC_API_KEY", "")
	t.Setenv("MINDMAKER_OPENAI_API_KEY", "")
	t.Setenv("MINDMAKER_GEMINI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Fatalf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Fatalf("api key not picked up from OPENAI_API_KEY")
	}
}

func TestConfigFromEnv_ExplicitProviderWins(t *testing.T) {
	t.Setenv("MINDMAKER_LLM_PROVIDER", "mock")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := ConfigFromEnv()
	if cfg.Provider != "mock" {
		t.Fatalf("provider = %q, want mock", cfg.Provider)
	}
}
