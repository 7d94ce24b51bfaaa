package ai

import (
	"log/slog"
	"testing"
	"time"

	"resumatch/internal/config"
	"resumatch/internal/errors"
)

var testLogger = errors.NewLogger(slog.LevelDebug)

func TestOperationConfigFallbacks(t *testing.T) {
	extractTimeout := 45 * time.Second
	extractTemp := float32(0.1)
	tailorTimeout := 90 * time.Second
	tailorTemp := float32(0.3)

	cfg := &config.Config{
		AI: config.AIConfig{
			Provider:    "gemini",
			Model:       "shared-model",
			Timeout:     60 * time.Second,
			APIKey:      "shared-key",
			MaxRetries:  5,
			Temperature: 0.9,
			Extract: config.OperationAIConfig{
				Timeout:     &extractTimeout,
				Temperature: &extractTemp,
			},
			Tailor: config.OperationAIConfig{
				Model:       "tailor-model",
				Timeout:     &tailorTimeout,
				Temperature: &tailorTemp,
			},
		},
	}

	extract := cfg.GetExtractConfig()
	if *extract.Timeout != extractTimeout {
		t.Errorf("extract timeout = %v, want %v", *extract.Timeout, extractTimeout)
	}
	if *extract.Temperature != extractTemp {
		t.Errorf("extract temperature = %v, want %v", *extract.Temperature, extractTemp)
	}
	if extract.Model != "shared-model" {
		t.Errorf("extract model should fall back to the shared model, got %q", extract.Model)
	}
	if extract.APIKey != "shared-key" {
		t.Errorf("extract API key should fall back to the shared key, got %q", extract.APIKey)
	}
	if *extract.MaxRetries != 5 {
		t.Errorf("extract max retries should fall back to shared value, got %d", *extract.MaxRetries)
	}

	tailor := cfg.GetTailorConfig()
	if tailor.Model != "tailor-model" {
		t.Errorf("tailor model override lost, got %q", tailor.Model)
	}
	if *tailor.Timeout != tailorTimeout {
		t.Errorf("tailor timeout = %v, want %v", *tailor.Timeout, tailorTimeout)
	}
	if *tailor.Temperature != tailorTemp {
		t.Errorf("tailor temperature = %v, want %v", *tailor.Temperature, tailorTemp)
	}
	if tailor.APIKey != "shared-key" {
		t.Errorf("tailor API key should fall back to the shared key, got %q", tailor.APIKey)
	}
}

func TestServiceCircuitBreakerWiring(t *testing.T) {
	timeout := 30 * time.Second
	retries := 1
	temp := float32(0.5)
	systemPrompts := true

	opConfig := &config.OperationAIConfig{
		Provider:         "gemini",
		Model:            "fast-model",
		Timeout:          &timeout,
		APIKey:           "placeholder-key",
		MaxRetries:       &retries,
		Temperature:      &temp,
		UseSystemPrompts: &systemPrompts,
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      5,
			Interval:         30 * time.Second,
			Timeout:          45 * time.Second,
			MinRequests:      2,
			FailureThreshold: 0.8,
		},
	}

	service, err := NewService(opConfig, "tailor", testLogger)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	provider, ok := service.Provider.(*GeminiProvider)
	if !ok {
		t.Fatalf("provider is %T, want *GeminiProvider", service.Provider)
	}

	stats := provider.GetCircuitBreakerStats()

	aiStats, ok := stats["ai_operations"].(map[string]any)
	if !ok {
		t.Fatal("missing ai_operations stats")
	}
	if name, _ := aiStats["name"].(string); name != "AI-tailor" {
		t.Errorf("generation breaker name = %q, want %q", name, "AI-tailor")
	}

	modelStats, ok := stats["model_operations"].(map[string]any)
	if !ok {
		t.Fatal("missing model_operations stats")
	}
	if name, _ := modelStats["name"].(string); name != "AI-Model-tailor" {
		t.Errorf("model breaker name = %q, want %q", name, "AI-Model-tailor")
	}

	if healthy, _ := stats["overall_healthy"].(bool); !healthy {
		t.Error("fresh breakers should report healthy")
	}
}

func TestServiceCircuitBreakerDisabled(t *testing.T) {
	timeout := 30 * time.Second
	retries := 1
	temp := float32(0.5)
	systemPrompts := true

	opConfig := &config.OperationAIConfig{
		Provider:         "gemini",
		Model:            "fast-model",
		Timeout:          &timeout,
		APIKey:           "placeholder-key",
		MaxRetries:       &retries,
		Temperature:      &temp,
		UseSystemPrompts: &systemPrompts,
	}

	service, err := NewService(opConfig, "extract", testLogger)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	provider, ok := service.Provider.(*GeminiProvider)
	if !ok {
		t.Fatalf("provider is %T, want *GeminiProvider", service.Provider)
	}

	stats := provider.GetCircuitBreakerStats()
	aiStats, ok := stats["ai_operations"].(map[string]any)
	if !ok {
		t.Fatal("missing ai_operations stats")
	}
	if enabled, _ := aiStats["enabled"].(bool); enabled {
		t.Error("breaker stats should report disabled when not configured")
	}
	if healthy, _ := stats["overall_healthy"].(bool); !healthy {
		t.Error("a disabled breaker is always healthy")
	}
}
