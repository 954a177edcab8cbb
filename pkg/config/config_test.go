package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/quibble-ai/callcost/pkg/estimator"
	"github.com/quibble-ai/callcost/pkg/pricing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Listen != ":8080" {
		t.Errorf("expected :8080, got %s", cfg.Listen)
	}
	if len(cfg.Pricing.Models) != 3 {
		t.Errorf("expected 3 models, got %d", len(cfg.Pricing.Models))
	}
	if cfg.Defaults.Model != "GPT-4.1" || cfg.Defaults.CallsPerMonth != 3000 {
		t.Errorf("unexpected defaults: %+v", cfg.Defaults)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestDefaultDoesNotShareModelSlice(t *testing.T) {
	cfg := Default()
	cfg.Pricing.Models[0].PerMillionTokens = 99
	if pricing.DefaultModels[0].PerMillionTokens != 0.06 {
		t.Error("Default() leaked the package-level model table")
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_LISTEN", ":9090")

	path := writeConfig(t, `
listen: "${TEST_LISTEN}"
log:
  level: debug
  format: json
pricing:
  models:
    - model: small
      per_million_tokens: 0.02
    - model: large
      per_million_tokens: 0.5
  usage:
    telephony_per_minute: 0.01
    stt_per_minute: 0.02
    tts_per_minute: 0.03
defaults:
  call_duration_minutes: 5
  calls_per_month: 1000
  tokens_per_call: 900
  model: large
  platform_cost: 10
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != ":9090" {
		t.Errorf("env var not expanded: got %s", cfg.Listen)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
	if cfg.Log.Output != "stderr" {
		t.Errorf("expected default output to survive, got %s", cfg.Log.Output)
	}
	if len(cfg.Pricing.Models) != 2 {
		t.Fatalf("expected model list to be replaced, got %d models", len(cfg.Pricing.Models))
	}
	if cfg.Limits.CallsPerMonth.Max != 10000 {
		t.Errorf("expected default limits, got %+v", cfg.Limits.CallsPerMonth)
	}

	e, err := cfg.Estimator()
	if err != nil {
		t.Fatal(err)
	}
	res, err := e.Estimate(cfg.Defaults)
	if err != nil {
		t.Fatal(err)
	}
	// 1000*900/1e6*0.5 = 0.45; 5000 min * (0.01+0.02+0.03) = 300; +10
	if res.TotalCost.String() != "310.45" {
		t.Errorf("TotalCost = %s, want 310.45", res.TotalCost)
	}
}

func TestLoadKeepsDefaultModelsWhenOmitted(t *testing.T) {
	path := writeConfig(t, "listen: \":7000\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Pricing.Models) != 3 {
		t.Errorf("expected default models, got %d", len(cfg.Pricing.Models))
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadRejectsUnknownDefaultModel(t *testing.T) {
	path := writeConfig(t, `
defaults:
  call_duration_minutes: 3
  calls_per_month: 100
  model: nope
`)
	_, err := Load(path)
	if !errors.Is(err, estimator.ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}
}

func TestValidateLimits(t *testing.T) {
	cfg := Default()
	cfg.Limits.CallDurationMinutes.Max = 0.5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for max below min")
	}

	cfg = Default()
	cfg.Limits.TokensPerCall.Min = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative min")
	}
}

func TestValidateDuplicateModels(t *testing.T) {
	cfg := Default()
	cfg.Pricing.Models = append(cfg.Pricing.Models, cfg.Pricing.Models[0])
	if err := cfg.Validate(); !errors.Is(err, pricing.ErrDuplicateModel) {
		t.Errorf("expected ErrDuplicateModel, got %v", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("expected default config, got listen %s", cfg.Listen)
	}
}
