package config

import "testing"

func validConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			DefaultStyle:     "isekai",
			DefaultGender:    "female",
			DefaultCount:     10,
			MaxBatchSize:     50,
			BatchElementOdds: 0.3,
			BatchClassOdds:   0.2,
		},
	}
}

func TestConfigValidateSuccess(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestConfigValidateBatchSize(t *testing.T) {
	cfg := validConfig()
	cfg.Generator.MaxBatchSize = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for zero batch size")
	}
}

func TestConfigValidateOddsRange(t *testing.T) {
	cfg := validConfig()
	cfg.Generator.BatchElementOdds = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for odds > 1")
	}

	cfg = validConfig()
	cfg.Generator.BatchClassOdds = -0.1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for negative odds")
	}
}

func TestConfigValidateHistoryRequired(t *testing.T) {
	cfg := validConfig()
	cfg.History.Required = true
	cfg.History.Enabled = false
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for required-but-disabled history store")
	}
}

func TestGetEnvReaders(t *testing.T) {
	t.Setenv("NAMEGEN_TEST_STRING", "  value  ")
	if got := getEnvString("NAMEGEN_TEST_STRING", "def"); got != "value" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	if got := getEnvString("NAMEGEN_TEST_MISSING", "def"); got != "def" {
		t.Fatalf("expected default, got %q", got)
	}

	t.Setenv("NAMEGEN_TEST_INT", "42")
	if got := getEnvInt("NAMEGEN_TEST_INT", 0); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	t.Setenv("NAMEGEN_TEST_INT", "not-a-number")
	if got := getEnvInt("NAMEGEN_TEST_INT", 7); got != 7 {
		t.Fatalf("expected default on parse failure, got %d", got)
	}

	t.Setenv("NAMEGEN_TEST_NEG", "-3")
	if got := getEnvNonNegativeInt("NAMEGEN_TEST_NEG", 1); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}

	t.Setenv("NAMEGEN_TEST_FLOAT", "0.35")
	if got := getEnvFloat("NAMEGEN_TEST_FLOAT", 0); got != 0.35 {
		t.Fatalf("expected 0.35, got %f", got)
	}

	t.Setenv("NAMEGEN_TEST_BOOL", "YES")
	if !getEnvBool("NAMEGEN_TEST_BOOL", false) {
		t.Fatalf("expected true for 'YES'")
	}
}

func TestMaskSecret(t *testing.T) {
	if got := maskSecret(""); got != "<missing>" {
		t.Fatalf("unexpected mask for empty: %q", got)
	}
	if got := maskSecret("abcd"); got != "****" {
		t.Fatalf("unexpected mask for short secret: %q", got)
	}
	if got := maskSecret("secret-key"); got != "se***ey" {
		t.Fatalf("unexpected mask: %q", got)
	}
}
