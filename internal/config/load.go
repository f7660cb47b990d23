package config

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/joho/godotenv"
)

var (
	configOnce  sync.Once
	configValue *Config
)

// Load 는 환경 변수 기반 설정을 로드한다.
func Load() *Config {
	configOnce.Do(func() {
		_ = godotenv.Load()
		configValue = buildConfig()
	})
	return configValue
}

// ProvideConfig 는 설정을 로드하고 검증한다.
func ProvideConfig() (*Config, error) {
	cfg := Load()
	if cfg == nil {
		return nil, errors.New("config not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 는 설정 유효성을 검사한다.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Generator.MaxBatchSize < 1 {
		return fmt.Errorf("max batch size must be >= 1: %d", c.Generator.MaxBatchSize)
	}
	if c.Generator.DefaultCount < 1 {
		return fmt.Errorf("default count must be >= 1: %d", c.Generator.DefaultCount)
	}
	odds := []struct {
		name  string
		value float64
	}{
		{"batch element odds", c.Generator.BatchElementOdds},
		{"batch class odds", c.Generator.BatchClassOdds},
	}
	for _, o := range odds {
		if o.value < 0 || o.value > 1 {
			return fmt.Errorf("%s out of range [0,1]: %.3f", o.name, o.value)
		}
	}
	if c.History.Required && !c.History.Enabled {
		return errors.New("history store required but disabled")
	}
	return nil
}

// LogEnvStatus 는 환경 설정 상태를 로그로 남긴다.
func LogEnvStatus(cfg *Config, logger *slog.Logger) {
	if logger == nil || cfg == nil {
		return
	}

	envFilePresent := fileExists(".env")
	logger.Debug(
		"env_status",
		"env_file", envFilePresent,
		"default_style", cfg.Generator.DefaultStyle,
		"default_gender", cfg.Generator.DefaultGender,
		"max_batch_size", cfg.Generator.MaxBatchSize,
		"screen_enabled", cfg.Screen.Enabled,
		"screen_rulepacks_dir", cfg.Screen.RulepacksDir,
		"history_enabled", cfg.History.Enabled,
		"history_url", cfg.History.URL,
		"history_ttl_minutes", cfg.History.TTLMinutes,
		"api_key", maskSecret(cfg.HTTPAuth.APIKey),
	)
}

func buildConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			DefaultStyle:      getEnvString("GEN_DEFAULT_STYLE", "isekai"),
			DefaultGender:     getEnvString("GEN_DEFAULT_GENDER", "female"),
			DefaultCount:      max(1, getEnvInt("GEN_DEFAULT_COUNT", 10)),
			MaxBatchSize:      max(1, getEnvInt("GEN_MAX_BATCH_SIZE", 50)),
			BatchElementOdds:  getEnvFloat("GEN_BATCH_ELEMENT_ODDS", 0.3),
			BatchClassOdds:    getEnvFloat("GEN_BATCH_CLASS_ODDS", 0.2),
			ComposedRerollMax: max(1, getEnvNonNegativeInt("GEN_COMPOSED_REROLL_MAX", 3)),
		},
		Screen: ScreenConfig{
			Enabled:         getEnvBool("SCREEN_ENABLED", true),
			RulepacksDir:    getEnvString("SCREEN_RULEPACKS_DIR", "rulepacks"),
			CacheMaxSize:    getEnvInt("SCREEN_CACHE_SIZE", 10000),
			CacheTTLSeconds: getEnvInt("SCREEN_CACHE_TTL", 3600),
		},
		History: HistoryConfig{
			URL:              getEnvString("HISTORY_STORE_URL", "redis://localhost:6379"),
			Enabled:          getEnvBool("HISTORY_STORE_ENABLED", false),
			Required:         getEnvBool("HISTORY_STORE_REQUIRED", false),
			DisableCache:     getEnvBool("HISTORY_STORE_DISABLE_CACHE", false),
			TTLMinutes:       max(1, getEnvNonNegativeInt("HISTORY_TTL_MINUTES", 1440)),
			MaxEntries:       max(1, getEnvNonNegativeInt("HISTORY_MAX_ENTRIES", 200)),
			CompressMinBytes: getEnvNonNegativeInt("HISTORY_COMPRESS_MIN_BYTES", 512),
		},
		Logging: LoggingConfig{
			Level:      getEnvString("LOG_LEVEL", "info"),
			LogDir:     getEnvString("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 1),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 30),
			MaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 7),
			Compress:   getEnvBool("LOG_FILE_COMPRESS", true),
		},
		HTTP: HTTPConfig{
			Host:         getEnvString("HTTP_HOST", "127.0.0.1"),
			Port:         getEnvInt("HTTP_PORT", 40611),
			HTTP2Enabled: getEnvBool("HTTP2_ENABLED", true),
		},
		HTTPAuth: HTTPAuthConfig{
			APIKey: getEnvString("HTTP_API_KEY", ""),
		},
		HTTPRateLimit: HTTPRateLimitConfig{
			RequestsPerMinute: getEnvNonNegativeInt("HTTP_RATE_LIMIT_RPM", 0),
			CacheSize:         max(1, getEnvNonNegativeInt("HTTP_RATE_LIMIT_CACHE_SIZE", 10000)),
			CacheTTLSeconds:   max(1, getEnvNonNegativeInt("HTTP_RATE_LIMIT_CACHE_TTL_SECONDS", 120)),
		},
	}
}
