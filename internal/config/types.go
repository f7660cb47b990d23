package config

// GeneratorConfig: 이름 생성기 기본 동작 설정입니다.
type GeneratorConfig struct {
	DefaultStyle      string
	DefaultGender     string
	DefaultCount      int
	MaxBatchSize      int
	BatchElementOdds  float64
	BatchClassOdds    float64
	ComposedRerollMax int
}

// ScreenConfig: 조합형 이름 검열 설정입니다.
type ScreenConfig struct {
	Enabled         bool
	RulepacksDir    string
	CacheMaxSize    int
	CacheTTLSeconds int
}

// HistoryConfig: 최근 이름 기록 저장소 설정입니다.
type HistoryConfig struct {
	URL              string
	Enabled          bool
	Required         bool
	DisableCache     bool
	TTLMinutes       int
	MaxEntries       int
	CompressMinBytes int
}

// LoggingConfig: 로깅 설정입니다.
type LoggingConfig struct {
	Level      string
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// HTTPConfig: HTTP 서버 설정입니다.
type HTTPConfig struct {
	Host         string
	Port         int
	HTTP2Enabled bool
}

// HTTPAuthConfig: API 키 인증 설정입니다.
type HTTPAuthConfig struct {
	APIKey string
}

// HTTPRateLimitConfig: 요청 제한 설정입니다.
type HTTPRateLimitConfig struct {
	RequestsPerMinute int
	CacheSize         int
	CacheTTLSeconds   int
}

// Config: 애플리케이션 전체 설정입니다.
type Config struct {
	Generator     GeneratorConfig
	Screen        ScreenConfig
	History       HistoryConfig
	Logging       LoggingConfig
	HTTP          HTTPConfig
	HTTPAuth      HTTPAuthConfig
	HTTPRateLimit HTTPRateLimitConfig
}
