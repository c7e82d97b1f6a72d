package config

import "time"

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	LLM       LLMConfig
	Auth      AuthConfig
	Logging   LoggingConfig
	RateLimit RateLimitConfig
	Chat      ChatConfig
}

type ServerConfig struct {
	Port            int
	GinMode         string // debug, release, test
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

type DatabaseConfig struct {
	Driver       string // postgres, sqlite
	PostgresURL  string
	SQLitePath   string
	MaxOpenConns int
	MaxIdleConns int
	AutoMigrate  bool
}

type LLMConfig struct {
	Provider string // openai, gemini
	APIKey   string
	Model    string
	Timeout  time.Duration
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type LoggingConfig struct {
	Level      string
	Format     string // json, text
	Output     string // stdout, file
	FilePath   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type ChatConfig struct {
	SessionTTL time.Duration
}
