package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	LLM           LLMConfig           `yaml:"llm"`
	Generation    GenerationConfig    `yaml:"generation"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Log           LogConfig           `yaml:"log"`
	CORS          CORSConfig          `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,Accept,Origin,X-Requested-With"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Supported storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig holds document store connection settings.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"postgres"`
	DSN             string        `yaml:"dsn"                env:"CONNECTION_STRING"           env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// Supported LLM providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// LLMConfig holds settings of the chat-completion provider.
// An empty APIKey leaves generation unconfigured; requests then fail with 500.
// An empty TokenEncoding disables prompt token counting.
type LLMConfig struct {
	Provider      string        `yaml:"provider"       env:"LLM_PROVIDER"       env-default:"anthropic"`
	APIKey        string        `yaml:"api_key"        env:"LLM_API_KEY"`
	Model         string        `yaml:"model"          env:"LLM_MODEL"`
	Timeout       time.Duration `yaml:"timeout"        env:"LLM_TIMEOUT"        env-default:"60s"`
	MaxTokens     int           `yaml:"max_tokens"     env:"LLM_MAX_TOKENS"     env-default:"2048"`
	TokenEncoding string        `yaml:"token_encoding" env:"LLM_TOKEN_ENCODING" env-default:"cl100k_base"`
}

// DefaultModel returns the configured model or the provider's default.
func (c LLMConfig) DefaultModel() string {
	if c.Model != "" {
		return c.Model
	}
	if strings.EqualFold(c.Provider, ProviderGemini) {
		return "gemini-2.5-flash"
	}
	return "claude-sonnet-4-20250514"
}

// GenerationConfig holds flashcard generation limits.
type GenerationConfig struct {
	DefaultCount int `yaml:"default_count" env:"GENERATION_DEFAULT_COUNT" env-default:"5"`
	MaxCount     int `yaml:"max_count"     env:"GENERATION_MAX_COUNT"     env-default:"50"`
}

// TranscriptionConfig holds the audio upload and speech-to-text settings.
// The transcription endpoint is only mounted when Enabled is true.
type TranscriptionConfig struct {
	Enabled        bool   `yaml:"enabled"          env:"TRANSCRIPTION_ENABLED"  env-default:"false"`
	APIKey         string `yaml:"api_key"          env:"TRANSCRIPTION_API_KEY"`
	Model          string `yaml:"model"            env:"TRANSCRIPTION_MODEL"    env-default:"gemini-2.5-flash"`
	Language       string `yaml:"language"         env:"TRANSCRIPTION_LANGUAGE" env-default:"en"`
	UploadDir      string `yaml:"upload_dir"       env:"UPLOAD_DIR"             env-default:"uploads"`
	UploadMaxBytes int64  `yaml:"upload_max_bytes" env:"UPLOAD_MAX_BYTES"       env-default:"26214400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
