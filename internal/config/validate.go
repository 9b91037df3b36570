package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// Driver and provider names are normalized to lower case.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("database.driver must be %q or %q (got %q)", DriverPostgres, DriverSQLite, c.Database.Driver)
	}
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}

	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	switch c.LLM.Provider {
	case ProviderAnthropic, ProviderGemini:
	default:
		return fmt.Errorf("llm.provider must be %q or %q (got %q)", ProviderAnthropic, ProviderGemini, c.LLM.Provider)
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}

	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	if c.Transcription.Enabled && strings.TrimSpace(c.Transcription.UploadDir) == "" {
		return fmt.Errorf("transcription.upload_dir is required when transcription is enabled")
	}

	return nil
}

func (g *GenerationConfig) validate() error {
	if g.MaxCount <= 0 {
		return fmt.Errorf("max_count must be > 0 (got %d)", g.MaxCount)
	}
	if g.DefaultCount <= 0 || g.DefaultCount > g.MaxCount {
		return fmt.Errorf("default_count must be in 1..%d (got %d)", g.MaxCount, g.DefaultCount)
	}
	return nil
}

// TranscriptionKey returns the key used for speech-to-text: the dedicated
// key when set, otherwise the LLM key when the LLM provider is gemini.
func (c *Config) TranscriptionKey() string {
	if c.Transcription.APIKey != "" {
		return c.Transcription.APIKey
	}
	if c.LLM.Provider == ProviderGemini {
		return c.LLM.APIKey
	}
	return ""
}
