package config

import (
	"time"
)

type AIConfig struct {
	APIKey   string
	BaseURL  string
	Model    string
	Provider string
	Timeout  time.Duration
}

func loadAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:   getEnv("AI_API_KEY", ""),
		BaseURL:  getEnv("AI_BASE_URL", "https://api.openai.com/v1"),
		Model:    getEnv("AI_MODEL", "gpt-4o-mini"),
		Provider: getEnv("AI_PROVIDER", "openai"),
		Timeout:  getEnvAsDuration("AI_TIMEOUT", 120*time.Second),
	}
}
