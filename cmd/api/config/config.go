package config

import "time"

type Config struct {
	CacheFreshnessWindow time.Duration
	CompletionTimeout    time.Duration
	CompletionModel      string
	TokenLifetime        time.Duration
}

func NewConfig() *Config {
	return &Config{
		CacheFreshnessWindow: 24 * time.Hour,
		CompletionTimeout:    10 * time.Second,
		CompletionModel:      "llama3-70b-8192",
		TokenLifetime:        72 * time.Hour,
	}
}
