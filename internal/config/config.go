package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field maps 1:1 to an env var; an optional .env file can supply them
// during local development.
type Config struct {
	// Remote API
	APIBaseURL string `mapstructure:"UFC_API_URL"`
	StreamURL  string `mapstructure:"UFC_STREAM_URL"`

	// HTTP behaviour
	HTTPTimeoutSeconds int `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	RetryAttempts      int `mapstructure:"RETRY_ATTEMPTS"`
	RetryBackoffMillis int `mapstructure:"RETRY_BACKOFF_MS"`

	// Presentation
	PageSize int    `mapstructure:"PAGE_SIZE"`
	Env      string `mapstructure:"APP_ENV"` // development | production

	// Session — the credential file is the only durable client-side state.
	CredentialFile string `mapstructure:"CREDENTIAL_FILE"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("UFC_API_URL", "https://ufc.up.railway.app")
	viper.SetDefault("UFC_STREAM_URL", "wss://ufc.up.railway.app/stream")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 15)
	viper.SetDefault("RETRY_ATTEMPTS", 2)
	viper.SetDefault("RETRY_BACKOFF_MS", 1000)
	viper.SetDefault("PAGE_SIZE", 10)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("CREDENTIAL_FILE", defaultCredentialFile())

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultCredentialFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "ufcdash", "token")
	}
	return filepath.Join(home, ".ufcdash", "token")
}
