package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppName    string `envconfig:"APP_NAME" default:"weather-api"`
	AppVersion string `envconfig:"APP_VERSION" default:"1.0.0"`
	Port       string `envconfig:"PORT" default:"8080"`

	DatabasePath string `envconfig:"DATABASE_PATH" default:"weather.db"`
	RedisURL     string `envconfig:"REDIS_URL" default:"redis://localhost:6379"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`

	// Required for every weather route; the provider client refuses to
	// construct without it.
	OpenWeatherAPIKey string `envconfig:"OPENWEATHERMAP_API_KEY"`

	TokenTTL time.Duration `envconfig:"TOKEN_TTL" default:"24h"`

	Provider ProviderConfig `yaml:"provider"`
}

// ProviderConfig bundles outbound rate limiting for the free tier.
// RequestsPerSecond <= 0 disables the limiter.
type ProviderConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

func NewConfig() (*Config, error) {
	return newConfig("config/config.yaml")
}

func newConfig(yamlPath string) (*Config, error) {
	// .env is optional; production supplies real environment variables.
	_ = godotenv.Load()

	var cnf Config

	// Read from YAML file first
	if yamlData, err := os.ReadFile(yamlPath); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	// Override with environment variables
	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return &cnf, nil
}
