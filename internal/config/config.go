package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvDevelopment represents the development environment.
	EnvDevelopment = "development"
)

// Config holds all application configuration.
type Config struct {
	Env string `envconfig:"ENV" default:"production"`

	// Logging settings. The TUI owns stdout, so logs go to a file;
	// an empty LOG_FILE discards them.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE"`

	// Slider appearance
	Slider SliderConfig `envconfig:"SLIDER"`
}

// SliderConfig overrides the slider's default appearance. Empty values keep
// the defaults.
type SliderConfig struct {
	IndicatorColor  string `envconfig:"INDICATOR_COLOR"`
	BackgroundColor string `envconfig:"BACKGROUND_COLOR"`
	Knob            string `envconfig:"KNOB"`
}

// LoadConfig loads configuration from .env file and environment variables.
func LoadConfig() (*Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	return &config, nil
}
