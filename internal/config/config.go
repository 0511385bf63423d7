package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Robinhood RobinhoodConfig `yaml:"robinhood" envconfig:"ROBINHOOD"`
	Export    ExportConfig    `yaml:"export" envconfig:"EXPORT"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
}

// RobinhoodConfig contains the authenticated API client configuration
type RobinhoodConfig struct {
	APIBaseURL    string          `yaml:"api_base_url" envconfig:"API_BASE_URL" default:"https://api.robinhood.com"`
	CryptoBaseURL string          `yaml:"crypto_base_url" envconfig:"CRYPTO_BASE_URL" default:"https://nummus.robinhood.com"`
	Token         string          `yaml:"token" envconfig:"TOKEN"`
	Timeout       time.Duration   `yaml:"timeout" envconfig:"TIMEOUT" default:"30s"`
	RateLimit     RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig throttles outbound API requests
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps" envconfig:"RPS" default:"5"`
	Burst int     `yaml:"burst" envconfig:"BURST" default:"5"`
}

// ExportConfig contains export output configuration
type ExportConfig struct {
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"."`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/rhcli.log"`
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("RH", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	configFile := getConfigFilePath()
	if configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Robinhood.Token == "" {
		envConfig.Robinhood.Token = fileConfig.Robinhood.Token
	}
	if envConfig.Robinhood.APIBaseURL == "" {
		envConfig.Robinhood.APIBaseURL = fileConfig.Robinhood.APIBaseURL
	}
	if envConfig.Robinhood.CryptoBaseURL == "" {
		envConfig.Robinhood.CryptoBaseURL = fileConfig.Robinhood.CryptoBaseURL
	}
	if envConfig.Robinhood.Timeout == 0 {
		envConfig.Robinhood.Timeout = fileConfig.Robinhood.Timeout
	}
	if envConfig.Export.OutputDir == "" {
		envConfig.Export.OutputDir = fileConfig.Export.OutputDir
	}

	return envConfig
}

// validate validates the configuration
func (c *Config) validate() error {
	if c.Robinhood.APIBaseURL == "" {
		return fmt.Errorf("robinhood api base url must be set")
	}

	if c.Robinhood.CryptoBaseURL == "" {
		return fmt.Errorf("robinhood crypto base url must be set")
	}

	if c.Robinhood.Timeout <= 0 {
		return fmt.Errorf("robinhood timeout must be positive")
	}

	if c.Robinhood.RateLimit.RPS <= 0 {
		return fmt.Errorf("rate limit rps must be positive")
	}

	if c.Robinhood.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit burst must be positive")
	}

	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		c.Logging.Format = "json"
	}

	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/rhcli.log"
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	// Check for config file in common locations
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
		"../configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Robinhood: RobinhoodConfig{
			APIBaseURL:    "https://api.robinhood.com",
			CryptoBaseURL: "https://nummus.robinhood.com",
			Timeout:       30 * time.Second,
			RateLimit: RateLimitConfig{
				RPS:   5,
				Burst: 5,
			},
		},
		Export: ExportConfig{
			OutputDir: ".",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/rhcli.log",
		},
	}
}
