package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Ollama     OllamaConfig
	Output     OutputConfig
	Generation GenerationConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OllamaConfig holds narrative-text service configuration
type OllamaConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
}

// OutputConfig holds run-artifact output configuration
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// GenerationConfig holds content-generation tuning
type GenerationConfig struct {
	FAQSize int `mapstructure:"faq_size"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pagecraft/")

	// Environment variable settings
	v.SetEnvPrefix("PAGECRAFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*", "http://127.0.0.1:*"})

	// Ollama defaults
	v.SetDefault("ollama.base_url", "http://localhost:11434")
	v.SetDefault("ollama.model", "llama3.2")
	v.SetDefault("ollama.timeout", "60s")
	v.SetDefault("ollama.max_tokens", 400)
	v.SetDefault("ollama.temperature", 0.7)

	// Output defaults
	v.SetDefault("output.dir", "output")

	// Generation defaults
	v.SetDefault("generation.faq_size", 5)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Ollama.BaseURL == "" {
		return fmt.Errorf("Ollama base URL is required (set PAGECRAFT_OLLAMA_BASE_URL)")
	}

	if config.Ollama.Model == "" {
		return fmt.Errorf("Ollama model is required (set PAGECRAFT_OLLAMA_MODEL)")
	}

	if config.Ollama.Timeout <= 0 {
		return fmt.Errorf("Ollama timeout must be positive, got: %s", config.Ollama.Timeout)
	}

	if config.Output.Dir == "" {
		return fmt.Errorf("output directory is required (set PAGECRAFT_OUTPUT_DIR)")
	}

	if config.Generation.FAQSize < 1 {
		return fmt.Errorf("FAQ size must be at least 1, got: %d", config.Generation.FAQSize)
	}

	return nil
}
