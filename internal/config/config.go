package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `json:"server" mapstructure:"server"`
	Provider   ProviderConfig   `json:"provider" mapstructure:"provider"`
	Pricing    PricingConfig    `json:"pricing" mapstructure:"pricing"`
	Summarizer SummarizerConfig `json:"summarizer" mapstructure:"summarizer"`
	Google     GoogleConfig     `json:"google" mapstructure:"google"`
	Database   DatabaseConfig   `json:"database" mapstructure:"database"`
}

type ServerConfig struct {
	Host        string `json:"host" mapstructure:"host"`
	Port        int    `json:"port" mapstructure:"port"`
	CORSOrigins string `json:"cors_origins" mapstructure:"cors_origins"`
}

// ProviderConfig selects and configures the generative-model backend.
type ProviderConfig struct {
	Type    string `json:"type" mapstructure:"type"` // "gemini" or "openai"
	APIKey  string `json:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL string `json:"base_url,omitempty" mapstructure:"base_url"`
	Model   string `json:"model" mapstructure:"model"`
}

// PricingConfig holds USD prices per million tokens used for cost estimates.
type PricingConfig struct {
	InputPerMillion  float64 `json:"input_per_million" mapstructure:"input_per_million"`
	OutputPerMillion float64 `json:"output_per_million" mapstructure:"output_per_million"`
}

type SummarizerConfig struct {
	// MaxContextChars caps how much of the running summary is embedded
	// into incremental prompts. 0 means unlimited.
	MaxContextChars int `json:"max_context_chars" mapstructure:"max_context_chars"`
}

type GoogleConfig struct {
	CredentialsPath string `json:"credentials_path" mapstructure:"credentials_path"`
	TokenPath       string `json:"token_path" mapstructure:"token_path"`
}

type DatabaseConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")

	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	homeDir, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(homeDir, ".scribe"))
	}

	// Set defaults
	viper.SetDefault("server.host", "127.0.0.1")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("provider.type", "gemini")
	viper.SetDefault("provider.model", "gemini-1.5-flash")
	viper.SetDefault("pricing.input_per_million", 0.075)
	viper.SetDefault("pricing.output_per_million", 0.30)
	viper.SetDefault("summarizer.max_context_chars", 0)
	viper.SetDefault("google.credentials_path", "credentials.json")
	viper.SetDefault("google.token_path", "token.json")
	viper.SetDefault("database.path", "scribe.db")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No config file is fine; defaults plus env cover the common case
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	loadEnvOverrides(&cfg)

	return &cfg, nil
}

func loadEnvOverrides(cfg *Config) {
	if host := os.Getenv("SCRIBE_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("SCRIBE_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if origins := os.Getenv("SCRIBE_CORS_ORIGINS"); origins != "" {
		cfg.Server.CORSOrigins = origins
	}

	// Provider overrides. GOOGLE_API_KEY keeps parity with the Gemini
	// tooling convention; OPENAI_API_KEY applies when type is "openai".
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" && cfg.Provider.Type == "gemini" {
		cfg.Provider.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && cfg.Provider.Type == "openai" {
		cfg.Provider.APIKey = key
	}
	if model := os.Getenv("GEMINI_MODEL_NAME"); model != "" {
		cfg.Provider.Model = model
	}

	if price := os.Getenv("GEMINI_INPUT_PRICE_PER_1M"); price != "" {
		if v, err := strconv.ParseFloat(price, 64); err == nil {
			cfg.Pricing.InputPerMillion = v
		}
	}
	if price := os.Getenv("GEMINI_OUTPUT_PRICE_PER_1M"); price != "" {
		if v, err := strconv.ParseFloat(price, 64); err == nil {
			cfg.Pricing.OutputPerMillion = v
		}
	}
}

func (c *Config) Save() error {
	return viper.WriteConfig()
}
