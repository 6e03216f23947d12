package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig

	// Inference collaborators
	Embedding EmbeddingConfig
	LLM       LLMConfig

	// Assistant pipeline
	Intent     IntentConfig
	Generative GenerativeConfig
	Search     SearchConfig
	Assistant  AssistantConfig

	// Delivery
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
	MaxSizeMB    int
	MaxBackups   int
	MaxAgeDays   int
}

type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// EmbeddingConfig selects the embedding collaborator: voyage, openai or gemini.
type EmbeddingConfig struct {
	Provider  string
	APIKey    string
	Model     string
	BaseURL   string
	CacheSize int
	Timeout   time.Duration
}

// LLMConfig holds configuration for the generative provider layer
type LLMConfig struct {
	Providers []ProviderConfig `yaml:"providers"`
	Timeout   time.Duration    `yaml:"timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type IntentConfig struct {
	CatalogPath         string
	ConfidenceThreshold float64
}

type GenerativeConfig struct {
	Temperature  float64
	MaxNewTokens int
}

// SearchConfig selects the search provider: static, duckduckgo or google.
type SearchConfig struct {
	Provider   string
	MaxResults int
	APIKey     string
	EngineID   string
	Endpoint   string
	Timeout    time.Duration
}

type AssistantConfig struct {
	ClassifyTimeout time.Duration
	BranchTimeout   time.Duration
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
	HistorySize int
	HistoryTTL  time.Duration
	MaxChats    int
}

// Load reads .env (if present), then config.yaml from ./config, . or /etc/app/,
// then environment variables. Missing files are not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = viper.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = viper.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = viper.GetInt("logger.max_backups")
	cfg.Logger.MaxAgeDays = viper.GetInt("logger.max_age_days")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	// Embedding
	cfg.Embedding.Provider = viper.GetString("embedding.provider")
	cfg.Embedding.APIKey = expandEnvVar(viper.GetString("embedding.api_key"))
	cfg.Embedding.Model = viper.GetString("embedding.model")
	cfg.Embedding.BaseURL = viper.GetString("embedding.base_url")
	cfg.Embedding.CacheSize = viper.GetInt("embedding.cache_size")
	cfg.Embedding.Timeout = viper.GetDuration("embedding.timeout")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" && cfg.Embedding.APIKey == "" && cfg.Embedding.Provider == "voyage" {
		cfg.Embedding.APIKey = voyageKey
	}

	// LLM
	cfg.LLM.Timeout = viper.GetDuration("llm.timeout")
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	// Assistant pipeline
	cfg.Intent.CatalogPath = viper.GetString("intent.catalog_path")
	cfg.Intent.ConfidenceThreshold = viper.GetFloat64("intent.confidence_threshold")
	cfg.Generative.Temperature = viper.GetFloat64("generative.temperature")
	cfg.Generative.MaxNewTokens = viper.GetInt("generative.max_new_tokens")
	cfg.Search.Provider = viper.GetString("search.provider")
	cfg.Search.MaxResults = viper.GetInt("search.max_results")
	cfg.Search.APIKey = expandEnvVar(viper.GetString("search.api_key"))
	cfg.Search.EngineID = viper.GetString("search.engine_id")
	cfg.Search.Endpoint = viper.GetString("search.endpoint")
	cfg.Search.Timeout = viper.GetDuration("search.timeout")
	cfg.Assistant.ClassifyTimeout = viper.GetDuration("assistant.classify_timeout")
	cfg.Assistant.BranchTimeout = viper.GetDuration("assistant.branch_timeout")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = expandEnvVar(viper.GetString("telegram.secret_token"))
	cfg.Telegram.HistorySize = viper.GetInt("telegram.history_size")
	cfg.Telegram.HistoryTTL = viper.GetDuration("telegram.history_ttl")
	cfg.Telegram.MaxChats = viper.GetInt("telegram.max_chats")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("logger.max_size_mb", 100)
	viper.SetDefault("logger.max_backups", 3)
	viper.SetDefault("logger.max_age_days", 28)
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("rate_limit.burst", 10)
	viper.SetDefault("cors.allowed_origins", "*")

	viper.SetDefault("embedding.provider", "voyage")
	viper.SetDefault("embedding.cache_size", 1024)
	viper.SetDefault("embedding.timeout", "15s")
	viper.SetDefault("llm.timeout", "30s")

	viper.SetDefault("intent.confidence_threshold", 0.30)
	viper.SetDefault("generative.temperature", 0.8)
	viper.SetDefault("generative.max_new_tokens", 100)
	viper.SetDefault("search.provider", "static")
	viper.SetDefault("search.max_results", 5)
	viper.SetDefault("search.timeout", "10s")
	viper.SetDefault("assistant.classify_timeout", "10s")
	viper.SetDefault("assistant.branch_timeout", "30s")

	viper.SetDefault("telegram.history_size", 10)
	viper.SetDefault("telegram.history_ttl", "1h")
	viper.SetDefault("telegram.max_chats", 1000)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		result = multierror.Append(result, fmt.Errorf("http_server.port %d out of range", c.HTTPServer.Port))
	}

	switch c.Embedding.Provider {
	case "voyage", "openai", "gemini":
	default:
		result = multierror.Append(result, fmt.Errorf("embedding.provider %q must be voyage, openai or gemini", c.Embedding.Provider))
	}
	if c.Embedding.APIKey == "" {
		result = multierror.Append(result, fmt.Errorf("embedding.api_key is required"))
	}

	if err := validateLLMConfig(&c.LLM); err != nil {
		result = multierror.Append(result, err)
	}

	if t := c.Intent.ConfidenceThreshold; t < -1 || t > 1 {
		result = multierror.Append(result, fmt.Errorf("intent.confidence_threshold %.2f outside [-1, 1]", t))
	}
	if t := c.Generative.Temperature; t < 0 || t > 2 {
		result = multierror.Append(result, fmt.Errorf("generative.temperature %.2f outside [0, 2]", t))
	}
	if c.Generative.MaxNewTokens <= 0 {
		result = multierror.Append(result, fmt.Errorf("generative.max_new_tokens must be positive"))
	}

	switch c.Search.Provider {
	case "static", "duckduckgo":
	case "google":
		if c.Search.APIKey == "" || c.Search.EngineID == "" {
			result = multierror.Append(result, fmt.Errorf("search.api_key and search.engine_id are required for google"))
		}
	default:
		result = multierror.Append(result, fmt.Errorf("search.provider %q must be static, duckduckgo or google", c.Search.Provider))
	}
	if c.Search.MaxResults <= 0 {
		result = multierror.Append(result, fmt.Errorf("search.max_results must be positive"))
	}

	return result.ErrorOrNil()
}

// expandEnvVar expands values written as ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		switch v := val.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case uint64:
			return int(v)
		case float64:
			return int(v)
		}
	}
	return 0
}
