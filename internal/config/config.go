package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"tripmate/pkg/utils"
)

const (
	ProviderAzure  = "azure"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DefaultAzureAPIVersion = "2024-02-15-preview"
	DefaultOpenAIModel     = "gpt-4o-mini"
	DefaultGeminiModel     = "gemini-1.5-flash"
)

type Config struct {
	Env  string
	HTTP struct {
		Port string
	}
	Log struct {
		Level  string
		Format string
	}
	LLM LLMConfig
}

// LLMConfig selects the completion provider and holds the credentials of every backend.
// Only the selected backend's settings are required.
type LLMConfig struct {
	Provider string
	Timeout  time.Duration
	Azure    AzureConfig
	OpenAI   OpenAIConfig
	Gemini   GeminiConfig
}

type AzureConfig struct {
	Endpoint   string
	Deployment string
	APIKey     string
	APIVersion string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// Load reads the process environment once (plus an optional .env file).
// Missing credentials are not a load error: they are reported per request.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("LLM_PROVIDER", ProviderAzure)
	v.SetDefault("LLM_TIMEOUT", "60s")
	v.SetDefault("AZURE_OPENAI_API_VERSION", DefaultAzureAPIVersion)
	v.SetDefault("OPENAI_MODEL", DefaultOpenAIModel)
	v.SetDefault("GEMINI_MODEL", DefaultGeminiModel)

	var cfg Config
	cfg.Env = v.GetString("APP_ENV")
	cfg.HTTP.Port = v.GetString("PORT")
	cfg.Log.Level = strings.ToLower(v.GetString("LOG_LEVEL"))
	cfg.Log.Format = strings.ToLower(v.GetString("LOG_FORMAT"))

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(v.GetString("LLM_PROVIDER")))
	cfg.LLM.Timeout = v.GetDuration("LLM_TIMEOUT")
	if cfg.LLM.Timeout <= 0 {
		return nil, fmt.Errorf("invalid LLM_TIMEOUT %q", v.GetString("LLM_TIMEOUT"))
	}

	cfg.LLM.Azure = AzureConfig{
		Endpoint:   strings.TrimRight(v.GetString("AZURE_OPENAI_ENDPOINT"), "/"),
		Deployment: v.GetString("AZURE_OPENAI_DEPLOYMENT"),
		APIKey:     v.GetString("AZURE_OPENAI_KEY"),
		APIVersion: v.GetString("AZURE_OPENAI_API_VERSION"),
	}
	cfg.LLM.OpenAI = OpenAIConfig{
		APIKey:  v.GetString("OPENAI_API_KEY"),
		Model:   v.GetString("OPENAI_MODEL"),
		BaseURL: v.GetString("OPENAI_BASE_URL"),
	}
	cfg.LLM.Gemini = GeminiConfig{
		APIKey: v.GetString("GEMINI_API_KEY"),
		Model:  v.GetString("GEMINI_MODEL"),
	}

	if _, err := cfg.LLM.DisplayName(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DisplayName is the provider name used in error bodies and logs.
func (c LLMConfig) DisplayName() (string, error) {
	switch c.Provider {
	case ProviderAzure:
		return "Azure OpenAI", nil
	case ProviderOpenAI:
		return "OpenAI", nil
	case ProviderGemini:
		return "Gemini", nil
	default:
		return "", fmt.Errorf("%w: %q (use azure, openai or gemini)", utils.ErrUnknownProvider, c.Provider)
	}
}

// Validate checks that the selected provider has its credentials.
// It returns *utils.ConfigError when something is missing.
func (c LLMConfig) Validate() error {
	name, err := c.DisplayName()
	if err != nil {
		return err
	}

	var (
		code    string
		missing []string
	)
	switch c.Provider {
	case ProviderAzure:
		code = "MISSING_AZURE_CONFIG"
		missing = missingVars(
			"AZURE_OPENAI_ENDPOINT", c.Azure.Endpoint,
			"AZURE_OPENAI_DEPLOYMENT", c.Azure.Deployment,
			"AZURE_OPENAI_KEY", c.Azure.APIKey,
		)
	case ProviderOpenAI:
		code = "MISSING_OPENAI_CONFIG"
		missing = missingVars("OPENAI_API_KEY", c.OpenAI.APIKey)
	case ProviderGemini:
		code = "MISSING_GEMINI_CONFIG"
		missing = missingVars("GEMINI_API_KEY", c.Gemini.APIKey)
	}

	if len(missing) > 0 {
		return &utils.ConfigError{Provider: name, Code: code, Missing: missing}
	}
	return nil
}

// missingVars takes name/value pairs and returns the names whose value is blank.
func missingVars(pairs ...string) []string {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i])
		}
	}
	return missing
}
