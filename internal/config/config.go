package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/llmgate/promptcheck/models"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"

	defaultGeminiModel = "gemini-2.0-flash"
	defaultOpenAIModel = "gpt-4o-mini"
	defaultMockModel   = "mock-model"
)

type Config struct {
	Server        ServerConfig
	GoogleService GoogleServiceConfig
	LLM           LLMConfigs
	Client        ClientConfig
}

type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

type GoogleServiceConfig struct {
	ProjectId string
	JsonKey   string
}

type LLMConfigs struct {
	Provider string
	Model    string
	OpenAI   OpenAIConfig
	Gemini   GeminiConfig
}

type OpenAIConfig struct {
	Key     string
	BaseUrl string
}

type GeminiConfig struct {
	Key string
}

type ClientConfig struct {
	ServiceUrl     string
	TimeoutSeconds int
}

func LoadConfig(configName string) (*Config, error) {
	var config Config

	v := viper.New()
	v.SetConfigName(configName)
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := bindEnvs(v); err != nil {
		return nil, fmt.Errorf("error binding environment: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowedOrigins", []string{"*"})
	v.SetDefault("googleService.projectId", "")
	v.SetDefault("googleService.jsonKey", "")
	v.SetDefault("llm.provider", ProviderGemini)
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.openai.baseUrl", "")
	v.SetDefault("client.serviceUrl", "http://localhost:8080")
	v.SetDefault("client.timeoutSeconds", 0)
}

// bindEnvs maps the provider credentials to their conventional variable names.
func bindEnvs(v *viper.Viper) error {
	bindings := map[string]string{
		"llm.gemini.key": "GEMINI_API_KEY",
		"llm.openai.key": "OPENAI_API_KEY",
		"server.port":    "PORT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}

// Validate reports the first missing or unusable setting as a
// *models.ConfigurationError.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGemini:
		if c.LLM.Gemini.Key == "" {
			return &models.ConfigurationError{Field: "GEMINI_API_KEY", Reason: "GEMINI_API_KEY environment variable is required"}
		}
	case ProviderOpenAI:
		if c.LLM.OpenAI.Key == "" {
			return &models.ConfigurationError{Field: "OPENAI_API_KEY", Reason: "OPENAI_API_KEY environment variable is required"}
		}
	case ProviderMock:
	default:
		return &models.ConfigurationError{Field: "llm.provider", Reason: fmt.Sprintf("unsupported llm provider %q", c.LLM.Provider)}
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return &models.ConfigurationError{Field: "server.port", Reason: fmt.Sprintf("invalid port %d", c.Server.Port)}
	}

	return nil
}

// ModelName returns the configured model or the provider's default one.
func (c LLMConfigs) ModelName() string {
	if c.Model != "" {
		return c.Model
	}
	switch c.Provider {
	case ProviderOpenAI:
		return defaultOpenAIModel
	case ProviderMock:
		return defaultMockModel
	default:
		return defaultGeminiModel
	}
}
