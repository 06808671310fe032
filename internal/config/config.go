// Package config holds the content-creator service configuration.
package config

import (
	"strings"
	"time"

	infraconfig "github.com/jonesrussell/north-cloud/content-creator/infrastructure/config"
	"github.com/jonesrussell/north-cloud/content-creator/internal/domain"
	"github.com/jonesrussell/north-cloud/content-creator/internal/imagegen"
	"github.com/jonesrussell/north-cloud/content-creator/internal/llm"
)

// Default configuration values.
const (
	defaultServiceName     = "content-creator"
	defaultServicePort     = 8097
	defaultVersion         = "0.1.0"
	defaultProvider        = llm.ProviderOpenAI
	defaultOpenAIModel     = "gpt-3.5-turbo"
	defaultAnthropicModel  = "claude-3-5-haiku-latest"
	defaultUpstreamTimeout = 120 * time.Second

	// DefaultPath is the config file read when CONFIG_PATH is unset.
	DefaultPath = "config.yml"
)

// Config holds the application configuration.
type Config struct {
	Service  ServiceConfig             `yaml:"service"`
	Provider ProviderConfig            `yaml:"provider"`
	Image    ImageConfig               `yaml:"image"`
	Features FeaturesConfig            `yaml:"features"`
	Auth     AuthConfig                `yaml:"auth"`
	Logging  infraconfig.LoggingConfig `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name        string   `yaml:"name"`
	Version     string   `yaml:"version"`
	Host        string   `env:"CONTENT_CREATOR_HOST" yaml:"host"`
	Port        int      `env:"CONTENT_CREATOR_PORT" yaml:"port"`
	Debug       bool     `env:"APP_DEBUG"            yaml:"debug"`
	CORSOrigins []string `env:"CORS_ORIGINS"         yaml:"cors_origins"`
}

// ProviderConfig selects the text provider. API keys normally come from the
// environment.
type ProviderConfig struct {
	Name             string        `env:"TEXT_PROVIDER"      yaml:"name"`
	Model            string        `env:"TEXT_MODEL"         yaml:"model"`
	OpenAIBaseURL    string        `env:"OPENAI_BASE_URL"    yaml:"openai_base_url"`
	OpenAIAPIKey     string        `env:"OPENAI_API_KEY"     yaml:"openai_api_key"`
	AnthropicBaseURL string        `env:"ANTHROPIC_BASE_URL" yaml:"anthropic_base_url"`
	AnthropicAPIKey  string        `env:"ANTHROPIC_API_KEY"  yaml:"anthropic_api_key"`
	Timeout          time.Duration `env:"UPSTREAM_TIMEOUT"   yaml:"timeout"`
}

// LLM returns the client settings for the selected provider.
func (p *ProviderConfig) LLM() llm.Config {
	if p.Name == llm.ProviderAnthropic {
		return llm.Config{Provider: p.Name, BaseURL: p.AnthropicBaseURL, APIKey: p.AnthropicAPIKey}
	}
	return llm.Config{Provider: p.Name, BaseURL: p.OpenAIBaseURL, APIKey: p.OpenAIAPIKey}
}

// APIKeyEnv names the variable holding the selected provider's key.
func (p *ProviderConfig) APIKeyEnv() string {
	if p.Name == llm.ProviderAnthropic {
		return "ANTHROPIC_API_KEY"
	}
	return "OPENAI_API_KEY"
}

// ImageConfig configures the OpenAI-compatible image endpoint. It shares
// OPENAI_API_KEY with the text provider.
type ImageConfig struct {
	Model   string `env:"IMAGE_MODEL"    yaml:"model"`
	BaseURL string `env:"IMAGE_BASE_URL" yaml:"base_url"`
}

// FeaturesConfig picks a preset and optionally overrides single flags.
type FeaturesConfig struct {
	Variant          domain.Variant `env:"CONTENT_CREATOR_VARIANT" yaml:"variant"`
	DetailsField     *bool          `yaml:"details_field"`
	LanguageSelector *bool          `yaml:"language_selector"`
	Clipboard        *bool          `yaml:"clipboard"`
	ImageGeneration  *bool          `yaml:"image_generation"`
}

// Resolve returns the preset's features with overrides applied.
func (f *FeaturesConfig) Resolve() (domain.Features, error) {
	features, err := domain.FeaturesFor(f.Variant)
	if err != nil {
		return domain.Features{}, err
	}
	override(&features.DetailsField, f.DetailsField)
	override(&features.LanguageSelector, f.LanguageSelector)
	override(&features.Clipboard, f.Clipboard)
	override(&features.ImageGeneration, f.ImageGeneration)
	return features, nil
}

func override(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// AuthConfig holds API authentication settings. An empty secret leaves
// /api/v1 open.
type AuthConfig struct {
	JWTSecret string `env:"AUTH_JWT_SECRET" yaml:"jwt_secret"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return infraconfig.LoadWithDefaults[Config](path, setDefaults)
}

func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setProviderDefaults(&cfg.Provider)
	setImageDefaults(&cfg.Image)
	if cfg.Features.Variant == "" {
		cfg.Features.Variant = domain.DefaultVariant
	}
	cfg.Logging.SetDefaults()
}

func setServiceDefaults(svc *ServiceConfig) {
	if svc.Name == "" {
		svc.Name = defaultServiceName
	}
	if svc.Version == "" {
		svc.Version = defaultVersion
	}
	if svc.Port == 0 {
		svc.Port = defaultServicePort
	}
}

func setProviderDefaults(p *ProviderConfig) {
	p.Name = strings.ToLower(strings.TrimSpace(p.Name))
	if p.Name == "" {
		p.Name = defaultProvider
	}
	if p.Model == "" {
		p.Model = defaultOpenAIModel
		if p.Name == llm.ProviderAnthropic {
			p.Model = defaultAnthropicModel
		}
	}
	if p.OpenAIBaseURL == "" {
		p.OpenAIBaseURL = llm.DefaultOpenAIBaseURL
	}
	if p.Timeout == 0 {
		p.Timeout = defaultUpstreamTimeout
	}
}

func setImageDefaults(img *ImageConfig) {
	if img.Model == "" {
		img.Model = imagegen.DefaultModel
	}
	if img.BaseURL == "" {
		img.BaseURL = imagegen.DefaultBaseURL
	}
}

// Validate checks the configuration without requiring credentials.
func (c *Config) Validate() error {
	if err := infraconfig.ValidatePort("service.port", c.Service.Port); err != nil {
		return err
	}
	if err := infraconfig.ValidateOneOf("provider.name", c.Provider.Name, llm.ProviderOpenAI, llm.ProviderAnthropic); err != nil {
		return err
	}
	if err := infraconfig.ValidateRequired("provider.model", c.Provider.Model); err != nil {
		return err
	}
	if err := infraconfig.ValidateURL("provider.openai_base_url", c.Provider.OpenAIBaseURL); err != nil {
		return err
	}
	if c.Provider.AnthropicBaseURL != "" {
		if err := infraconfig.ValidateURL("provider.anthropic_base_url", c.Provider.AnthropicBaseURL); err != nil {
			return err
		}
	}
	if err := infraconfig.ValidateURL("image.base_url", c.Image.BaseURL); err != nil {
		return err
	}
	if _, err := c.Features.Resolve(); err != nil {
		return &infraconfig.ValidationError{Field: "features.variant", Message: err.Error()}
	}
	return c.Logging.Validate()
}

// ValidateCredentials requires the keys the enabled endpoints need. Commands
// that never call upstream skip it.
func (c *Config) ValidateCredentials() error {
	if err := infraconfig.ValidateRequired(c.Provider.APIKeyEnv(), c.Provider.LLM().APIKey); err != nil {
		return err
	}

	features, err := c.Features.Resolve()
	if err != nil {
		return err
	}
	if features.ImageGeneration {
		return infraconfig.ValidateRequired("OPENAI_API_KEY", c.Provider.OpenAIAPIKey)
	}
	return nil
}
