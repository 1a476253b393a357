// Package config loads CLI and server settings from a JSON file and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-optimizer/internal/llm"
	"github.com/jonathan/cv-optimizer/internal/prompts"
)

// Environment variables read by FromEnv
const (
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
	EnvGeminiAPIKey    = "GEMINI_API_KEY"
	EnvProvider        = "CV_PROVIDER"
	EnvDatabaseURL     = "DATABASE_URL"
	EnvListenAddr      = "CV_LISTEN_ADDR"
)

// DefaultListenAddr is used by serve when nothing else is set
const DefaultListenAddr = ":8080"

// Config holds settings that can come from a JSON file, the environment or
// flags. All fields are optional.
type Config struct {
	// Inputs
	CV       string `json:"cv,omitempty"` // Path to the CV file
	Niche    string `json:"niche,omitempty" validate:"omitempty,niche"`
	Offer    string `json:"offer,omitempty" validate:"excluded_with=OfferURL"` // Path to the offer text
	OfferURL string `json:"offer_url,omitempty" validate:"omitempty,url"`

	// Model
	Provider        string            `json:"provider,omitempty" validate:"omitempty,oneof=anthropic gemini"`
	Models          map[string]string `json:"models,omitempty" validate:"omitempty,dive,keys,oneof=lite standard advanced,endkeys,required"`
	AnthropicAPIKey string            `json:"anthropic_api_key,omitempty"`
	GeminiAPIKey    string            `json:"gemini_api_key,omitempty"`
	TimeoutSeconds  int               `json:"timeout_seconds,omitempty" validate:"gte=0"`

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"` // Render offer pages with headless Chrome when needed
	Verbose     bool   `json:"verbose,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`
	ListenAddr  string `json:"listen_addr,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("niche", func(fl validator.FieldLevel) bool {
		_, ok := prompts.LookupNiche(fl.Field().String())
		return ok
	})
	return v
}

// LoadConfig reads a JSON config file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// FromEnv returns the settings found in the environment.
func FromEnv() Config {
	return Config{
		Provider:        os.Getenv(EnvProvider),
		AnthropicAPIKey: os.Getenv(EnvAnthropicAPIKey),
		GeminiAPIKey:    os.Getenv(EnvGeminiAPIKey),
		DatabaseURL:     os.Getenv(EnvDatabaseURL),
		ListenAddr:      os.Getenv(EnvListenAddr),
	}
}

// Validate checks tags and that referenced input files exist.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("'%s' failed %s", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config error: %w", err)
	}

	for label, path := range map[string]string{"cv": c.CV, "offer": c.Offer} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", label, path)
		}
	}
	return nil
}

// MergeWithDefaults returns a copy of c with empty fields taken from defaults.
// Booleans are not merged: flags always win.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&result.CV, defaults.CV)
	fill(&result.Niche, defaults.Niche)
	fill(&result.Offer, defaults.Offer)
	fill(&result.OfferURL, defaults.OfferURL)
	fill(&result.Provider, defaults.Provider)
	fill(&result.AnthropicAPIKey, defaults.AnthropicAPIKey)
	fill(&result.GeminiAPIKey, defaults.GeminiAPIKey)
	fill(&result.DatabaseURL, defaults.DatabaseURL)
	fill(&result.ListenAddr, defaults.ListenAddr)

	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if len(result.Models) == 0 && len(defaults.Models) > 0 {
		result.Models = make(map[string]string, len(defaults.Models))
		for k, v := range defaults.Models {
			result.Models[k] = v
		}
	}
	return result
}

// LLMConfig returns the model configuration of the selected provider with
// the per-tier overrides applied.
func (c *Config) LLMConfig() (*llm.Config, error) {
	provider, err := llm.ParseProvider(c.Provider)
	if err != nil {
		return nil, err
	}
	cfg := llm.ConfigFor(provider)
	for tier, model := range c.Models {
		cfg = cfg.WithModel(llm.ModelTier(tier), model)
	}
	return cfg, nil
}

// APIKey returns the key of the selected provider.
func (c *Config) APIKey() (string, error) {
	provider, err := llm.ParseProvider(c.Provider)
	if err != nil {
		return "", err
	}
	key, env := c.AnthropicAPIKey, EnvAnthropicAPIKey
	if provider == llm.ProviderGemini {
		key, env = c.GeminiAPIKey, EnvGeminiAPIKey
	}
	if key == "" {
		return "", fmt.Errorf("%s is not set", env)
	}
	return key, nil
}

// Addr returns the listen address, defaulting to DefaultListenAddr.
func (c *Config) Addr() string {
	if c.ListenAddr != "" {
		return c.ListenAddr
	}
	return DefaultListenAddr
}
