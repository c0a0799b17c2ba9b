package providers

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that decodes from the usual "45s" string form
// in YAML and JSON config files.
type Duration time.Duration

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// OpenRouterConfig configures the OpenRouter provider.
type OpenRouterConfig struct {
	// APIKey authenticates against OpenRouter. When empty, the
	// OPENROUTER_API_KEY environment variable is consulted at construction;
	// if that is also empty, construction fails.
	APIKey  string   `json:"api_key" yaml:"api_key"`
	BaseURL string   `json:"base_url" yaml:"base_url"`
	Model   string   `json:"model,omitempty" yaml:"model,omitempty"`
	Timeout Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`

	// FallbackModels are alternate model ids OpenRouter tries in order when
	// the primary model fails. Passed through opaquely via the extra_body
	// side channel.
	FallbackModels []string `json:"fallback_models,omitempty" yaml:"fallback_models,omitempty"`

	// AppName and SiteURL populate OpenRouter's attribution headers
	// (X-Title, HTTP-Referer) when set.
	AppName string `json:"app_name,omitempty" yaml:"app_name,omitempty"`
	SiteURL string `json:"site_url,omitempty" yaml:"site_url,omitempty"`
}

// Config is the file-level provider configuration.
type Config struct {
	OpenRouter OpenRouterConfig `json:"openrouter" yaml:"openrouter"`
}

// LoadConfig reads a YAML provider configuration file. Credentials left
// empty in the file are resolved later from the environment by the provider
// constructors, so config files never need to embed keys.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
