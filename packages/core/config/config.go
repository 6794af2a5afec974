package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/requeasy/packages/http"
)

// Trust policies accepted in the config file and on the command line.
const (
	TrustEmbedded = "embedded"
	TrustSystem   = "system"
)

// Config represents the requeasy configuration
type Config struct {
	Trust     string   `yaml:"trust,omitempty" json:"trust,omitempty"`         // embedded or system
	CAFile    string   `yaml:"caFile,omitempty" json:"caFile,omitempty"`       // PEM bundle, overrides Trust
	Headers   []string `yaml:"headers,omitempty" json:"headers,omitempty"`     // header lines for POST/PUT
	Output    string   `yaml:"output,omitempty" json:"output,omitempty"`       // console or json
	LogLevel  string   `yaml:"logLevel,omitempty" json:"logLevel,omitempty"`
	LogFormat string   `yaml:"logFormat,omitempty" json:"logFormat,omitempty"`
	NoColor   *bool    `yaml:"noColor,omitempty" json:"noColor,omitempty"`
	Verbose   *bool    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}

func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// ConfigFilenames contains the possible config file names, in search order
var ConfigFilenames = []string{
	".requeasy.yaml",
	"requeasy.yaml",
	".requeasy.json",
	".requeasyrc",
}

// LoadConfig loads configuration from path, or searches the current
// directory when path is empty.
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig returns the first config file found in dir, or the
// defaults when none exists.
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}
	return DefaultConfig(), nil
}

// loadConfigFromFile parses YAML; JSON files parse too since JSON is valid YAML.
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Trust {
	case "", TrustEmbedded, TrustSystem:
	default:
		return fmt.Errorf("unknown trust policy %q (want %s or %s)", c.Trust, TrustEmbedded, TrustSystem)
	}
	switch c.Output {
	case "", "console", "json":
	default:
		return fmt.Errorf("unknown output format %q (want console or json)", c.Output)
	}
	return nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c

	if other.Trust != "" {
		result.Trust = other.Trust
	}
	if other.CAFile != "" {
		result.CAFile = other.CAFile
	}
	if other.Output != "" {
		result.Output = other.Output
	}
	if other.LogLevel != "" {
		result.LogLevel = other.LogLevel
	}
	if other.LogFormat != "" {
		result.LogFormat = other.LogFormat
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	// header lines replace rather than append, matching request semantics
	if len(other.Headers) > 0 {
		result.Headers = append([]string(nil), other.Headers...)
	}

	return &result
}

// TLSConfigProvider maps the trust settings onto a provider. A CA file
// takes precedence over the named policy.
func (c *Config) TLSConfigProvider() (http.TLSConfigProvider, error) {
	if c.CAFile != "" {
		return http.PEMRootsFromFile(c.CAFile)
	}
	switch c.Trust {
	case TrustSystem:
		return http.SystemRoots{}, nil
	case "", TrustEmbedded:
		return &http.EmbeddedRoots{}, nil
	default:
		return nil, fmt.Errorf("unknown trust policy %q", c.Trust)
	}
}

// SaveConfig writes the configuration as YAML.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
