// Package config loads and validates gtmdiff configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"gtmdiff/internal/gtmerrors"
)

// Config represents the complete gtmdiff configuration
type Config struct {
	// Account is the Tag Manager account display name
	Account string `json:"account" mapstructure:"account"`
	// ContainerA / ContainerB are the container names to compare
	ContainerA string `json:"containerA" mapstructure:"containerA"`
	ContainerB string `json:"containerB" mapstructure:"containerB"`
	// LabelA / LabelB name the two sides in the report
	LabelA string `json:"labelA" mapstructure:"labelA"`
	LabelB string `json:"labelB" mapstructure:"labelB"`

	Auth     AuthConfig     `json:"auth" mapstructure:"auth"`
	Diff     DiffConfig     `json:"diff" mapstructure:"diff"`
	Output   OutputConfig   `json:"output" mapstructure:"output"`
	Logging  LoggingConfig  `json:"logging" mapstructure:"logging"`
}

// AuthConfig contains OAuth credential locations
type AuthConfig struct {
	// CredentialsPath is the OAuth client secret JSON file
	CredentialsPath string `json:"credentialsPath" mapstructure:"credentialsPath"`
	// TokenDBPath is the sqlite database caching issued tokens
	TokenDBPath string `json:"tokenDbPath" mapstructure:"tokenDbPath"`
}

// DiffConfig controls snapshot normalization and comparison
type DiffConfig struct {
	// Categories to compare, in output order
	Categories []string `json:"categories" mapstructure:"categories"`
	// NoiseKeys are stripped from every entity before comparison
	NoiseKeys []string `json:"noiseKeys" mapstructure:"noiseKeys"`
	// IdentifierFields are per-category entity key fallbacks when an
	// entity has no name
	IdentifierFields map[string][]string `json:"identifierFields" mapstructure:"identifierFields"`
}

// OutputConfig controls report output
type OutputConfig struct {
	// Path of the CSV report
	Path string `json:"path" mapstructure:"path"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		LabelA: "A",
		LabelB: "B",
		Auth: AuthConfig{
			CredentialsPath: filepath.Join(home, ".gtmdiff", "client_secret.json"),
			TokenDBPath:     filepath.Join(home, ".gtmdiff", "tokens.db"),
		},
		Diff: DiffConfig{
			Categories: []string{"tags", "triggers", "variables"},
			NoiseKeys: []string{
				"path",
				"tagManagerUrl",
				"fingerprint",
				"accountId",
				"containerId",
				"workspaceId",
				"parentFolderId",
			},
			IdentifierFields: map[string][]string{
				"tags":      {"tagId"},
				"triggers":  {"triggerId"},
				"variables": {"variableId"},
			},
		},
		Output: OutputConfig{
			Path: "gtm_diff.csv",
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// Load reads configuration from path, or from $HOME/.gtmdiff/config.json
// when path is empty. Environment variables prefixed GTMDIFF_ override
// file values, with dots in nested keys spelled as underscores
// (auth.credentialsPath -> GTMDIFF_AUTH_CREDENTIALSPATH). A missing
// config file yields the defaults, still subject to env overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GTMDIFF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, _ := os.UserHomeDir()
		v.SetConfigName("config")
		v.SetConfigType("json")
		v.AddConfigPath(filepath.Join(home, ".gtmdiff"))
	}

	if err := v.ReadInConfig(); err != nil {
		// No file on the default search path means run with defaults;
		// an explicit --config that cannot be read is an error.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key with viper. AutomaticEnv only resolves
// keys viper already knows, so without this an env override on a fresh
// install (no config file) would be ignored.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("account", def.Account)
	v.SetDefault("containerA", def.ContainerA)
	v.SetDefault("containerB", def.ContainerB)
	v.SetDefault("labelA", def.LabelA)
	v.SetDefault("labelB", def.LabelB)
	v.SetDefault("auth.credentialsPath", def.Auth.CredentialsPath)
	v.SetDefault("auth.tokenDbPath", def.Auth.TokenDBPath)
	v.SetDefault("diff.categories", def.Diff.Categories)
	v.SetDefault("diff.noiseKeys", def.Diff.NoiseKeys)
	v.SetDefault("diff.identifierFields", def.Diff.IdentifierFields)
	v.SetDefault("output.path", def.Output.Path)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.level", def.Logging.Level)
}

// Save writes the configuration to path as indented JSON
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that a comparison run can proceed with this configuration
func (c *Config) Validate() error {
	if len(c.Diff.Categories) == 0 {
		return gtmerrors.New(gtmerrors.ConfigInvalid, "at least one category is required", nil)
	}
	if c.LabelA == "" || c.LabelB == "" {
		return gtmerrors.New(gtmerrors.ConfigInvalid, "both side labels are required", nil)
	}
	return nil
}
