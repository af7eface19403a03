package cssls

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project configuration file looked up per workspace.
const ConfigFileName = ".cssls.yaml"

// Config represents the .cssls.yaml configuration file.
type Config struct {
	Completion CompletionConfig `yaml:"completion,omitempty"`
	CustomData CustomData       `yaml:"customData,omitempty"`
}

// CompletionConfig tunes completion behavior.
type CompletionConfig struct {
	// TagSelectors controls whether tag-name selectors are suggested at
	// the top level. Defaults to true.
	TagSelectors *bool `yaml:"tagSelectors,omitempty"`
}

// CustomData supplies project-specific language data merged into the
// built-in tables.
type CustomData struct {
	// AtRules are extra at-rule names (with or without the leading '@').
	AtRules []string `yaml:"atRules,omitempty"`

	// Colors maps extra named colors to their hex values.
	Colors map[string]string `yaml:"colors,omitempty"`
}

// TagSelectorsEnabled reports whether tag-name selector suggestions are on.
func (c *Config) TagSelectorsEnabled() bool {
	if c == nil || c.Completion.TagSelectors == nil {
		return true
	}

	return *c.Completion.TagSelectors
}

// LoadConfig reads .cssls.yaml from the given directory.
// Returns ErrConfigNotFound if the file does not exist.
func LoadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}

		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}

	return &cfg, nil
}

// FindConfig walks up from startDir looking for .cssls.yaml.
// Returns the config and the directory it was found in.
func FindConfig(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		cfg, err := LoadConfig(dir)
		if err == nil {
			return cfg, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, startDir, ErrConfigNotFound
		}

		dir = parent
	}
}
