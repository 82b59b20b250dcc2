package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from the specified file path.
// It supports YAML files and performs environment variable substitution.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadOrDefault behaves like Load but returns DefaultConfig when the file does
// not exist. Any other read or parse failure is still returned.
func LoadOrDefault(configPath string) (*Config, bool, error) {
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), false, nil
	}
	cfg, err := Load(configPath)
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

// LoadFromViper creates a Config from an existing Viper instance.
// Useful for testing or when Viper is configured externally.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	// mapstructure merges into existing slice elements, so the default
	// generator list is only applied when the file declares none.
	cfg.Generators = nil

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(cfg.Generators) == 0 {
		cfg.Generators = DefaultGenerators()
	}

	substituteEnvVars(cfg)

	return cfg, nil
}

// envVarPattern matches ${VAR_NAME} or $VAR_NAME patterns
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// substituteEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func substituteEnvVars(cfg *Config) {
	for i := range cfg.Generators {
		cfg.Generators[i].Name = expandEnvVar(cfg.Generators[i].Name)
	}

	cfg.Logging.Output = expandEnvVar(cfg.Logging.Output)
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		// Return original if env var not found
		return match
	})
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Logging.Format = o.LogFormat
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Parallel {
		c.Execution.Parallel = true
	}
	if o.Workers > 0 {
		c.Execution.Workers = o.Workers
	}
	if o.OutputFormat != "" {
		c.Output.Format = o.OutputFormat
	}
	if o.Table {
		c.Output.Table = true
	}
	if o.Color {
		c.Output.Color = true
	}
}

// Overrides holds the command line values that take precedence over the file.
type Overrides struct {
	LogLevel     string
	LogFormat    string
	Seed         int64
	Parallel     bool
	Workers      int
	OutputFormat string
	Table        bool
	Color        bool
}
