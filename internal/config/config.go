// Package config provides configuration structures and loading for gosynth.
package config

// Config represents the complete application configuration.
type Config struct {
	Seed       int64             `yaml:"seed" mapstructure:"seed"` // 0 picks a time-based seed per run
	Execution  ExecutionConfig   `yaml:"execution" mapstructure:"execution"`
	Generators []GeneratorConfig `yaml:"generators" mapstructure:"generators"`
	Output     OutputConfig      `yaml:"output" mapstructure:"output"`
	Logging    LoggingConfig     `yaml:"logging" mapstructure:"logging"`
}

// ExecutionConfig controls how the coordinator drives the generators.
type ExecutionConfig struct {
	Parallel bool `yaml:"parallel" mapstructure:"parallel"`
	Workers  int  `yaml:"workers" mapstructure:"workers"` // 0 means one goroutine per generator
}

// GeneratorConfig describes one named generator. Only the fields relevant to
// Type are read: count for all, length for strings/sets, nested_size for
// nested_dict, string_length for tuples.
type GeneratorConfig struct {
	Name         string `yaml:"name" mapstructure:"name"`
	Type         string `yaml:"type" mapstructure:"type"` // strings, nested_dict, tuples, sets, grouped
	Count        int    `yaml:"count" mapstructure:"count"`
	Length       int    `yaml:"length" mapstructure:"length"`
	NestedSize   int    `yaml:"nested_size" mapstructure:"nested_size"`
	StringLength int    `yaml:"string_length" mapstructure:"string_length"`
}

// OutputConfig represents report rendering settings.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // text, json, or both
	Color  bool   `yaml:"color" mapstructure:"color"`
	Table  bool   `yaml:"table" mapstructure:"table"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultGenerators returns one generator of every shape.
func DefaultGenerators() []GeneratorConfig {
	return []GeneratorConfig{
		{Name: "strings", Type: "strings", Count: 10000, Length: 100},
		{Name: "nested_dict", Type: "nested_dict", Count: 100, NestedSize: 10},
		{Name: "tuples", Type: "tuples", Count: 10000, StringLength: 10},
		{Name: "sets", Type: "sets", Count: 10000, Length: 8},
		{Name: "grouped", Type: "grouped", Count: 10000},
	}
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Seed: 0,
		Execution: ExecutionConfig{
			Parallel: false,
			Workers:  0,
		},
		Generators: DefaultGenerators(),
		Output: OutputConfig{
			Format: "both",
			Color:  false,
			Table:  false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// GetGenerator retrieves a generator configuration by name.
func (c *Config) GetGenerator(name string) (*GeneratorConfig, bool) {
	for i := range c.Generators {
		if c.Generators[i].Name == name {
			return &c.Generators[i], true
		}
	}
	return nil, false
}

// ListGenerators returns generator names in declaration order.
func (c *Config) ListGenerators() []string {
	names := make([]string, 0, len(c.Generators))
	for _, g := range c.Generators {
		names = append(names, g.Name)
	}
	return names
}
