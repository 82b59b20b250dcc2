package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gosynth/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

const defaultConfigFile = "gosynth.yaml"

// CLI flags that override config file values
var (
	cfgFile      string
	logLevel     string
	logFormat    string
	seed         int64
	parallel     bool
	workers      int
	outputFormat string
	showTable    bool
	useColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "gosynth",
	Short: "Synthetic in-memory data generator and analyzer",
	Long: `gosynth builds large synthetic datasets in memory and reports simple
aggregate statistics over them.

Generator types:
  - strings:     random alphanumeric strings
  - nested_dict: mapping of index to nested records
  - tuples:      (index, float, text) records
  - sets:        unique random strings, collisions kept
  - grouped:     integers grouped under letter keys`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigFile,
		"Path to configuration file (built-in generators are used if the default file is absent)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Execution overrides
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0,
		"Override random seed (0 picks a time-based seed)")
	rootCmd.PersistentFlags().BoolVar(&parallel, "parallel", false,
		"Run generators concurrently")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0,
		"Override maximum concurrent generators in parallel mode")

	// Output overrides
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "",
		"Override output format (text, json, both)")
	rootCmd.PersistentFlags().BoolVar(&showTable, "table", false,
		"Print a per-generator metrics table")
	rootCmd.PersistentFlags().BoolVar(&useColor, "color", false,
		"Colorize the summary line")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() config.Overrides {
	return config.Overrides{
		LogLevel:     logLevel,
		LogFormat:    logFormat,
		Seed:         seed,
		Parallel:     parallel,
		Workers:      workers,
		OutputFormat: outputFormat,
		Table:        showTable,
		Color:        useColor,
	}
}

// loadConfig reads the configuration file and applies CLI overrides. A
// missing file is only tolerated for the default path.
func loadConfig() (*config.Config, bool, error) {
	configFile := GetConfigFile()

	var (
		cfg   *config.Config
		found = true
		err   error
	)
	if configFile == defaultConfigFile {
		cfg, found, err = config.LoadOrDefault(configFile)
	} else {
		cfg, err = config.Load(configFile)
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ApplyOverrides(GetCLIOverrides())
	return cfg, found, nil
}
