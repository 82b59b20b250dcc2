package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gosynth/internal/generator"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration without generating data",
	Long: `Validate checks the configuration file and constructs every generator
without generating any data.

Checks performed:
  - Configuration syntax and required fields
  - Known generator types and unique names
  - Positive counts and lengths for each generator

Example:
  gosynth validate --config gosynth.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	cmd.Printf("\n=== Configuration Validation ===\n")
	cmd.Printf("Config file: %s\n", configFile)
	cmd.Printf("Generators found: %d\n\n", len(cfg.Generators))

	if err := cfg.Validate(); err != nil {
		cmd.Printf("❌ %v\n\n", err)
		return fmt.Errorf("configuration is invalid")
	}

	// Construct every generator; nothing is generated
	hasErrors := false
	rng := rand.New(rand.NewSource(1))
	for _, gc := range cfg.Generators {
		if _, err := generator.FromConfig(gc, rng); err != nil {
			cmd.Printf("❌ %s (%s): %v\n", gc.Name, gc.Type, err)
			hasErrors = true
			continue
		}
		cmd.Printf("✅ %s (%s): %s\n", gc.Name, gc.Type, describeParams(gc))
	}

	if hasErrors {
		return fmt.Errorf("validation failed for one or more generators")
	}

	cmd.Println("\n=== Validation Complete ===")
	cmd.Println("✅ All generators validated successfully")
	return nil
}
