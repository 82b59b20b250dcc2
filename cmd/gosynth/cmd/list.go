package cmd

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/gosynth/internal/config"
	"github.com/dbsmedya/gosynth/internal/generator"
)

var listKinds bool

var listGeneratorsCmd = &cobra.Command{
	Use:   "list-generators",
	Short: "List all generators defined in configuration",
	Long: `List-generators displays the generators defined in the configuration
file, in the order they are registered, along with their parameters.

Use --kinds to list the supported generator types instead.

Example:
  gosynth list-generators --config gosynth.yaml`,
	RunE: runListGenerators,
}

func init() {
	listGeneratorsCmd.Flags().BoolVar(&listKinds, "kinds", false,
		"List supported generator types")

	rootCmd.AddCommand(listGeneratorsCmd)
}

func runListGenerators(cmd *cobra.Command, args []string) error {
	if listKinds {
		printKinds(cmd)
		return nil
	}

	configFile := GetConfigFile()

	cfg, found, err := loadConfig()
	if err != nil {
		return err
	}

	if len(cfg.Generators) == 0 {
		cmd.Printf("No generators defined in %s\n", configFile)
		return nil
	}

	if found {
		cmd.Printf("Generators defined in %s:\n\n", configFile)
	} else {
		cmd.Printf("Generators (built-in defaults, %s not found):\n\n", configFile)
	}

	nameWidth := runewidth.StringWidth("NAME")
	for _, gc := range cfg.Generators {
		nameWidth = max(nameWidth, runewidth.StringWidth(gc.Name))
	}

	cmd.Printf("   %s  %-12s %s\n", runewidth.FillRight("NAME", nameWidth), "TYPE", "PARAMETERS")
	for i, gc := range cfg.Generators {
		cmd.Printf("%d. %s  %-12s %s\n", i+1, runewidth.FillRight(gc.Name, nameWidth), gc.Type, describeParams(gc))
	}

	cmd.Printf("\nTotal: %d generator(s)\n", len(cfg.Generators))
	return nil
}

func printKinds(cmd *cobra.Command) {
	cmd.Printf("Supported generator types:\n\n")
	for _, k := range generator.Kinds() {
		cmd.Printf("  %-12s %s\n", k, k.Description())
	}
}

// describeParams renders the parameters that apply to the generator type.
func describeParams(gc config.GeneratorConfig) string {
	switch gc.Type {
	case "strings", "sets":
		return fmt.Sprintf("count=%d length=%d", gc.Count, gc.Length)
	case "nested_dict":
		return fmt.Sprintf("count=%d nested_size=%d", gc.Count, gc.NestedSize)
	case "tuples":
		return fmt.Sprintf("count=%d string_length=%d", gc.Count, gc.StringLength)
	default:
		return fmt.Sprintf("count=%d", gc.Count)
	}
}
