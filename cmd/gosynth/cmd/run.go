package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/gosynth/internal/coordinator"
	"github.com/dbsmedya/gosynth/internal/logger"
	"github.com/dbsmedya/gosynth/internal/report"
	"github.com/dbsmedya/gosynth/internal/shutdown"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate all configured datasets and print the analysis",
	Long: `Run builds every configured generator, generates its dataset, analyzes
all datasets and prints the combined result.

The run follows these steps:
  1. Register generators in declaration order
  2. Generate every dataset (sequentially, or concurrently with --parallel)
  3. Analyze every dataset and merge the metrics in declaration order
  4. Print a summary line followed by a JSON object

Example:
  gosynth run --config gosynth.yaml --seed 42`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration and apply CLI overrides
	cfg, found, err := loadConfig()
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	runSeed := coordinator.ResolveSeed(cfg.Seed)
	log = log.WithRun(uuid.New().String())
	log.Infow("Starting run",
		"config", configFile,
		"config_found", found,
		"seed", runSeed,
		"generators", len(cfg.Generators),
	)

	coord, err := coordinator.FromConfig(cfg, runSeed, log)
	if err != nil {
		return fmt.Errorf("failed to build generators: %w", err)
	}

	// Cancel generation on interrupt
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := shutdown.WithSignals(parent, func(sig os.Signal) {
		log.Warnw("Received signal, cancelling generation", "signal", sig.String())
	})
	defer stop()

	if err := coord.GenerateAll(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("Run cancelled by user")
		}
		return fmt.Errorf("generation failed: %w", err)
	}

	result, err := coord.AnalyzeAll(ctx)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	log.Infow("Analysis complete",
		"data_size", humanize.Comma(int64(result.DataSize)),
		"dict_size", humanize.Comma(int64(result.DictSize)),
		"list_size", humanize.Comma(int64(result.ListSize)),
		"unique_values", humanize.Comma(int64(result.UniqueValues)),
		"grouped_items", humanize.Comma(int64(result.GroupedItems)),
		"max_group_size", humanize.Comma(int64(result.MaxGroupSize)),
	)

	renderer := report.NewRenderer(report.Options{
		Format: cfg.Output.Format,
		Color:  cfg.Output.Color,
		Table:  cfg.Output.Table,
	})
	return renderer.Render(cmd.OutOrStdout(), result, coord.Summaries())
}
