// Package report renders analysis results as a summary line, a JSON object
// and an optional per-generator table.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/gookit/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dbsmedya/gosynth/internal/coordinator"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatBoth = "both"
)

// Options controls what Renderer writes.
type Options struct {
	Format string // text, json, or both; empty means both
	Color  bool
	Table  bool
}

// Line returns the human-readable one-line summary of result.
func Line(result coordinator.AnalysisResult) string {
	return fmt.Sprintf("Data size: %d, Dict size: %d, List size: %d, Unique values: %d, Grouped items: %d, Max group size: %d",
		result.DataSize,
		result.DictSize,
		result.ListSize,
		result.UniqueValues,
		result.GroupedItems,
		result.MaxGroupSize,
	)
}

// JSON returns result as a JSON object indented by two spaces.
func JSON(result coordinator.AnalysisResult) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return data, nil
}

// Render writes the summary line followed by the JSON object.
func Render(w io.Writer, result coordinator.AnalysisResult) error {
	return NewRenderer(Options{Format: FormatBoth}).Render(w, result, nil)
}

// Renderer writes results according to Options.
type Renderer struct {
	opts Options
}

// NewRenderer creates a Renderer.
func NewRenderer(opts Options) *Renderer {
	if opts.Format == "" {
		opts.Format = FormatBoth
	}
	return &Renderer{opts: opts}
}

// Render writes result and, when tables are enabled, the per-generator
// summaries.
func (r *Renderer) Render(w io.Writer, result coordinator.AnalysisResult, summaries []coordinator.NamedSummary) error {
	if r.opts.Table && len(summaries) > 0 {
		if _, err := fmt.Fprintln(w, Table(summaries)); err != nil {
			return err
		}
	}

	if r.opts.Format == FormatText || r.opts.Format == FormatBoth {
		line := Line(result)
		if r.opts.Color {
			line = color.Cyan.Sprint(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if r.opts.Format == FormatJSON || r.opts.Format == FormatBoth {
		data, err := JSON(result)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return err
		}
	}

	return nil
}

// Table formats per-generator summaries, one row per metric.
func Table(summaries []coordinator.NamedSummary) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{"Generator", "Kind", "Metric", "Value"})

	rows := 0
	for _, s := range summaries {
		metrics := make([]string, 0, len(s.Summary))
		for k := range s.Summary {
			metrics = append(metrics, k)
		}
		sort.Strings(metrics)

		for _, m := range metrics {
			tbl.AppendRow(table.Row{s.Name, s.Kind.String(), m, s.Summary[m]})
			rows++
		}
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d generator(s)", len(summaries)), "", "", fmt.Sprintf("%d metric(s)", rows)})

	return tbl.Render()
}
