// Package coordinator keeps a registry of named generators and drives the
// generate and analyze phases across all of them.
package coordinator

import (
	"context"
	"fmt"
	"maps"
	"reflect"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"golang.org/x/sync/errgroup"

	"github.com/dbsmedya/gosynth/internal/generator"
	"github.com/dbsmedya/gosynth/internal/logger"
)

var (
	// ErrEmptyName is returned when registering under an empty name.
	ErrEmptyName = fmt.Errorf("%w: generator name is empty", generator.ErrUsage)

	// ErrNilGenerator is returned when registering a nil generator.
	ErrNilGenerator = fmt.Errorf("%w: generator is nil", generator.ErrUsage)

	// ErrUnknownGenerator is returned when a name is not registered.
	ErrUnknownGenerator = fmt.Errorf("%w: generator not registered", generator.ErrUsage)

	// ErrNotGenerated is returned by AnalyzeAll before a successful GenerateAll.
	ErrNotGenerated = fmt.Errorf("%w: AnalyzeAll called before GenerateAll", generator.ErrUsage)
)

// Options controls how the coordinator runs generators.
type Options struct {
	// Parallel runs generators concurrently. Merge order is still registration order.
	Parallel bool
	// Workers bounds concurrency in parallel mode; 0 means unbounded.
	Workers int
}

// Coordinator owns generators by name in registration order.
type Coordinator struct {
	generators *orderedmap.OrderedMap[string, generator.Generator]
	opts       Options
	logger     *logger.Logger
	generated  bool
	summaries  []NamedSummary
}

type entry struct {
	name string
	gen  generator.Generator
}

// New creates an empty Coordinator.
func New(opts Options, log *logger.Logger) *Coordinator {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Coordinator{
		generators: orderedmap.NewOrderedMap[string, generator.Generator](),
		opts:       opts,
		logger:     log,
	}
}

// Register adds gen under name. Re-registering a name replaces the previous
// generator and keeps its original position.
func (c *Coordinator) Register(name string, gen generator.Generator) error {
	if name == "" {
		return ErrEmptyName
	}
	if isNil(gen) {
		return ErrNilGenerator
	}
	if !c.generators.Set(name, gen) {
		c.logger.Warnw("Replacing registered generator", "generator", name, "kind", gen.Kind().String())
		return nil
	}
	c.logger.Debugw("Registered generator", "generator", name, "kind", gen.Kind().String())
	return nil
}

// isNil also catches typed nil pointers stored in the interface.
func isNil(gen generator.Generator) bool {
	if gen == nil {
		return true
	}
	v := reflect.ValueOf(gen)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Unregister removes name from the registry.
func (c *Coordinator) Unregister(name string) error {
	if !c.generators.Delete(name) {
		return fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
	return nil
}

// Get returns the generator registered under name.
func (c *Coordinator) Get(name string) (generator.Generator, bool) {
	return c.generators.Get(name)
}

// Names returns registered names in registration order.
func (c *Coordinator) Names() []string {
	names := make([]string, 0, c.generators.Len())
	for el := c.generators.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

// Len returns the number of registered generators.
func (c *Coordinator) Len() int {
	return c.generators.Len()
}

func (c *Coordinator) entries() []entry {
	out := make([]entry, 0, c.generators.Len())
	for el := c.generators.Front(); el != nil; el = el.Next() {
		out = append(out, entry{name: el.Key, gen: el.Value})
	}
	return out
}

// each runs fn for every entry, sequentially or through an errgroup.
func (c *Coordinator) each(ctx context.Context, entries []entry, fn func(ctx context.Context, i int, e entry) error) error {
	if !c.opts.Parallel {
		for i, e := range entries {
			if err := fn(ctx, i, e); err != nil {
				return err
			}
		}
		return nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	if c.opts.Workers > 0 {
		g.SetLimit(c.opts.Workers)
	}
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			return fn(gCtx, i, e)
		})
	}
	return g.Wait()
}

// GenerateAll calls Generate on every registered generator. A failed run
// leaves the coordinator ungenerated, so AnalyzeAll never mixes datasets
// from two runs.
func (c *Coordinator) GenerateAll(ctx context.Context) error {
	c.generated = false
	c.summaries = nil

	entries := c.entries()
	c.logger.Infow("Generating datasets",
		"generators", len(entries),
		"parallel", c.opts.Parallel,
	)

	start := time.Now()
	err := c.each(ctx, entries, func(ctx context.Context, _ int, e entry) error {
		log := c.logger.WithGenerator(e.name, e.gen.Kind().String())
		began := time.Now()
		if err := e.gen.Generate(ctx); err != nil {
			return fmt.Errorf("generate %q: %w", e.name, err)
		}
		log.Debugw("Dataset generated", "duration", time.Since(began))
		return nil
	})
	if err != nil {
		return err
	}

	c.generated = true
	c.logger.Infow("Datasets generated", "duration", time.Since(start))
	return nil
}

// AnalyzeAll summarizes every generator, merges the summaries in registration
// order (later keys overwrite earlier ones) and projects the result.
func (c *Coordinator) AnalyzeAll(ctx context.Context) (AnalysisResult, error) {
	if !c.generated {
		return AnalysisResult{}, ErrNotGenerated
	}

	entries := c.entries()
	fragments := make([]NamedSummary, len(entries))
	err := c.each(ctx, entries, func(ctx context.Context, i int, e entry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		summary, err := e.gen.Analyze()
		if err != nil {
			return fmt.Errorf("analyze %q: %w", e.name, err)
		}
		fragments[i] = NamedSummary{Name: e.name, Kind: e.gen.Kind(), Summary: summary}
		return nil
	})
	if err != nil {
		return AnalysisResult{}, err
	}

	merged := make(generator.Summary)
	for _, f := range fragments {
		maps.Copy(merged, f.Summary)
	}
	c.summaries = fragments

	result := Project(merged)
	c.logger.Debugw("Analysis merged", "metrics", len(merged))
	return result, nil
}

// Summaries returns the per-generator summaries of the last AnalyzeAll in
// registration order.
func (c *Coordinator) Summaries() []NamedSummary {
	out := make([]NamedSummary, len(c.summaries))
	copy(out, c.summaries)
	return out
}
