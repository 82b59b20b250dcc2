package generator

import (
	"context"
	"math/rand"
)

// SetGenerator inserts count random letter strings into a set. Collisions are
// kept, so the set may end up smaller than count.
type SetGenerator struct {
	count  int
	length int
	rng    *rand.Rand
	data   map[string]struct{}
}

// NewSetGenerator creates a SetGenerator.
func NewSetGenerator(count, length int, rng *rand.Rand) (*SetGenerator, error) {
	if err := requirePositive(KindSets, "count", count); err != nil {
		return nil, err
	}
	if err := requirePositive(KindSets, "length", length); err != nil {
		return nil, err
	}
	if err := requireSource(KindSets, rng); err != nil {
		return nil, err
	}
	return &SetGenerator{count: count, length: length, rng: rng}, nil
}

// Kind implements Generator.
func (g *SetGenerator) Kind() Kind { return KindSets }

// Generate implements Generator.
func (g *SetGenerator) Generate(ctx context.Context) error {
	data := make(map[string]struct{}, g.count)
	for i := 0; i < g.count; i++ {
		if err := checkContext(ctx, i); err != nil {
			return err
		}
		data[randomString(g.rng, letters, g.length)] = struct{}{}
	}
	g.data = data
	return nil
}

// Analyze reports unique_count, the set size after generation.
func (g *SetGenerator) Analyze() (Summary, error) {
	if g.data == nil {
		return nil, ErrNotGenerated
	}
	return Summary{MetricUniqueCount: len(g.data)}, nil
}
