package generator

import (
	"context"
	"math/rand"
)

const (
	groupMinValue = 1
	groupMaxValue = 100_000
)

// GroupedGenerator appends count random integers to lists keyed by a random
// uppercase letter.
type GroupedGenerator struct {
	count int
	rng   *rand.Rand
	data  map[byte][]int
}

// NewGroupedGenerator creates a GroupedGenerator. A count of zero is valid and
// yields an empty grouping.
func NewGroupedGenerator(count int, rng *rand.Rand) (*GroupedGenerator, error) {
	if count < 0 {
		return nil, &ConfigError{Kind: KindGrouped, Field: "count", Message: "cannot be negative"}
	}
	if err := requireSource(KindGrouped, rng); err != nil {
		return nil, err
	}
	return &GroupedGenerator{count: count, rng: rng}, nil
}

// Kind implements Generator.
func (g *GroupedGenerator) Kind() Kind { return KindGrouped }

// Generate implements Generator.
func (g *GroupedGenerator) Generate(ctx context.Context) error {
	data := make(map[byte][]int, len(uppercase))
	for i := 0; i < g.count; i++ {
		if err := checkContext(ctx, i); err != nil {
			return err
		}
		key := uppercase[g.rng.Intn(len(uppercase))]
		data[key] = append(data[key], groupMinValue+g.rng.Intn(groupMaxValue-groupMinValue+1))
	}
	g.data = data
	return nil
}

// Analyze reports grouped_items (distinct keys) and max_group_size.
func (g *GroupedGenerator) Analyze() (Summary, error) {
	if g.data == nil {
		return nil, ErrNotGenerated
	}
	largest := 0
	for _, values := range g.data {
		largest = max(largest, len(values))
	}
	return Summary{
		MetricGroupedItems: len(g.data),
		MetricMaxGroupSize: largest,
	}, nil
}
