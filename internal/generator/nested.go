package generator

import (
	"context"
	"math/rand"
	"strconv"
)

const (
	nestedPayloadLength = 500
	nestedFloatCount    = 500
	nestedMaxNumber     = 10_000_000
	nestedMinTimestamp  = 1_000_000
	nestedMaxTimestamp  = 9_999_999
)

// NestedRecord is the value stored under each key of a nested mapping.
type NestedRecord struct {
	Payload   string
	Number    int
	Floats    []float64
	Timestamp int
	Nested    map[string]float64
}

// NestedGenerator produces a mapping of stringified index to NestedRecord.
type NestedGenerator struct {
	count      int
	nestedSize int
	rng        *rand.Rand
	data       map[string]NestedRecord
}

// NewNestedGenerator creates a NestedGenerator.
func NewNestedGenerator(count, nestedSize int, rng *rand.Rand) (*NestedGenerator, error) {
	if err := requirePositive(KindNestedDict, "count", count); err != nil {
		return nil, err
	}
	if err := requirePositive(KindNestedDict, "nested_size", nestedSize); err != nil {
		return nil, err
	}
	if err := requireSource(KindNestedDict, rng); err != nil {
		return nil, err
	}
	return &NestedGenerator{count: count, nestedSize: nestedSize, rng: rng}, nil
}

// Kind implements Generator.
func (g *NestedGenerator) Kind() Kind { return KindNestedDict }

// Generate implements Generator.
func (g *NestedGenerator) Generate(ctx context.Context) error {
	data := make(map[string]NestedRecord, g.count)
	for i := 0; i < g.count; i++ {
		if err := checkContext(ctx, i); err != nil {
			return err
		}
		data[strconv.Itoa(i)] = g.record()
	}
	g.data = data
	return nil
}

func (g *NestedGenerator) record() NestedRecord {
	floats := make([]float64, nestedFloatCount)
	for i := range floats {
		floats[i] = g.rng.Float64()
	}

	nested := make(map[string]float64, g.nestedSize)
	for j := 0; j < g.nestedSize; j++ {
		nested[strconv.Itoa(j)] = g.rng.Float64()
	}

	return NestedRecord{
		Payload:   randomString(g.rng, letters, nestedPayloadLength),
		Number:    g.rng.Intn(nestedMaxNumber + 1),
		Floats:    floats,
		Timestamp: nestedMinTimestamp + g.rng.Intn(nestedMaxTimestamp-nestedMinTimestamp+1),
		Nested:    nested,
	}
}

// Analyze reports dict_size, the number of top-level entries.
func (g *NestedGenerator) Analyze() (Summary, error) {
	if g.data == nil {
		return nil, ErrNotGenerated
	}
	return Summary{MetricDictSize: len(g.data)}, nil
}
