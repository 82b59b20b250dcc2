// Package generator provides the synthetic data producers. Each generator
// owns one in-memory dataset of a fixed shape and can summarize it as a set of
// named integer metrics.
package generator

import (
	"context"
	"fmt"
	"math/rand"
)

// Metric names reported by the built-in generators. Key sets are disjoint
// across kinds so merged summaries never collide by default.
const (
	MetricTotalChars   = "total_chars"
	MetricDictSize     = "dict_size"
	MetricTupleCount   = "tuple_count"
	MetricUniqueCount  = "unique_count"
	MetricGroupedItems = "grouped_items"
	MetricMaxGroupSize = "max_group_size"
)

// Summary maps a metric name to its value.
type Summary map[string]int

// Generator produces one shape of synthetic data and summarizes it.
type Generator interface {
	// Kind returns the shape tag used for display and bookkeeping.
	Kind() Kind
	// Generate builds a fresh dataset, replacing any previous one.
	Generate(ctx context.Context) error
	// Analyze summarizes the most recent dataset without modifying it.
	// It returns ErrNotGenerated before the first successful Generate.
	Analyze() (Summary, error)
}

// checkEvery is how many items are produced between context checks.
const checkEvery = 1024

func checkContext(ctx context.Context, i int) error {
	if i%checkEvery != 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("generation interrupted after %d items: %w", i, err)
	}
	return nil
}

const (
	lowercase    = "abcdefghijklmnopqrstuvwxyz"
	uppercase    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	letters      = lowercase + uppercase
	alphanumeric = letters + "0123456789"
)

// randomString draws n characters uniformly from alphabet.
func randomString(rng *rand.Rand, alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}
