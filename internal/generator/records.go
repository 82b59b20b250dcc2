package generator

import (
	"context"
	"math/rand"
)

// Record is one fixed-arity row of a record sequence.
type Record struct {
	Index int
	Value float64
	Text  string
}

// RecordGenerator produces count sequentially indexed records.
type RecordGenerator struct {
	count        int
	stringLength int
	rng          *rand.Rand
	data         []Record
}

// NewRecordGenerator creates a RecordGenerator.
func NewRecordGenerator(count, stringLength int, rng *rand.Rand) (*RecordGenerator, error) {
	if err := requirePositive(KindTuples, "count", count); err != nil {
		return nil, err
	}
	if err := requirePositive(KindTuples, "string_length", stringLength); err != nil {
		return nil, err
	}
	if err := requireSource(KindTuples, rng); err != nil {
		return nil, err
	}
	return &RecordGenerator{count: count, stringLength: stringLength, rng: rng}, nil
}

// Kind implements Generator.
func (g *RecordGenerator) Kind() Kind { return KindTuples }

// Generate implements Generator.
func (g *RecordGenerator) Generate(ctx context.Context) error {
	data := make([]Record, g.count)
	for i := range data {
		if err := checkContext(ctx, i); err != nil {
			return err
		}
		data[i] = Record{
			Index: i,
			Value: g.rng.Float64(),
			Text:  randomString(g.rng, letters, g.stringLength),
		}
	}
	g.data = data
	return nil
}

// Analyze reports tuple_count.
func (g *RecordGenerator) Analyze() (Summary, error) {
	if g.data == nil {
		return nil, ErrNotGenerated
	}
	return Summary{MetricTupleCount: len(g.data)}, nil
}
