package generator

import (
	"context"
	"math/rand"
)

// TextGenerator produces count alphanumeric strings of a fixed length.
type TextGenerator struct {
	count  int
	length int
	rng    *rand.Rand
	data   []string
}

// NewTextGenerator creates a TextGenerator.
func NewTextGenerator(count, length int, rng *rand.Rand) (*TextGenerator, error) {
	if err := requirePositive(KindStrings, "count", count); err != nil {
		return nil, err
	}
	if err := requirePositive(KindStrings, "length", length); err != nil {
		return nil, err
	}
	if err := requireSource(KindStrings, rng); err != nil {
		return nil, err
	}
	return &TextGenerator{count: count, length: length, rng: rng}, nil
}

// Kind implements Generator.
func (g *TextGenerator) Kind() Kind { return KindStrings }

// Generate implements Generator.
func (g *TextGenerator) Generate(ctx context.Context) error {
	data := make([]string, g.count)
	for i := range data {
		if err := checkContext(ctx, i); err != nil {
			return err
		}
		data[i] = randomString(g.rng, alphanumeric, g.length)
	}
	g.data = data
	return nil
}

// Analyze reports total_chars, the summed length of all strings.
func (g *TextGenerator) Analyze() (Summary, error) {
	if g.data == nil {
		return nil, ErrNotGenerated
	}
	total := 0
	for _, s := range g.data {
		total += len(s)
	}
	return Summary{MetricTotalChars: total}, nil
}
