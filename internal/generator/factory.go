package generator

import (
	"fmt"
	"math/rand"

	"github.com/dbsmedya/gosynth/internal/config"
)

// FromConfig builds the generator described by gc. Only the fields that
// apply to gc.Type are read.
func FromConfig(gc config.GeneratorConfig, rng *rand.Rand) (Generator, error) {
	kind, err := ParseKind(gc.Type)
	if err != nil {
		return nil, fmt.Errorf("generator %q: %w", gc.Name, err)
	}

	var gen Generator
	switch kind {
	case KindStrings:
		gen, err = NewTextGenerator(gc.Count, gc.Length, rng)
	case KindNestedDict:
		gen, err = NewNestedGenerator(gc.Count, gc.NestedSize, rng)
	case KindTuples:
		gen, err = NewRecordGenerator(gc.Count, gc.StringLength, rng)
	case KindSets:
		gen, err = NewSetGenerator(gc.Count, gc.Length, rng)
	case KindGrouped:
		gen, err = NewGroupedGenerator(gc.Count, rng)
	}
	if err != nil {
		return nil, fmt.Errorf("generator %q: %w", gc.Name, err)
	}
	return gen, nil
}
