package generator

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func onlyFrom(t *testing.T, s, alphabet string) {
	t.Helper()
	for _, r := range s {
		if !strings.ContainsRune(alphabet, r) {
			t.Fatalf("character %q of %q not in alphabet", r, s)
		}
	}
}

func TestTextGenerator(t *testing.T) {
	gen, err := NewTextGenerator(40, 7, newRand(1))
	require.NoError(t, err)
	assert.Equal(t, KindStrings, gen.Kind())

	require.NoError(t, gen.Generate(context.Background()))
	require.Len(t, gen.data, 40)
	for _, s := range gen.data {
		assert.Len(t, s, 7)
		onlyFrom(t, s, alphanumeric)
	}

	summary, err := gen.Analyze()
	require.NoError(t, err)
	assert.Equal(t, Summary{MetricTotalChars: 40 * 7}, summary)
}

func TestTextGenerator_RegenerateReplacesData(t *testing.T) {
	gen, err := NewTextGenerator(5, 10, newRand(2))
	require.NoError(t, err)

	require.NoError(t, gen.Generate(context.Background()))
	first := append([]string(nil), gen.data...)

	require.NoError(t, gen.Generate(context.Background()))
	assert.Len(t, gen.data, 5)
	assert.NotEqual(t, first, gen.data)
}

func TestNestedGenerator(t *testing.T) {
	gen, err := NewNestedGenerator(3, 2, newRand(3))
	require.NoError(t, err)
	assert.Equal(t, KindNestedDict, gen.Kind())

	require.NoError(t, gen.Generate(context.Background()))
	require.Len(t, gen.data, 3)

	for _, key := range []string{"0", "1", "2"} {
		rec, ok := gen.data[key]
		require.True(t, ok, "missing key %q", key)

		assert.Len(t, rec.Payload, nestedPayloadLength)
		onlyFrom(t, rec.Payload, letters)
		assert.GreaterOrEqual(t, rec.Number, 0)
		assert.LessOrEqual(t, rec.Number, nestedMaxNumber)
		assert.GreaterOrEqual(t, rec.Timestamp, nestedMinTimestamp)
		assert.LessOrEqual(t, rec.Timestamp, nestedMaxTimestamp)

		require.Len(t, rec.Floats, nestedFloatCount)
		for _, f := range rec.Floats {
			assert.True(t, f >= 0 && f < 1, "float %v out of [0,1)", f)
		}

		require.Len(t, rec.Nested, 2)
		assert.Contains(t, rec.Nested, "0")
		assert.Contains(t, rec.Nested, "1")
	}

	summary, err := gen.Analyze()
	require.NoError(t, err)
	assert.Equal(t, Summary{MetricDictSize: 3}, summary)
}

func TestRecordGenerator(t *testing.T) {
	gen, err := NewRecordGenerator(5, 4, newRand(4))
	require.NoError(t, err)
	assert.Equal(t, KindTuples, gen.Kind())

	require.NoError(t, gen.Generate(context.Background()))
	require.Len(t, gen.data, 5)
	for i, rec := range gen.data {
		assert.Equal(t, i, rec.Index)
		assert.True(t, rec.Value >= 0 && rec.Value < 1)
		assert.Len(t, rec.Text, 4)
		onlyFrom(t, rec.Text, letters)
	}

	summary, err := gen.Analyze()
	require.NoError(t, err)
	assert.Equal(t, Summary{MetricTupleCount: 5}, summary)
}

func TestSetGenerator_LongStringsAreUnique(t *testing.T) {
	gen, err := NewSetGenerator(200, 32, newRand(5))
	require.NoError(t, err)
	assert.Equal(t, KindSets, gen.Kind())

	require.NoError(t, gen.Generate(context.Background()))

	summary, err := gen.Analyze()
	require.NoError(t, err)
	assert.Equal(t, 200, summary[MetricUniqueCount])
}

func TestSetGenerator_CollisionsAreKept(t *testing.T) {
	// 52 possible single-letter strings, 500 draws
	gen, err := NewSetGenerator(500, 1, newRand(6))
	require.NoError(t, err)

	require.NoError(t, gen.Generate(context.Background()))

	summary, err := gen.Analyze()
	require.NoError(t, err)
	assert.LessOrEqual(t, summary[MetricUniqueCount], len(letters))
	assert.Less(t, summary[MetricUniqueCount], 500)
	assert.Equal(t, len(gen.data), summary[MetricUniqueCount])
	for s := range gen.data {
		onlyFrom(t, s, letters)
	}
}

func TestSetGenerator_SizeMatchesDistinctCandidates(t *testing.T) {
	// Replay the same source to count distinct candidates independently
	const count, length = 300, 2
	gen, err := NewSetGenerator(count, length, newRand(7))
	require.NoError(t, err)
	require.NoError(t, gen.Generate(context.Background()))

	replay := newRand(7)
	distinct := make(map[string]bool)
	for i := 0; i < count; i++ {
		distinct[randomString(replay, letters, length)] = true
	}

	summary, err := gen.Analyze()
	require.NoError(t, err)
	assert.Equal(t, len(distinct), summary[MetricUniqueCount])
}

func TestGroupedGenerator(t *testing.T) {
	const count = 1000
	gen, err := NewGroupedGenerator(count, newRand(8))
	require.NoError(t, err)
	assert.Equal(t, KindGrouped, gen.Kind())

	require.NoError(t, gen.Generate(context.Background()))

	total, largest := 0, 0
	for key, values := range gen.data {
		assert.True(t, key >= 'A' && key <= 'Z', "key %q outside A-Z", key)
		for _, v := range values {
			assert.True(t, v >= groupMinValue && v <= groupMaxValue, "value %d out of range", v)
		}
		total += len(values)
		largest = max(largest, len(values))
	}
	assert.Equal(t, count, total)

	summary, err := gen.Analyze()
	require.NoError(t, err)
	assert.LessOrEqual(t, summary[MetricGroupedItems], 26)
	assert.Equal(t, len(gen.data), summary[MetricGroupedItems])
	assert.Equal(t, largest, summary[MetricMaxGroupSize])
	assert.Positive(t, summary[MetricMaxGroupSize])
}

func TestGroupedGenerator_ZeroCount(t *testing.T) {
	gen, err := NewGroupedGenerator(0, newRand(9))
	require.NoError(t, err)

	require.NoError(t, gen.Generate(context.Background()))

	summary, err := gen.Analyze()
	require.NoError(t, err)
	assert.Equal(t, Summary{MetricGroupedItems: 0, MetricMaxGroupSize: 0}, summary)
}

func TestAnalyzeBeforeGenerate(t *testing.T) {
	rng := newRand(10)
	text, _ := NewTextGenerator(1, 1, rng)
	nested, _ := NewNestedGenerator(1, 1, rng)
	records, _ := NewRecordGenerator(1, 1, rng)
	set, _ := NewSetGenerator(1, 1, rng)
	grouped, _ := NewGroupedGenerator(0, rng)

	for _, gen := range []Generator{text, nested, records, set, grouped} {
		t.Run(gen.Kind().String(), func(t *testing.T) {
			summary, err := gen.Analyze()
			assert.Nil(t, summary)
			assert.ErrorIs(t, err, ErrNotGenerated)
			assert.ErrorIs(t, err, ErrUsage)
		})
	}
}

func TestAnalyzeDoesNotMutate(t *testing.T) {
	gen, err := NewRecordGenerator(10, 3, newRand(11))
	require.NoError(t, err)
	require.NoError(t, gen.Generate(context.Background()))

	before := append([]Record(nil), gen.data...)
	_, err = gen.Analyze()
	require.NoError(t, err)
	_, err = gen.Analyze()
	require.NoError(t, err)
	assert.Equal(t, before, gen.data)
}

func TestConstructorValidation(t *testing.T) {
	rng := newRand(12)
	tests := []struct {
		name  string
		build func() error
		field string
	}{
		{"text zero count", func() error { _, err := NewTextGenerator(0, 5, rng); return err }, "count"},
		{"text negative length", func() error { _, err := NewTextGenerator(5, -1, rng); return err }, "length"},
		{"nested zero nested_size", func() error { _, err := NewNestedGenerator(1, 0, rng); return err }, "nested_size"},
		{"records zero string_length", func() error { _, err := NewRecordGenerator(1, 0, rng); return err }, "string_length"},
		{"set negative count", func() error { _, err := NewSetGenerator(-3, 4, rng); return err }, "count"},
		{"grouped negative count", func() error { _, err := NewGroupedGenerator(-1, rng); return err }, "count"},
		{"nil source", func() error { _, err := NewTextGenerator(1, 1, nil); return err }, "rng"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfig)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestGenerateHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen, err := NewTextGenerator(10, 3, newRand(13))
	require.NoError(t, err)

	err = gen.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = gen.Analyze()
	assert.ErrorIs(t, err, ErrNotGenerated)
}

func TestSameSeedSameData(t *testing.T) {
	a, _ := NewTextGenerator(20, 8, newRand(42))
	b, _ := NewTextGenerator(20, 8, newRand(42))

	require.NoError(t, a.Generate(context.Background()))
	require.NoError(t, b.Generate(context.Background()))
	assert.Equal(t, a.data, b.data)
}
