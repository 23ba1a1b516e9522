package fuzzywuzzy

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGenerator(t *testing.T, body string, start, end int64) *Generator {
	template, err := ParseTemplate(body)
	require.NoError(t, err)
	return &Generator{
		Template:        template,
		Range:           IntegerRange{Start: start, End: end},
		DropFixedParams: true,
	}
}

func payloadStrings(payloads []Payload) []string {
	values := []string{}
	for _, payload := range payloads {
		values = append(values, payload.String())
	}
	return values
}

func TestGeneratorProducesRangeInOrder(t *testing.T) {
	generator := testGenerator(t, "id=FUZZYWUZZY", 0, 3)

	assert.Equal(t, []string{"id=0", "id=1", "id=2", "id=3"}, payloadStrings(generator.Payloads()))
	assert.EqualValues(t, 4, generator.Count())
}

func TestGeneratorSingleValueRange(t *testing.T) {
	generator := testGenerator(t, "id=FUZZYWUZZY", 5, 5)

	assert.Equal(t, []string{"id=5"}, payloadStrings(generator.Payloads()))
}

func TestGeneratorReversedRangeIsEmpty(t *testing.T) {
	generator := testGenerator(t, "id=FUZZYWUZZY", 5, 4)

	assert.Empty(t, generator.Payloads())
	assert.EqualValues(t, 0, generator.Count())
}

func TestGeneratorNegativeRange(t *testing.T) {
	generator := testGenerator(t, "id=FUZZYWUZZY", -2, 1)

	assert.Equal(t, []string{"id=-2", "id=-1", "id=0", "id=1"}, payloadStrings(generator.Payloads()))
}

func TestGeneratorStreamRestarts(t *testing.T) {
	generator := testGenerator(t, "id=FUZZYWUZZY", 1, 3)

	first := payloadStrings(generator.Payloads())
	second := payloadStrings(generator.Payloads())
	assert.Equal(t, first, second)
}

func TestGeneratorStreamStopsAtInt64Limit(t *testing.T) {
	generator := testGenerator(t, "id=FUZZYWUZZY", math.MaxInt64-1, math.MaxInt64)

	assert.Equal(t, []string{"id=9223372036854775806", "id=9223372036854775807"}, payloadStrings(generator.Payloads()))
}

func TestGeneratorStreamStopsWhenCanceled(t *testing.T) {
	generator := testGenerator(t, "id=FUZZYWUZZY", 0, math.MaxInt64)
	ctx, cancel := context.WithCancel(context.Background())

	received := 0
	for range generator.Stream(ctx) {
		received++
		if received == 10 {
			cancel()
		}

		// Prevent it from running forever if cancellation doesn't work.
		if received > 1000 {
			t.Fatalf("Stream kept sending after cancel, got %d payloads", received)
		}
	}
	cancel()
}

func TestGeneratorKeepsFixedParams(t *testing.T) {
	generator := testGenerator(t, "id=FUZZYWUZZY&someOtherParm=0", 0, 1)
	generator.DropFixedParams = false

	payloads := generator.Payloads()
	require.Len(t, payloads, 2)
	assert.Equal(t, "id=0&someOtherParm=0", payloads[0].Body)
	assert.Equal(t, "id=1&someOtherParm=0", payloads[1].Body)
}

func TestIntegerRangeCount(t *testing.T) {
	ranges := map[IntegerRange]int64{
		{Start: 0, End: 100000}:                    100001,
		{Start: 3, End: 2}:                         0,
		{Start: -5, End: 5}:                        11,
		{Start: math.MinInt64, End: math.MaxInt64}: math.MaxInt64,
	}
	for r, expected := range ranges {
		assert.Equal(t, expected, r.Count(), r.String())
	}
}

func TestParseDataType(t *testing.T) {
	for _, name := range []string{"Integer", "integer", "INTEGER"} {
		dataType, err := ParseDataType(name)
		assert.NoError(t, err)
		assert.Equal(t, DataTypeInteger, dataType)
	}

	for _, name := range []string{"", "String", "int"} {
		_, err := ParseDataType(name)
		assert.ErrorIs(t, err, ErrUnsupportedDataType)
	}
}
