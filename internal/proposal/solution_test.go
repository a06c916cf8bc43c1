package proposal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSolution(t *testing.T) {
	sol, err := DecodeSolution("city:\n  - Paris\n  - paris\nyear:\n  - 1789\nsingle: 3.50")
	require.NoError(t, err)

	assert.Equal(t, []string{"city", "year", "single"}, sol.Fields())
	assert.Equal(t, []string{"Paris", "paris"}, sol.Variants("city"))
	assert.Equal(t, []string{"1789"}, sol.Variants("year"))
	assert.Equal(t, []string{"3.50"}, sol.Variants("single"))
	assert.Equal(t, "Paris", sol.Display("city"))
	assert.Equal(t, "", sol.Display("unknown"))
	assert.Nil(t, sol.Variants("unknown"))
}

func TestDecodeSolution_FlowList(t *testing.T) {
	sol, err := DecodeSolution("a: [word, Word]\nb: [excel]")
	require.NoError(t, err)
	assert.Equal(t, []string{"word", "Word"}, sol.Variants("a"))
	assert.Equal(t, "excel", sol.Display("b"))
}

func TestDecodeSolution_Malformed(t *testing.T) {
	for name, raw := range map[string]string{
		"empty":          "",
		"blank":          "  \n ",
		"scalar":         "Paris",
		"empty list":     "a: []",
		"null field":     "a:",
		"nested mapping": "a:\n  b: c",
		"nested list":    "a:\n  - [x, y]",
		"syntax":         "a: [x",
	} {
		t.Run(name, func(t *testing.T) {
			sol, err := DecodeSolution(raw)
			assert.Nil(t, sol)

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr), "got %v", err)
			assert.Equal(t, "solution", decodeErr.What)
			assert.Equal(t, raw, decodeErr.Raw)
		})
	}
}

func TestDecodeCorrectness(t *testing.T) {
	for _, raw := range []string{"", "null", AbandonedSentinel, " \n"} {
		m, err := DecodeCorrectness(raw)
		require.NoError(t, err)
		assert.Empty(t, m)
	}

	m, err := DecodeCorrectness("a: true\nb: false")
	require.NoError(t, err)
	assert.Equal(t, CorrectnessMap{"a": true, "b": false}, m)

	m, err = DecodeCorrectness(`{"a": false, "b": true}`)
	require.NoError(t, err)
	assert.Equal(t, CorrectnessMap{"a": false, "b": true}, m)

	_, err = DecodeCorrectness("a: maybe")
	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}
