package deepentry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {

	var testCases = []struct {
		description string
		parts       []interface{}
		depth       int
		scalar      bool
		text        string
	}{
		{
			description: "scalar key",
			parts:       []interface{}{"pig"},
			depth:       1,
			scalar:      true,
			text:        "[pig]",
		},
		{
			description: "composite key",
			parts:       []interface{}{"pig", 6, "apply"},
			depth:       3,
			text:        "[pig][6][apply]",
		},
	}

	for _, testCase := range testCases {
		key := Keys(testCase.parts...)
		assert.EqualValues(t, testCase.depth, key.Depth(), testCase.description)
		assert.EqualValues(t, testCase.scalar, key.IsScalar(), testCase.description)
		assert.EqualValues(t, testCase.text, key.String(), testCase.description)
		assert.EqualValues(t, testCase.parts[0], key.Value, testCase.description)
	}

	assert.Panics(t, func() { Keys() })
}
