package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"Apple Inc.", "apple-inc"},
		{"IBM", "ibm"},
		{"  Heavy   Industry  ", "heavy-industry"},
		{"Accounting", "accounting"},
		{"R&D / Prototyping", "r-and-d-prototyping"},
		{"already-normalized", "already-normalized"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.label), "label %q", tc.label)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, "apple-inc", Normalize("Apple Inc."))
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("apple-inc"))
	assert.False(t, IsValid("Apple Inc."))
	assert.False(t, IsValid(""))
}
