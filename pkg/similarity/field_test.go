package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rosterkit/rosterkit/pkg/similarity"
)

func TestEditDistanceProperties(t *testing.T) {
	pairs := [][2]string{
		{"", ""},
		{"a", ""},
		{"kitten", "sitting"},
		{"john doe", "doe john"},
		{"müller", "mueller"},
		{"engineer", "enginer"},
	}

	for _, p := range pairs {
		a, b := p[0], p[1]
		assert.Equal(t, 0, similarity.EditDistance(a, a), "distance(%q,%q)", a, a)
		assert.Equal(t, 0, similarity.EditDistance(b, b))
		assert.Equal(t,
			similarity.EditDistance(a, b),
			similarity.EditDistance(b, a),
			"symmetry for %q/%q", a, b)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"John Doe", "john doe"},
		{"  Doe,   John ", "doe john"},
		{"O'Brien-Smith", "o brien smith"},
		{"JOSÉ", "josé"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, similarity.Normalize(tt.in), "input %q", tt.in)
	}
}

func TestNameSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		min  float64
		max  float64
	}{
		{"identical", "John Doe", "John Doe", 1.0, 1.0},
		{"normalized identical", "john doe", "John   Doe.", 1.0, 1.0},
		{"token reorder", "John Doe", "Doe, John", 0.9, 1.0},
		{"minor typo per token", "John Doe", "Jon Doe", 0.9, 1.0},
		{"middle name", "John Smith", "John Albert Smith", 0.9, 1.0},
		{"unrelated", "John Doe", "Mary Major", 0.0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := similarity.Name(tt.a, tt.b)
			assert.GreaterOrEqual(t, got, tt.min)
			assert.LessOrEqual(t, got, tt.max)
			assert.Equal(t, got, similarity.Name(tt.b, tt.a), "name similarity must be symmetric")
		})
	}
}

func TestTextSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity.Text("Engineer", "engineer"))
	assert.Greater(t, similarity.Text("Engineer", "Enginer"), 0.8)
	assert.Less(t, similarity.Text("Engineer", "Accountant"), 0.5)
}

func TestCategorical(t *testing.T) {
	assert.Equal(t, 1.0, similarity.Categorical("US", "us"))
	assert.Equal(t, 0.0, similarity.Categorical("US", "DE"))
}

func TestNumericProximitySteps(t *testing.T) {
	tests := []struct {
		a, b float64
		want float64
	}{
		{100000, 100000, 1.0},
		{100000, 102000, 0.9}, // ~2% apart
		{100000, 110000, 0.9}, // just under 10% of the mean
		{100000, 118000, 0.7},
		{100000, 150000, 0.5},
		{100000, 300000, 0.2},
		{0, 0, 1.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, similarity.Numeric(tt.a, tt.b), "%v vs %v", tt.a, tt.b)
		assert.Equal(t, tt.want, similarity.Numeric(tt.b, tt.a))
	}
}
