package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases uppercase letters",
			input: "Apple Pie",
			want:  "apple pie",
		},
		{
			name:  "underscores become spaces",
			input: "apple_pie",
			want:  "apple pie",
		},
		{
			name:  "underscores become spaces before punctuation is stripped",
			input: "Apple_Pie!!",
			want:  "apple pie",
		},
		{
			name:  "strips all ascii punctuation",
			input: `pizza!"#$%&'()*+,-./:;<=>?@[\]^{|}~`,
			want:  "pizza",
		},
		{
			name:  "trims leading and trailing whitespace",
			input: "  pizza  ",
			want:  "pizza",
		},
		{
			name:  "empty string returns empty",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace-only string returns empty",
			input: "   ",
			want:  "",
		},
		{
			name:  "punctuation-only string returns empty",
			input: "?!?",
			want:  "",
		},
		{
			name:  "internal whitespace is not collapsed",
			input: "apple  pie",
			want:  "apple  pie",
		},
		{
			name:  "punctuation removal can leave double spaces",
			input: "apple - pie",
			want:  "apple  pie",
		},
		{
			name:  "tabs and newlines are trimmed",
			input: "\t\n pizza \n\t",
			want:  "pizza",
		},
		{
			name:  "non-ascii letters are kept",
			input: "Crème Brûlée",
			want:  "crème brûlée",
		},
		{
			name:  "already normalized string is unchanged",
			input: "apple pie",
			want:  "apple pie",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Label(tc.input)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Label projects onto its own fixed-point set: normalizing twice must be
// the same as normalizing once.
func TestLabel_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Apple_Pie!!",
		"  PIZZA  ",
		"spaghetti   bolognese",
		"don't   stop",
		"",
		"crème brûlée",
	}
	for _, in := range inputs {
		once := Label(in)
		assert.Equal(t, once, Label(once), "input %q", in)
	}
}

// Labels differing only in case, underscores, punctuation or edge
// whitespace land on the same normalized form.
func TestLabel_EquivalenceClasses(t *testing.T) {
	t.Parallel()

	variants := []string{"Apple_Pie!!", "apple pie", " APPLE PIE ", "apple_pie", "apple pie!?"}
	for _, v := range variants[1:] {
		assert.Equal(t, Label(variants[0]), Label(v), "variant %q", v)
	}

	// Pre-existing internal double spaces are NOT folded into the class.
	assert.NotEqual(t, Label("apple pie"), Label("apple  pie"))
}
