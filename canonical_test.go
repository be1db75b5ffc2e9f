package recipeclip_test

import (
	"testing"

	"github.com/recipeclip/recipeclip"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"trailing slash removed", "https://x.com/r/", "https://x.com/r"},
		{"fragment removed", "https://x.com/r#section", "https://x.com/r"},
		{"fragment and slash removed", "https://x.com/r/#comments", "https://x.com/r"},
		{"already canonical", "https://x.com/r", "https://x.com/r"},
		{"root path preserved", "https://x.com/", "https://x.com/"},
		{"query preserved", "https://x.com/r?yield=4", "https://x.com/r?yield=4"},
		{"surrounding whitespace trimmed", "  https://x.com/r \n", "https://x.com/r"},
		{"unparseable input falls back to string transform", "https://x.com/%zz/", "https://x.com/%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, recipeclip.CanonicalURL(tt.raw))
		})
	}
}

func TestCanonicalURL_EquivalentInputsShareIdentity(t *testing.T) {
	t.Parallel()

	a := recipeclip.CanonicalURL("https://x.com/r/")
	b := recipeclip.CanonicalURL("https://x.com/r#section")

	assert.Equal(t, a, b)
	assert.Equal(t, "https://x.com/r", a)
}
