package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/recipeclip/recipeclip"
	"github.com/recipeclip/recipeclip/htmltomarkdown"
	"github.com/recipeclip/recipeclip/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipePage = `<!DOCTYPE html>
<html>
<head><title>Classic Shakshuka - Example Kitchen</title></head>
<body>
<nav><a href="/">Home</a><a href="/about">About</a></nav>
<article>
<h1>Classic Shakshuka</h1>
<p>A one-pan breakfast of eggs poached in spiced tomato sauce. This version
comes together in about half an hour and feeds four people comfortably.</p>
<h2>Ingredients</h2>
<ul>
<li>2 tablespoons olive oil</li>
<li>1 onion, diced</li>
<li>1 can (28 oz) crushed tomatoes</li>
<li>4 large eggs</li>
</ul>
<h2>Instructions</h2>
<ol>
<li>Heat the oil and soften the onion.</li>
<li>Add tomatoes and simmer 10 minutes.</li>
<li>Crack in the eggs and cook until just set.</li>
</ol>
</article>
<footer>Copyright Example Kitchen. All rights reserved.</footer>
</body>
</html>`

func TestReducer_Reduce(t *testing.T) {
	t.Parallel()

	t.Run("keeps title and ingredient list, drops navigation", func(t *testing.T) {
		t.Parallel()

		r := trafilatura.NewReducer(htmltomarkdown.NewConverter())

		page, err := r.Reduce(recipePage)
		require.NoError(t, err)

		assert.Contains(t, page.Title, "Shakshuka")
		assert.Contains(t, page.Text, "4 large eggs")
		assert.Contains(t, page.Text, "Crack in the eggs")
		assert.NotContains(t, page.Text, "All rights reserved")
	})

	t.Run("respects character budget", func(t *testing.T) {
		t.Parallel()

		r := trafilatura.NewReducer(htmltomarkdown.NewConverter(), trafilatura.WithBudget(200))

		page, err := r.Reduce(recipePage)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(page.Text), 200)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		r := trafilatura.NewReducer(htmltomarkdown.NewConverter())

		_, err := r.Reduce("  ")
		require.Error(t, err)
		assert.Equal(t, recipeclip.EINVALID, recipeclip.ErrorCode(err))
	})

	t.Run("truncates at line boundary", func(t *testing.T) {
		t.Parallel()

		r := trafilatura.NewReducer(htmltomarkdown.NewConverter(), trafilatura.WithBudget(150))

		page, err := r.Reduce(recipePage)
		require.NoError(t, err)
		if page.Text != "" {
			assert.False(t, strings.HasSuffix(page.Text, " "), "should not end mid-line with trailing space")
		}
	})
}
