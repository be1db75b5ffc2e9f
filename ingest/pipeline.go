// Package ingest wires fetching, content reduction, model extraction and
// storage into the URL ingestion pipeline.
package ingest

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/recipeclip/recipeclip"
)

// recipeHintRe marks reducer output that plausibly contains a recipe.
var recipeHintRe = regexp.MustCompile(`(?i)\b(ingredient|instruction|direction|method|step)s?\b`)

// Ensure Pipeline implements recipeclip.Ingestor at compile time.
var _ recipeclip.Ingestor = (*Pipeline)(nil)

// Pipeline runs the full ingestion flow for a single URL: canonicalize,
// fetch, reduce, extract, normalize, store. Runs for the same canonical URL
// are serialized; runs for distinct URLs proceed concurrently.
type Pipeline struct {
	Fetcher   recipeclip.Fetcher
	Reducers  []recipeclip.Reducer
	Extractor recipeclip.RecipeExtractor
	Recipes   recipeclip.RecipeService

	// Limiter, when set, throttles fetches per domain.
	Limiter recipeclip.DomainLimiter

	locks urlLocks
}

// IngestURL extracts the recipe at rawURL and upserts it under its
// canonical URL. Re-ingesting the same URL replaces the stored record. A
// record that fails normalization is never written.
func (p *Pipeline) IngestURL(ctx context.Context, rawURL string) (*recipeclip.RecipeRecord, error) {
	canonical := recipeclip.CanonicalURL(rawURL)
	if canonical == "" {
		return nil, recipeclip.Errorf(recipeclip.EINVALID, "URL required")
	}

	mu := p.locks.acquire(canonical)
	defer mu.Unlock()

	if p.Limiter != nil {
		if u, err := url.Parse(canonical); err == nil && u.Host != "" {
			if err := p.Limiter.Wait(ctx, u.Host); err != nil {
				return nil, err
			}
		}
	}

	html, err := p.Fetcher.Fetch(ctx, canonical)
	if err != nil {
		return nil, err
	}

	page, err := p.reduce(html)
	if err != nil {
		return nil, err
	}

	rec, err := p.Extractor.Extract(ctx, page, canonical)
	if err != nil {
		return nil, err
	}

	rec.ContentHash = ContentHash(html)
	if err := recipeclip.NormalizeRecipe(rec); err != nil {
		return nil, err
	}

	if err := p.Recipes.UpsertRecipe(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// reduce tries each reducer in order and returns the first output that
// looks like recipe content. When no output passes the check, the first
// successful output is still returned so the extractor gets a chance; only
// when every reducer errors does reduce fail.
func (p *Pipeline) reduce(html string) (*recipeclip.ReducedPage, error) {
	var (
		first   *recipeclip.ReducedPage
		lastErr error
	)
	for _, r := range p.Reducers {
		page, err := r.Reduce(html)
		if err != nil {
			lastErr = err
			continue
		}
		if looksLikeRecipe(page) {
			return page, nil
		}
		if first == nil {
			first = page
		}
	}
	if first != nil {
		return first, nil
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, recipeclip.Errorf(recipeclip.EINTERNAL, "no reducers configured")
}

// looksLikeRecipe reports whether reduced output carries enough signal to
// hand to the extractor.
func looksLikeRecipe(page *recipeclip.ReducedPage) bool {
	if page == nil {
		return false
	}
	text := strings.TrimSpace(page.Text)
	if len(text) < 80 {
		return false
	}
	return recipeHintRe.MatchString(text) || strings.Count(text, "\n- ") >= 3
}

// ContentHash returns the hash of raw page bytes used to detect content
// changes between refreshes.
func ContentHash(html string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(html))
}
