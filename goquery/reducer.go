// Package goquery provides a heuristic fallback recipeclip.Reducer for
// pages where structural content extraction comes up empty. It keeps every
// element that resembles an ingredient or step list, so recall is favored
// over precision.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/recipeclip/recipeclip"
)

// DefaultBudget bounds the reduced text handed to the model.
const DefaultBudget = 16000

// chromeSelector matches non-content regions removed before serialization.
const chromeSelector = "script, style, noscript, iframe, svg, form, button, nav, footer, header, aside"

// blockSelector matches the block-level elements serialized in document
// order.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, dt, dd, th, td, figcaption"

// keywordRe marks blocks that anchor recipe content. Blocks matching it are
// never dropped by the budget.
var keywordRe = regexp.MustCompile(`(?i)\b(ingredient|instruction|direction|method|step|prep time|cook time|total time|serving|yield)s?\b`)

var spaceRe = regexp.MustCompile(`\s+`)

// Ensure Reducer implements recipeclip.Reducer at compile time.
var _ recipeclip.Reducer = (*Reducer)(nil)

// Reducer serializes visible block text after stripping page chrome. When
// the result exceeds the budget, list items and keyword-anchored blocks are
// kept and filler prose is dropped, preserving document order throughout.
type Reducer struct {
	budget int
}

// Option configures a Reducer.
type Option func(*Reducer)

// WithBudget sets the character budget for reduced text.
// Defaults to DefaultBudget.
func WithBudget(n int) Option {
	return func(r *Reducer) {
		r.budget = n
	}
}

// NewReducer creates a new heuristic Reducer.
func NewReducer(opts ...Option) *Reducer {
	r := &Reducer{budget: DefaultBudget}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type block struct {
	text      string
	essential bool
}

// Reduce processes raw HTML and returns the bounded visible-text excerpt.
func (r *Reducer) Reduce(rawHTML string) (*recipeclip.ReducedPage, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, recipeclip.Errorf(recipeclip.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	doc.Find(chromeSelector).Remove()

	title := clean(doc.Find("title").First().Text())
	if title == "" {
		title = clean(doc.Find("h1").First().Text())
	}

	var blocks []block
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		// Skip nested blocks: their text is already part of the ancestor.
		if s.ParentsFiltered("li, p, dd, td, figcaption").Length() > 0 {
			return
		}

		text := clean(s.Text())
		if text == "" {
			return
		}

		isListItem := goquery.NodeName(s) == "li"
		if isListItem {
			text = "- " + text
		}

		blocks = append(blocks, block{
			text:      text,
			essential: isListItem || keywordRe.MatchString(text),
		})
	})

	return &recipeclip.ReducedPage{
		Title: title,
		Text:  r.assemble(blocks),
	}, nil
}

// assemble joins blocks in document order within the budget. Essential
// blocks (list items, keyword anchors) are admitted first so truncation
// sheds filler prose, never the ingredient or step lists.
func (r *Reducer) assemble(blocks []block) string {
	keep := make([]bool, len(blocks))
	used := 0

	admit := func(i int) bool {
		cost := len(blocks[i].text) + 1 // newline
		if used+cost > r.budget {
			return false
		}
		keep[i] = true
		used += cost
		return true
	}

	for i := range blocks {
		if blocks[i].essential {
			admit(i)
		}
	}
	for i := range blocks {
		if !keep[i] && !blocks[i].essential {
			admit(i)
		}
	}

	var sb strings.Builder
	for i := range blocks {
		if !keep[i] {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(blocks[i].text)
	}
	return sb.String()
}

// clean collapses runs of whitespace into single spaces.
func clean(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
