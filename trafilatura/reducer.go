// Package trafilatura provides the primary recipeclip.Reducer built on
// go-trafilatura's boilerplate removal.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/recipeclip/recipeclip"
	"golang.org/x/net/html"
)

// DefaultBudget bounds the reduced text handed to the model.
const DefaultBudget = 16000

// Ensure Reducer implements recipeclip.Reducer at compile time.
var _ recipeclip.Reducer = (*Reducer)(nil)

// Reducer strips boilerplate with trafilatura and serializes the remaining
// content as Markdown. Structure (headings, list items) survives the
// conversion, which is what lets the extractor recover ingredient and step
// sections.
type Reducer struct {
	conv   recipeclip.Converter
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

// NewReducer creates a Reducer that converts extracted content HTML to
// Markdown using conv.
func NewReducer(conv recipeclip.Converter, opts ...Option) *Reducer {
	r := &Reducer{conv: conv, budget: DefaultBudget}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reduce processes raw HTML and returns the bounded main-content excerpt.
func (r *Reducer) Reduce(rawHTML string) (*recipeclip.ReducedPage, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, recipeclip.Errorf(recipeclip.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var text string
	if result.ContentNode != nil {
		contentHTML, err := renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
		text, err = r.conv.Convert(contentHTML)
		if err != nil {
			return nil, err
		}
	}

	return &recipeclip.ReducedPage{
		Title: result.Metadata.Title,
		Text:  truncateAtLine(strings.TrimSpace(text), r.budget),
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// truncateAtLine cuts text to at most budget characters, backing up to the
// previous line break so the model never sees a half line.
func truncateAtLine(text string, budget int) string {
	if budget <= 0 || len(text) <= budget {
		return text
	}
	cut := text[:budget]
	if i := strings.LastIndexByte(cut, '\n'); i > 0 {
		cut = cut[:i]
	}
	return cut
}
