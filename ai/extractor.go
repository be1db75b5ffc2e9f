// Package ai implements recipe extraction and grounded question answering
// on top of the recipeclip.Completer interface. It owns the prompts and the
// boundary where loosely typed model output becomes a strict RecipeRecord.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/recipeclip/recipeclip"
)

const extractSystemPrompt = "You are a precise recipe extractor. You read web page text and return recipe data as strict JSON only, with no prose and no code fences."

// Ensure Extractor implements recipeclip.RecipeExtractor at compile time.
var _ recipeclip.RecipeExtractor = (*Extractor)(nil)

// Extractor turns reduced page text into a RecipeRecord via a generative
// model. Model output is parsed strictly; a single repair re-prompt handles
// the common failure mode of commentary or fences around the JSON.
type Extractor struct {
	completer recipeclip.Completer
	tokens    recipeclip.TokenCounter
	maxTokens int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTokenCounter enables a prompt-size guard: extraction prompts counted
// above max tokens are rejected with ETOOLARGE instead of being sent.
func WithTokenCounter(tc recipeclip.TokenCounter, max int) Option {
	return func(e *Extractor) {
		e.tokens = tc
		e.maxTokens = max
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(completer recipeclip.Completer, opts ...Option) *Extractor {
	e := &Extractor{completer: completer}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract asks the model to structure the reduced page text as a recipe.
// A model transport failure maps to EMODEL. Output that cannot be parsed
// after one repair attempt maps to EMALFORMED.
func (e *Extractor) Extract(ctx context.Context, page *recipeclip.ReducedPage, sourceURL string) (*recipeclip.RecipeRecord, error) {
	if page == nil || strings.TrimSpace(page.Text) == "" {
		return nil, recipeclip.Errorf(recipeclip.EINVALID, "reduced page text required")
	}

	prompt := buildExtractPrompt(page)
	if e.tokens != nil {
		// Counting failures are not fatal; the model call itself will
		// report oversized input.
		if n, err := e.tokens.CountTokens(ctx, prompt); err == nil && n > e.maxTokens {
			return nil, recipeclip.Errorf(recipeclip.ETOOLARGE, "reduced page needs %d tokens, limit is %d", n, e.maxTokens)
		}
	}

	raw, err := e.completer.Complete(ctx, extractSystemPrompt, prompt)
	if err != nil {
		return nil, recipeclip.Errorf(recipeclip.EMODEL, "extraction model call failed: %v", err)
	}

	candidate, parseErr := decodeCandidate(raw)
	if parseErr != nil {
		raw, err = e.completer.Complete(ctx, extractSystemPrompt, buildRepairPrompt(raw, parseErr))
		if err != nil {
			return nil, recipeclip.Errorf(recipeclip.EMODEL, "repair model call failed: %v", err)
		}
		candidate, parseErr = decodeCandidate(raw)
		if parseErr != nil {
			return nil, recipeclip.Errorf(recipeclip.EMALFORMED, "model output is not a valid recipe object: %v", parseErr)
		}
	}

	return candidate.record(sourceURL), nil
}

func buildExtractPrompt(page *recipeclip.ReducedPage) string {
	var sb strings.Builder
	sb.WriteString("Extract the recipe from the following page text.\n\n")
	sb.WriteString("Return a single JSON object with exactly these keys:\n")
	sb.WriteString(`{"title": string, "author": string, "servings": string, "prep_time": minutes, "cook_time": minutes, "total_time": minutes, "image_url": string, "ingredients": [{"section": string, "items": [string]}], "steps": [{"section": string, "items": [string]}]}`)
	sb.WriteString("\n\n")
	sb.WriteString("Group ingredients and steps into named sections when the page has explicit groupings (for example \"For the sauce\"). ")
	sb.WriteString("When the page has no groupings, use a single element with an empty section name. ")
	sb.WriteString("Use 0 for unknown times and empty strings for unknown text fields. Return JSON only.\n\n")
	if page.Title != "" {
		fmt.Fprintf(&sb, "Page title: %s\n\n", page.Title)
	}
	sb.WriteString("Page text:\n")
	sb.WriteString(page.Text)
	return sb.String()
}

func buildRepairPrompt(invalid string, parseErr error) string {
	var sb strings.Builder
	sb.WriteString("Your previous output could not be parsed as a recipe JSON object.\n\n")
	fmt.Fprintf(&sb, "Parse error: %v\n\n", parseErr)
	sb.WriteString("Previous output:\n")
	sb.WriteString(invalid)
	sb.WriteString("\n\nReturn the corrected JSON object only, with keys title, author, servings, prep_time, cook_time, total_time, image_url, ingredients and steps, where ingredients and steps are arrays of {\"section\": string, \"items\": [string]} objects. No prose, no code fences.")
	return sb.String()
}

// recipeCandidate mirrors the schema requested from the model. Time fields
// decode as any because models return both numbers and prose strings.
type recipeCandidate struct {
	Title       string             `json:"title"`
	Author      string             `json:"author"`
	Servings    any                `json:"servings"`
	PrepTime    any                `json:"prep_time"`
	CookTime    any                `json:"cook_time"`
	TotalTime   any                `json:"total_time"`
	ImageURL    string             `json:"image_url"`
	Ingredients []sectionCandidate `json:"ingredients"`
	Steps       []sectionCandidate `json:"steps"`
}

type sectionCandidate struct {
	Section string   `json:"section"`
	Items   []string `json:"items"`
}

func (c *recipeCandidate) record(sourceURL string) *recipeclip.RecipeRecord {
	return &recipeclip.RecipeRecord{
		SourceURL:   sourceURL,
		Title:       c.Title,
		Author:      c.Author,
		Servings:    coerceString(c.Servings),
		PrepTime:    coerceMinutes(c.PrepTime),
		CookTime:    coerceMinutes(c.CookTime),
		TotalTime:   coerceMinutes(c.TotalTime),
		ImageURL:    c.ImageURL,
		Ingredients: toSections(c.Ingredients),
		Steps:       toSections(c.Steps),
	}
}

// decodeCandidate locates the JSON object inside raw model output and
// decodes it, verifying the minimal shape: title, ingredients and steps
// keys present and section lists well formed.
func decodeCandidate(raw string) (*recipeCandidate, error) {
	payload, err := extractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &probe); err != nil {
		return nil, err
	}
	for _, key := range []string{"title", "ingredients", "steps"} {
		if _, ok := probe[key]; !ok {
			return nil, fmt.Errorf("missing required key %q", key)
		}
	}

	var candidate recipeCandidate
	if err := json.Unmarshal([]byte(payload), &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// extractJSONObject returns the outermost {...} span of raw, tolerating
// code fences and surrounding commentary.
func extractJSONObject(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if fenced, ok := stripCodeFence(s); ok {
		s = fenced
	}
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object found in model output")
	}
	return s[start : end+1], nil
}

func stripCodeFence(s string) (string, bool) {
	if !strings.HasPrefix(s, "```") {
		return "", false
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s), true
}

func toSections(in []sectionCandidate) []recipeclip.Section {
	out := make([]recipeclip.Section, 0, len(in))
	for _, sec := range in {
		out = append(out, recipeclip.Section{Name: sec.Section, Items: sec.Items})
	}
	return out
}

// coerceMinutes accepts the number and prose forms models produce for time
// fields and returns whole minutes.
func coerceMinutes(v any) int {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		if t < 0 {
			return 0
		}
		return int(t)
	case string:
		return recipeclip.ParseMinutes(t)
	default:
		return 0
	}
}

func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strings.TrimSuffix(fmt.Sprintf("%.1f", t), ".0")
	default:
		return fmt.Sprintf("%v", t)
	}
}
