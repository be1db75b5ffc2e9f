// Package gemini implements model-backed interfaces using Google Gemini.
package gemini

import (
	"context"

	"github.com/recipeclip/recipeclip"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for extraction and question
// answering.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements recipeclip.Completer at compile time.
var _ recipeclip.Completer = (*Completer)(nil)

// Completer implements recipeclip.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// Option configures a Completer.
type Option func(*Completer)

// WithModel overrides the model name. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(c *Completer) {
		c.model = model
	}
}

// NewCompleter creates a new Completer.
func NewCompleter(client *genai.Client, opts ...Option) *Completer {
	c := &Completer{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends the prompt under the given system instruction and returns
// the model's text response.
func (c *Completer) Complete(ctx context.Context, system, prompt string) (string, error) {
	if prompt == "" {
		return "", recipeclip.Errorf(recipeclip.EINVALID, "prompt required")
	}

	config := buildConfig(system)

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", recipeclip.Errorf(recipeclip.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// buildConfig returns the GenerateContentConfig for Gemini API calls. The
// low temperature keeps JSON output stable across retries.
func buildConfig(system string) *genai.GenerateContentConfig {
	temp := float32(0.2)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	return config
}
