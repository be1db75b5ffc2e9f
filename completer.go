package recipeclip

import "context"

// Completer is the injected generative model capability shared by the
// extractor and the QA responder. Tests substitute deterministic fakes.
type Completer interface {
	// Complete sends a system instruction and user prompt to the model and
	// returns the raw text response.
	Complete(ctx context.Context, system, prompt string) (string, error)
}
