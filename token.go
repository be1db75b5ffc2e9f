package recipeclip

import "context"

// TokenCounter counts tokens in text for a specific model. Used to keep
// extraction prompts within the model's context budget.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
