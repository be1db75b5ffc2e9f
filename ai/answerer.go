package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/recipeclip/recipeclip"
)

const askSystemPrompt = "You are a precise cooking assistant restricted to a single recipe. " +
	"Answer ONLY questions directly related to this recipe's ingredients, steps, times, substitutions, " +
	"serving adjustments, or basic techniques as applied to THIS recipe. " +
	"If the user asks anything unrelated to this recipe, reply exactly: 'I can only answer questions about this recipe.'"

// Ensure Answerer implements recipeclip.Asker at compile time.
var _ recipeclip.Asker = (*Answerer)(nil)

// Answerer answers questions about a single stored recipe. The stored
// record is the only knowledge source offered to the model, so answers stay
// grounded in what was extracted.
type Answerer struct {
	completer recipeclip.Completer
	recipes   recipeclip.RecipeService
}

// NewAnswerer creates a new Answerer.
func NewAnswerer(completer recipeclip.Completer, recipes recipeclip.RecipeService) *Answerer {
	return &Answerer{completer: completer, recipes: recipes}
}

// Ask answers a natural language question about the recipe stored for
// sourceURL. A model failure maps to EMODEL and is not retried.
func (a *Answerer) Ask(ctx context.Context, sourceURL, question string) (string, error) {
	sourceURL = strings.TrimSpace(sourceURL)
	question = strings.TrimSpace(question)
	if sourceURL == "" {
		return "", recipeclip.Errorf(recipeclip.EINVALID, "source URL required")
	}
	if question == "" {
		return "", recipeclip.Errorf(recipeclip.EINVALID, "question required")
	}

	rec, err := a.recipes.FindRecipeBySourceURL(ctx, recipeclip.CanonicalURL(sourceURL))
	if err != nil {
		return "", err
	}

	answer, err := a.completer.Complete(ctx, askSystemPrompt, buildAskPrompt(rec, question))
	if err != nil {
		return "", recipeclip.Errorf(recipeclip.EMODEL, "answer model call failed: %v", err)
	}

	return strings.TrimSpace(answer), nil
}

func buildAskPrompt(rec *recipeclip.RecipeRecord, question string) string {
	var sb strings.Builder
	sb.WriteString("Recipe context (do not invent details beyond this):\n\n")
	sb.WriteString(BuildRecipeContext(rec))
	sb.WriteString("\n\nUser question: ")
	sb.WriteString(question)
	sb.WriteString("\n\nAnswer briefly and helpfully. If insufficient info, say what is missing based on the recipe.")
	return sb.String()
}

// BuildRecipeContext renders a stored record as the plain text context
// block supplied to the model.
func BuildRecipeContext(rec *recipeclip.RecipeRecord) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n", rec.Title)
	fmt.Fprintf(&sb, "Author: %s\n", rec.Author)
	fmt.Fprintf(&sb, "Servings: %s\n", rec.Servings)
	fmt.Fprintf(&sb, "Prep time: %s | Cook time: %s | Total time: %s\n",
		minutesText(rec.PrepTime), minutesText(rec.CookTime), minutesText(rec.TotalTime))

	sb.WriteString("\nIngredients:\n")
	for _, sec := range rec.Ingredients {
		fmt.Fprintf(&sb, "  - %s:\n", sectionName(sec.Name, recipeclip.DefaultIngredientsSection))
		for _, item := range sec.Items {
			fmt.Fprintf(&sb, "      * %s\n", item)
		}
	}

	sb.WriteString("\nSteps:\n")
	for _, sec := range rec.Steps {
		fmt.Fprintf(&sb, "  - %s:\n", sectionName(sec.Name, recipeclip.DefaultStepsSection))
		for i, item := range sec.Items {
			fmt.Fprintf(&sb, "      %d. %s\n", i+1, item)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func minutesText(minutes int) string {
	if minutes <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d min", minutes)
}

func sectionName(name, fallback string) string {
	if strings.TrimSpace(name) == "" {
		return fallback
	}
	return name
}
