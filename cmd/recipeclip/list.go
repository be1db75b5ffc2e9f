package main

import (
	"fmt"

	"github.com/recipeclip/recipeclip"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	recs, err := deps.Recipes.FindRecipes(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No recipes stored. Use 'recipeclip extract' to add one.")
		return nil
	}

	for _, rec := range recs {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", rec.SourceURL, rec.Title)
	}

	return nil
}
