package main

import (
	"fmt"

	"github.com/recipeclip/recipeclip"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return recipeclip.Errorf(recipeclip.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Recipes.DeleteRecipe(deps.Ctx, c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted recipe %s\n", recipeclip.CanonicalURL(c.URL))
	return nil
}
