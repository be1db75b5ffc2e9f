package main

import (
	"fmt"

	"github.com/recipeclip/recipeclip"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Asker.Ask(deps.Ctx, c.URL, c.Question)
	if err != nil {
		if recipeclip.ErrorCode(err) == recipeclip.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no recipe stored for %q. Use 'recipeclip extract' first.\n", c.URL)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
