package main

import (
	"encoding/json"
	"fmt"

	"github.com/recipeclip/recipeclip"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	rec, err := deps.Ingestor.IngestURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	fmt.Fprintf(deps.Stdout, "Saved %q from %s\n", rec.Title, rec.SourceURL)
	if rec.TotalTime > 0 {
		fmt.Fprintf(deps.Stdout, "  total time: %d min\n", rec.TotalTime)
	}
	fmt.Fprintf(deps.Stdout, "  ingredients: %d  steps: %d\n",
		len(recipeclip.FlattenSections(rec.Ingredients)),
		len(recipeclip.FlattenSections(rec.Steps)))

	return nil
}
