package main

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/recipeclip/recipeclip"
	"golang.org/x/sync/errgroup"
)

// Run executes the refresh command. Records stored under synthetic keys
// have no URL to refetch and are skipped.
func (c *RefreshCmd) Run(deps *Dependencies) error {
	recs, err := deps.Recipes.FindRecipes(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		return err
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)

	var refreshed, failed atomic.Int32
	for _, rec := range recs {
		if strings.HasPrefix(rec.SourceURL, "generated:") {
			continue
		}
		g.Go(func() error {
			if _, err := deps.Ingestor.IngestURL(ctx, rec.SourceURL); err != nil {
				failed.Add(1)
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", rec.SourceURL, recipeclip.ErrorMessage(err))
				return nil
			}
			refreshed.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	fmt.Fprintf(deps.Stdout, "Refreshed %d recipes (%d failed)\n", refreshed.Load(), failed.Load())
	return nil
}
