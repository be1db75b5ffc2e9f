package main

import (
	"context"
	"io"

	"github.com/recipeclip/recipeclip"
	"github.com/recipeclip/recipeclip/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Recipes  recipeclip.RecipeService
	Ingestor recipeclip.Ingestor
	Asker    recipeclip.Asker
	Healther recipeclip.HealthService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve   ServeCmd   `cmd:"" help:"Run the HTTP API server"`
	Extract ExtractCmd `cmd:"" help:"Extract the recipe at a URL and store it"`
	List    ListCmd    `cmd:"" help:"List stored recipes"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored recipe"`
	Ask     AskCmd     `cmd:"" help:"Ask a question about a stored recipe"`
	Refresh RefreshCmd `cmd:"" help:"Re-extract all stored recipes from their source URLs"`

	Browser bool    `help:"Fetch pages with a headless browser instead of plain HTTP"`
	RPS     float64 `name:"rps" default:"1" help:"Max fetches per second per domain"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL  string `arg:"" help:"Recipe page URL"`
	JSON bool   `help:"Print the stored record as JSON"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	URL   string `arg:"" help:"Recipe source URL"`
	Force bool   `help:"Confirm deletion"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	URL      string `arg:"" help:"Recipe source URL"`
	Question string `arg:"" help:"Question to ask about the recipe"`
}

// RefreshCmd is the "refresh" subcommand.
type RefreshCmd struct {
	Concurrency int `short:"c" default:"4" help:"Concurrent refresh limit"`
}
