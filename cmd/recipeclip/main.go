package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/recipeclip/recipeclip"
	"github.com/recipeclip/recipeclip/ai"
	"github.com/recipeclip/recipeclip/gemini"
	"github.com/recipeclip/recipeclip/goquery"
	"github.com/recipeclip/recipeclip/htmltomarkdown"
	rechttp "github.com/recipeclip/recipeclip/http"
	"github.com/recipeclip/recipeclip/ingest"
	"github.com/recipeclip/recipeclip/rod"
	recslog "github.com/recipeclip/recipeclip/slog"
	"github.com/recipeclip/recipeclip/sqlite"
	"github.com/recipeclip/recipeclip/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// RecipeService for end-to-end testing.
	RecipeService recipeclip.RecipeService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Load .env if present; real environment wins.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("recipeclip"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'recipeclip --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set RECIPECLIP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.RecipeService = recslog.NewLoggingRecipeService(sqlite.NewRecipeService(m.DB), logger)
	deps.DB = m.DB
	deps.Recipes = m.RecipeService
	deps.Healther = m.DB

	needsModel := cmd == "serve" || cmd == "extract" || cmd == "ask" || cmd == "refresh"
	needsFetcher := cmd == "serve" || cmd == "extract" || cmd == "refresh"

	if needsModel {
		client, err := newGeminiClient(ctx, stderr)
		if err != nil {
			return err
		}
		completer := gemini.NewCompleter(client)
		deps.Asker = ai.NewAnswerer(completer, deps.Recipes)

		if needsFetcher {
			fetcher, err := newFetcher(cli.Browser, stderr)
			if err != nil {
				return err
			}
			defer fetcher.Close()

			tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
			if err != nil {
				return fmt.Errorf("failed to create token counter: %w", err)
			}

			pipeline := &ingest.Pipeline{
				Fetcher: recslog.NewLoggingFetcher(fetcher, logger),
				Reducers: []recipeclip.Reducer{
					trafilatura.NewReducer(htmltomarkdown.NewConverter()),
					goquery.NewReducer(),
				},
				Extractor: ai.NewExtractor(completer,
					ai.WithTokenCounter(tokenCounter, maxPromptTokens)),
				Recipes: deps.Recipes,
				Limiter: ingest.NewDomainLimiter(cli.RPS),
			}
			deps.Ingestor = recslog.NewLoggingIngestor(pipeline, logger)
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for prompt-size counting; it must be a model the
// local tokenizer supports.
const tokenizerModel = "gemini-2.5-flash"

// maxPromptTokens bounds the extraction prompt sent to the model.
const maxPromptTokens = 30000

func newGeminiClient(ctx context.Context, stderr io.Writer) (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return client, nil
}

func newFetcher(browser bool, stderr io.Writer) (recipeclip.Fetcher, error) {
	if !browser {
		return rechttp.NewFetcher(), nil
	}
	fetcher, err := rod.NewFetcher()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return fetcher, nil
}

func defaultDBPath() string {
	if path := os.Getenv("RECIPECLIP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "recipeclip.db"
	}
	dir := filepath.Join(home, ".recipeclip")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "recipeclip.db")
}
