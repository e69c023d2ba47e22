package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/fwojciec/brochure"
	"github.com/fwojciec/brochure/crawl"
	"github.com/fwojciec/brochure/gemini"
	"github.com/fwojciec/brochure/goquery"
	"github.com/fwojciec/brochure/htmltomarkdown"
	brochurehttp "github.com/fwojciec/brochure/http"
	"github.com/fwojciec/brochure/readability"
	brochureslog "github.com/fwojciec/brochure/slog"
	"github.com/fwojciec/brochure/sqlite"
	"github.com/fwojciec/brochure/trafilatura"
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

	// Service for end-to-end testing.
	BrochureService brochure.BrochureService
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("brochure"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'brochure --help' to see available commands")
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

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set BROCHURE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.BrochureService = sqlite.NewBrochureService(m.DB)
	deps.DB = m.DB
	deps.Brochures = m.BrochureService

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	// Commands that call the model need a Gemini client and the fetch
	// pipeline.
	if cmd == "build" || cmd == "summarize" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		fetcher := brochureslog.NewLoggingFetcher(
			brochurehttp.NewFetcher(
				brochurehttp.WithLimiter(crawl.NewDomainLimiter(1.0)),
			),
			logger,
		)
		defer fetcher.Close()

		aggregator := &crawl.Aggregator{
			Fetcher:    fetcher,
			Extractor:  newExtractor(cli.Summarize.Extractor),
			Classifier: brochureslog.NewLoggingClassifier(gemini.NewClassifier(client, defaultModel), logger),
			Pacer:      crawl.NewJitterPacer(),
		}
		deps.Aggregator = aggregator

		if cmd == "build" {
			tokenCounter, err := gemini.NewTokenCounter(defaultModel)
			if err != nil {
				return fmt.Errorf("failed to create token counter: %w", err)
			}

			deps.Builder = &crawl.Builder{
				Aggregator:      aggregator,
				Synthesizer:     brochureslog.NewLoggingSynthesizer(gemini.NewSynthesizer(client, defaultModel), logger),
				TokenCounter:    tokenCounter,
				MaxCorpusTokens: cli.Build.MaxTokens,
			}
		}

		if cmd == "summarize" {
			deps.Summarizer = gemini.NewSummarizer(client, defaultModel)
		}
	}

	return kongCtx.Run(deps)
}

const defaultModel = "gemini-2.5-flash"

// newExtractor selects the content extraction strategy. The goquery
// extractor is the default: it is the only one that harvests links,
// which the build pipeline needs for classification.
func newExtractor(name string) brochure.Extractor {
	switch name {
	case "readability":
		return readability.NewExtractor()
	case "trafilatura":
		return trafilatura.NewExtractor(htmltomarkdown.NewConverter())
	default:
		return goquery.NewExtractor()
	}
}

func defaultDBPath() string {
	if path := os.Getenv("BROCHURE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "brochure.db"
	}
	dir := filepath.Join(home, ".brochure")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "brochure.db")
}
