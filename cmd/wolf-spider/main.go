package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	wolfspider "github.com/marc-shade/wolf-spider"
	"github.com/marc-shade/wolf-spider/crawl"
	"github.com/marc-shade/wolf-spider/fs"
	"github.com/marc-shade/wolf-spider/goquery"
	"github.com/marc-shade/wolf-spider/htmltomarkdown"
	spiderhttp "github.com/marc-shade/wolf-spider/http"
	spiderslog "github.com/marc-shade/wolf-spider/slog"
	"github.com/marc-shade/wolf-spider/trafilatura"
)

func main() {
	// Interrupting a crawl leaves already-written artifacts valid;
	// re-running resumes via the on-disk existence checks.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL         string        `arg:"" required:"" help:"Root URL to crawl"`
	Out         string        `short:"o" default:"." help:"Base directory for output (artifacts go under a domain-named subdirectory)"`
	Concurrency int           `short:"c" default:"1" help:"Concurrent fetch limit"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	UserAgent   string        `default:"wolf-spider/1.0" help:"User-Agent header for requests"`
	Readable    bool          `short:"r" help:"Save readable content instead of the full page"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wolf-spider"),
		kong.Description("Crawl a website and save each page as a markdown document"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	site, err := wolfspider.NewSite(cli.URL)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.New().String())

	fetcher := spiderhttp.NewFetcher(
		spiderhttp.WithTimeout(cli.Timeout),
		spiderhttp.WithUserAgent(cli.UserAgent),
	)
	defer fetcher.Close()

	var rendererOpts []fs.Option
	if cli.Readable {
		rendererOpts = append(rendererOpts, fs.WithContentExtractor(trafilatura.NewExtractor()))
	}
	renderer := fs.NewRenderer(cli.Out, site.Namespace(), htmltomarkdown.NewConverter(), rendererOpts...)

	crawler := &crawl.Crawler{
		Fetcher:     spiderslog.NewLoggingFetcher(fetcher, logger),
		Links:       goquery.NewLinkExtractor(),
		Renderer:    spiderslog.NewLoggingRenderer(renderer, logger),
		Logger:      logger,
		Concurrency: cli.Concurrency,
	}

	progress := func(ev crawl.ProgressEvent) {
		status := "ok"
		if ev.Err != nil {
			status = "failed"
		}
		fmt.Fprintf(stdout, "[%d/%d] %s %s\n", ev.Visited, ev.Known, status, crawl.TruncateURL(ev.URL, 72))
	}

	result, err := crawler.Run(ctx, site, progress)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "done: %d visited, %d rendered, %d failed, %s written\n",
		result.Visited, result.Rendered, result.Failed, crawl.FormatBytes(result.Bytes))
	return nil
}
