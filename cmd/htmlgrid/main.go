package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/jswierad/htmlgrid"
	"github.com/jswierad/htmlgrid/build"
	"github.com/jswierad/htmlgrid/convert"
	"github.com/jswierad/htmlgrid/excelize"
	"github.com/jswierad/htmlgrid/extract"
	"github.com/jswierad/htmlgrid/fs"
	"github.com/jswierad/htmlgrid/goquery"
	"github.com/jswierad/htmlgrid/html"
	hgslog "github.com/jswierad/htmlgrid/slog"
	"github.com/jswierad/htmlgrid/sqlite"
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

	// Conversion history service, for end-to-end testing.
	Conversions htmlgrid.ConversionService
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
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("htmlgrid"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'htmlgrid --help' to see available commands")
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

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set HTMLGRID_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.Conversions = sqlite.NewConversionService(m.DB)
	deps.DB = m.DB
	deps.Conversions = m.Conversions

	// Wire command-specific dependencies based on command
	if cmd == "convert" {
		if cli.Convert.Preview {
			deps.Inspector = goquery.NewInspector()
		} else {
			var writer htmlgrid.SpreadsheetWriter = excelize.NewWriter()
			reports := m.Conversions
			if cli.Convert.Verbose {
				writer = hgslog.NewLoggingWriter(writer, logger)
				reports = hgslog.NewLoggingConversionService(reports, logger)
			}

			deps.Converter = &convert.Converter{
				Parser:  html.NewParser(),
				Tables:  extract.NewTableExtractor(),
				Content: extract.NewContentExtractor(),
				Builder: build.NewBuilder(),
				Writer:  writer,
				OutputPath: func(input string) string {
					return fs.OutputPath(input, cli.Convert.Out)
				},
				Reports:     reports,
				Concurrency: cli.Convert.Concurrency,
			}
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("HTMLGRID_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "htmlgrid.db"
	}
	dir := filepath.Join(home, ".htmlgrid")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "htmlgrid.db")
}
