package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/chatexport"
	"github.com/fwojciec/chatexport/export"
	"github.com/fwojciec/chatexport/fs"
	"github.com/fwojciec/chatexport/gjson"
	"github.com/fwojciec/chatexport/goquery"
	"github.com/fwojciec/chatexport/i18n"
	chatslog "github.com/fwojciec/chatexport/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !ErrorReported(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Help text is rendered before flags are parsed, so its language is
	// picked from the raw arguments and the environment.
	help := helpCatalog(args, os.Getenv(langEnv))

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("chatexport"),
		kong.Description(help.Sprintf(chatexport.MsgCLIDescription)),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		helpVars(help),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no input files provided")
	}

	// Handle help flags
	if (len(args) == 1 && args[0] == "help") || helpRequested(args) {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.Output != "" && len(cli.Files) > 1 {
		return fmt.Errorf("--output can only be used with a single input file")
	}

	catalog, err := i18n.NewCatalog(cli.Lang)
	if err != nil {
		return err
	}

	// Diagnostics go to stdout through the catalog; structured logs go to
	// stderr only when asked for.
	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Wire dependencies
	exporter := &export.Exporter{
		Loader:    chatslog.NewLoggingLoader(fs.NewLoader(), logger),
		Extractor: chatslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
		Writer:    chatslog.NewLoggingHistoryWriter(fs.NewHistoryWriter(), logger),
		Catalog:   catalog,
	}
	if !cli.NoVerify {
		exporter.Verifier = gjson.NewVerifier()
	}

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		Catalog:  catalog,
		Exporter: exporter,
	}

	cmd := &ExportCmd{
		Files:       cli.Files,
		Output:      cli.Output,
		Concurrency: cli.Concurrency,
	}

	return cmd.Run(deps)
}

// langEnv names the environment variable that selects the message language.
const langEnv = "CHATEXPORT_LANG"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output      string   `short:"o" help:"${output_help}"`
	Lang        string   `short:"l" enum:"${langs}" default:"en" env:"CHATEXPORT_LANG" help:"${lang_help}"`
	Concurrency int      `short:"c" default:"4" help:"${concurrency_help}"`
	NoVerify    bool     `name:"no-verify" help:"${no_verify_help}"`
	Verbose     bool     `short:"v" env:"CHATEXPORT_VERBOSE" help:"${verbose_help}"`
	Files       []string `arg:"" name:"html-file" help:"${html_file_help}"`
}

// helpVars exposes the localized help texts and the supported languages
// to the CLI struct tags.
func helpVars(c chatexport.Catalog) kong.Vars {
	return kong.Vars{
		"langs":            strings.Join(i18n.Languages(), ","),
		"output_help":      c.Sprintf(chatexport.MsgCLIOutputHelp),
		"lang_help":        c.Sprintf(chatexport.MsgCLILanguageHelp),
		"concurrency_help": c.Sprintf(chatexport.MsgCLIConcurrencyHelp),
		"no_verify_help":   c.Sprintf(chatexport.MsgCLINoVerifyHelp),
		"verbose_help":     c.Sprintf(chatexport.MsgCLIVerboseHelp),
		"html_file_help":   c.Sprintf(chatexport.MsgCLIHTMLFileHelp),
	}
}

// helpCatalog returns the catalog for the language requested by args or,
// failing that, by env. Unsupported languages fall back to the default;
// the parser reports them once flags are parsed.
func helpCatalog(args []string, env string) *i18n.Catalog {
	lang := env
	if l, ok := langArg(args); ok {
		lang = l
	}
	c, err := i18n.NewCatalog(lang)
	if err != nil {
		c, _ = i18n.NewCatalog(i18n.DefaultLanguage)
	}
	return c
}

// helpRequested reports whether args ask for help before any "--".
func helpRequested(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "-h", "--help":
			return true
		}
	}
	return false
}

// langArg finds the value of the -l/--lang flag in args.
func langArg(args []string) (string, bool) {
	for i, arg := range args {
		switch {
		case arg == "--":
			return "", false
		case arg == "-l" || arg == "--lang":
			if i+1 < len(args) {
				return args[i+1], true
			}
			return "", false
		case strings.HasPrefix(arg, "--lang="):
			return strings.TrimPrefix(arg, "--lang="), true
		case strings.HasPrefix(arg, "-l") && !strings.HasPrefix(arg, "--"):
			return strings.TrimPrefix(strings.TrimPrefix(arg, "-l"), "="), true
		}
	}
	return "", false
}
