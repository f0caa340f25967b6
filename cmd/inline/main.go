package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
	"pkt.systems/inline"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
	defaultFormat    = "table"
)

func init() {
	version.SetDefaultModule("pkt.systems/inline")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	format     string
	themeName  string
	listThemes bool
	colorMode  string
	width      int
	line       int
	column     int
	outPath    string
	logFile    string
	verbose    bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("inline", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.format, "format", "f", defaultFormat, "Output format: table|source|json|yaml")
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.StringVar(&opts.colorMode, "color", "auto", "ANSI colors: auto|on|off")
	flags.IntVarP(&opts.width, "width", "w", 0, "Table width (0 uses terminal width if available)")
	flags.IntVar(&opts.line, "line", 0, "Line of the first grapheme (zero-based)")
	flags.IntVar(&opts.column, "column", 0, "Column of the first grapheme (zero-based)")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVar(&opts.logFile, "log-file", "", "Also write JSON logs to this file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug details to stderr")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: inline [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, text is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.listThemes {
		for _, name := range inline.AvailableThemes() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	logger, closeLog, err := newLogger(stderr, opts.verbose, opts.logFile)
	if err != nil {
		fmt.Fprintf(stderr, "open log file: %v\n", err)
		return 1
	}
	if closeLog != nil {
		defer func() { _ = closeLog.Close() }()
	}

	theme, ok := inline.ThemeByName(opts.themeName)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n\n", opts.themeName)
		flags.Usage()
		return 2
	}

	format := strings.ToLower(strings.TrimSpace(opts.format))
	switch format {
	case "table", "source", "json", "yaml":
	default:
		fmt.Fprintf(stderr, "invalid --format %q: expected table|source|json|yaml\n", opts.format)
		return 2
	}

	reader, closer, err := openInputs(flags.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return 1
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	src, err := io.ReadAll(reader)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}
	logger.Debug("input read", "bytes", len(src), "inputs", len(flags.Args()))

	start := inline.Position{Line: opts.line, Column: opts.column}
	tokens, err := inline.TokenizeBytes(src, start)
	if err != nil {
		logger.Debug("tokenize failed", "err", err)
		fmt.Fprintf(stderr, "tokenize: %v\n", err)
		return 1
	}
	logger.Debug("tokenized", "tokens", len(tokens), "line", start.Line, "column", start.Column)

	writer, closeOut, err := resolveOutput(opts.outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	color, err := resolveColor(opts.colorMode, writer)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --color %q: %v\n", opts.colorMode, err)
		return 2
	}

	if err := writeTokens(writer, format, tokens, theme, color, resolveWidth(opts.width, writer)); err != nil {
		fmt.Fprintf(stderr, "write: %v\n", err)
		return 1
	}
	return 0
}

func writeTokens(w io.Writer, format string, tokens inline.Tokens, theme inline.Theme, color bool, width int) error {
	switch format {
	case "source":
		return inline.RenderSource(w, tokens, inline.WithTheme(theme), inline.WithColor(color))
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tokens)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tokens); err != nil {
			return err
		}
		return enc.Close()
	default:
		return inline.RenderTable(w, tokens, inline.WithTheme(theme), inline.WithColor(color), inline.WithWidth(width))
	}
}

func newLogger(stderr io.Writer, verbose bool, logFile string) (*slog.Logger, io.Closer, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	}
	var closer io.Closer
	if strings.TrimSpace(logFile) != "" {
		f, err := os.OpenFile(filepath.Clean(logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closer = f
	}
	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// resolveWidth returns the table width: the flag if set, otherwise the
// terminal behind w, otherwise no limit.
func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
		return cols
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return defaultWidth
}

func resolveColor(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return isTerminal(w) && inline.DetectColorSupport(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

// openInputs opens every argument in order and reads them as one stream.
// "-" is stdin; http(s) and file URLs are accepted next to plain paths.
func openInputs(args []string, stdin io.Reader) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return stdin, nil, nil
	}
	readers := make([]io.Reader, 0, len(args))
	var closers closeAll
	for _, arg := range args {
		r, c, err := openInput(strings.TrimSpace(arg), stdin)
		if err != nil {
			_ = closers.Close()
			return nil, nil, fmt.Errorf("%s: %w", arg, err)
		}
		readers = append(readers, r)
		if c != nil {
			closers = append(closers, c)
		}
	}
	return io.MultiReader(readers...), closers, nil
}

func openInput(arg string, stdin io.Reader) (io.Reader, io.Closer, error) {
	switch arg {
	case "":
		return nil, nil, errors.New("empty input argument")
	case "-":
		return stdin, nil, nil
	}
	if u, err := url.Parse(arg); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return fetch(arg)
		case "file":
			arg = u.Path
		}
	}
	f, err := os.Open(filepath.Clean(arg))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func fetch(rawURL string) (io.Reader, io.Closer, error) {
	resp, err := http.Get(rawURL)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, resp.Body, nil
}

type closeAll []io.Closer

func (cs closeAll) Close() error {
	var errs []error
	for _, c := range cs {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
