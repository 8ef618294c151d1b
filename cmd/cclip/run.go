package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/npillmayer/cclip/clipboard"
	"github.com/npillmayer/cclip/config"
	"github.com/npillmayer/cclip/highlight"
	"github.com/npillmayer/cclip/replace"
	"github.com/npillmayer/cclip/styled"
	"github.com/npillmayer/cclip/styled/formatter"
	"github.com/npillmayer/cclip/styled/inline"
	"github.com/npillmayer/cclip/textfile"
)

// Sentinel errors of the command.
var (
	ErrUsage      = errors.New("invalid usage")
	ErrReadInput  = errors.New("failed to read input")
	ErrEmptyInput = errors.New("no input")
)

// env holds the streams and the clipboard of a run, replaced in tests.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	sink   func() (clipboard.Sink, error)
}

// runMain runs the command and returns its exit code.
func runMain(args []string, e *env) int {
	f, positional, err := parseFlags(args, e.stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err == nil && len(positional) > 0 {
		err = fmt.Errorf("unexpected arguments: %v", positional)
	}
	if err != nil {
		fmt.Fprintf(e.stderr, "cclip: %v\n", err)
		return exitCodeFor(fmt.Errorf("%w: %v", ErrUsage, err))
	}
	if f.version {
		fmt.Fprintf(e.stdout, "cclip %s\n", Version)
		return ExitSuccess
	}
	setupTracing(e.stderr, f.verbose)
	if err := run(f, e); err != nil {
		fmt.Fprintf(e.stderr, "cclip: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run executes the pipeline: read, decode, highlight, rewrite, serialize and
// store to the clipboard.
func run(f *cliFlags, e *env) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	raw, err := readInput(f, cfg, e)
	if err != nil {
		return err
	}
	text, err := decodeInput(raw, cfg)
	if err != nil {
		return err
	}
	rules, err := cfg.Rules()
	if err != nil {
		return err
	}
	n, err := highlight.Apply(text, rules...)
	if err != nil {
		return err
	}
	tracer().Debugf("highlighted %d spans", n)

	if f.preview {
		console := formatter.NewConsole(formatter.LineWidthFromTerminal(e.stderr), nil)
		if err := console.Fprint(e.stderr, text); err != nil {
			return err
		}
	}

	payloads, err := buildPayloads(text, cfg)
	if err != nil {
		return err
	}
	var sink clipboard.Sink
	if f.stdout {
		w := clipboard.NewWriter(e.stdout)
		w.Description = f.description
		sink = w
	} else if sink, err = e.sink(); err != nil {
		return err
	}
	return sink.Write(payloads...)
}

// loadConfig loads the config file, if given, and applies flag overrides.
func loadConfig(f *cliFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = config.LoadConfig(f.config); err != nil {
			return nil, err
		}
	}
	if f.changed("codepage") {
		cfg.Codepage = f.codepage
	}
	if f.changed("input-format") {
		cfg.InputFormat = f.inputFormat
	}
	if f.changed("format") {
		cfg.Formats = f.formats
	}
	if f.changed("buffer-step") {
		cfg.BufferStep = f.bufferStep
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readInput(f *cliFlags, cfg *config.Config, e *env) ([]byte, error) {
	if file, ok := e.stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		fmt.Fprintln(e.stderr, "cclip: reading from terminal, end input with EOF")
	}
	loader := textfile.NewLoader(cfg.BufferStep)
	var traced chan struct{} // closed after all progress has been traced
	if f.verbose {
		progress := loader.Subscribe(16)
		traced = make(chan struct{})
		go func() {
			defer close(traced)
			for p := range progress {
				tracer().Debugf("progress: %d bytes read, done=%v", p.Bytes, p.Done)
			}
		}()
	}
	raw, err := loader.Read(e.stdin)
	if traced != nil {
		<-traced
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyInput
	}
	return raw, nil
}

// decodeInput converts the input to styled text. HTML input is converted to
// text with annotations from its inline formatting elements.
func decodeInput(raw []byte, cfg *config.Config) (*styled.Text, error) {
	enc, err := textfile.LookupCodepage(cfg.Codepage)
	if err != nil {
		return nil, err
	}
	buf, err := textfile.Decode(raw, enc)
	if err != nil {
		return nil, err
	}
	if cfg.InputFormat == "html" {
		return inline.TextFromHTML(strings.NewReader(buf.String()))
	}
	return styled.TextFromBuffer(buf), nil
}

// buildPayloads creates a payload for every clipboard format of the config.
// The plain text payload carries the text as read, the HTML payload the text
// rewritten by the replacement patterns.
func buildPayloads(text *styled.Text, cfg *config.Config) ([]clipboard.Payload, error) {
	var payloads []clipboard.Payload
	if cfg.HasFormat(clipboard.UnicodeText.String()) {
		payloads = append(payloads, clipboard.TextPayload(text.Raw()))
	}
	if cfg.HasFormat(clipboard.HTML.String()) {
		patterns, err := cfg.PatternList()
		if err != nil {
			return nil, err
		}
		rewritten, err := replace.RewriteText(text, patterns)
		if err != nil {
			return nil, err
		}
		fragment, err := formatter.SerializeText(rewritten)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("HTML fragment of %d bytes", fragment.Len())
		payloads = append(payloads, clipboard.HTMLPayload(fragment))
	}
	return payloads, nil
}
