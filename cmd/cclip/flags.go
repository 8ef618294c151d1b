package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds the command line flags. Flags which are set override the
// respective config values.
type cliFlags struct {
	config      string
	codepage    string
	inputFormat string
	formats     []string
	bufferStep  int
	stdout      bool
	description bool
	preview     bool
	verbose     bool
	version     bool
	changed     func(name string) bool
}

// parseFlags parses the command line arguments, without the program name,
// and returns positional args.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("cclip", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	// Input flags
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.StringVarP(&f.codepage, "codepage", "p", "", "input codepage: Windows codepage number or IANA name (default UTF-8)")
	fs.StringVarP(&f.inputFormat, "input-format", "i", "text", "input format: text, html")
	fs.IntVar(&f.bufferStep, "buffer-step", 0, "input buffer step in bytes (0 = default)")

	// Output flags
	fs.StringSliceVarP(&f.formats, "format", "f", []string{"text", "html"}, "clipboard formats: text, html")
	fs.BoolVar(&f.stdout, "stdout", false, "write to stdout instead of the clipboard")
	fs.BoolVar(&f.description, "description", false, "with --stdout, include the HTML clipboard description")
	fs.BoolVar(&f.preview, "preview", false, "preview the formatted text on stderr")

	// Common flags
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "trace processing details")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.changed = fs.Changed
	return f, fs.Args(), nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `Usage: cclip [flags] < input

Copies text from standard input to the clipboard, as plain text and as an
HTML fragment.

Flags:
%s`, fs.FlagUsages())
}
