// Command cclip copies text from standard input to the clipboard, both as
// plain text and as an HTML fragment with highlighting.
//
// Usage:
//
//	some-command | cclip [flags]
//
// With --stdout, the clipboard content is written to standard output instead.
package main

import (
	"io"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/cclip/clipboard"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args[1:], &env{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		sink: func() (clipboard.Sink, error) {
			return clipboard.NewSystem()
		},
	}))
}

// setupTracing installs a tracer writing to w, for the core and for all
// packages of the module.
func setupTracing(w io.Writer, verbose bool) {
	level := tracing.LevelError
	if verbose {
		level = tracing.LevelDebug
	}
	core := gologadapter.New()
	core.SetOutput(w)
	core.SetTraceLevel(level)
	gtrace.CoreTracer = core
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return core
	}))
}

func tracer() tracing.Trace {
	return tracing.Select("cclip")
}
