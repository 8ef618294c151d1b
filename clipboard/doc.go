/*
Package clipboard transfers text to the system clipboard.

Text is transferred in one or more formats at once: as plain Unicode text and
as an HTML fragment, created by package styled/formatter. Clients select the
formats by handing a payload per format to a Sink.

On Windows, the clipboard is accessed through the Win32 API. Plain text is
stored as CF_UNICODETEXT, the HTML fragment as registered format “HTML Format”.
All payloads are stored within a single opening of the clipboard.

On other systems, a clipboard tool is run (wl-copy, xclip or pbcopy). These tools
accept a single payload per invocation; the HTML document is preferred for
tools which support MIME types.
*/
package clipboard

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cclip'.
func tracer() tracing.Trace {
	return tracing.Select("cclip")
}
