/*
Package highlight annotates spans of text which match regular expressions.

Rules are configured by clients, e.g. “color every occurence of ERROR red”.
Matching is done on the UTF-8 form of a text, and match locations are
converted back to code unit positions of the text buffer.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package highlight

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cclip'
func tracer() tracing.Trace {
	return tracing.Select("cclip")
}
