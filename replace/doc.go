/*
Package replace performs ordered multi-pattern search-and-replace on annotated text.

Patterns are tried with a leftmost-priority rule: the earliest text position
at which any pattern matches wins; among the patterns matching at that
position, the one listed first wins. This is not leftmost-longest matching.
A shorter pattern listed before a longer one shadows the longer one at
positions where both match.

Rewrite applies all non-overlapping matches of a pattern list in a single
pass and moves the annotations of the text along with the edits.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package replace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cclip'
func tracer() tracing.Trace {
	return tracing.Select("cclip")
}
