/*
Package styled pairs text with formatting annotations.

An annotation is a zero-width marker, attached to a code unit position of a
text: “bold starts here”, “color ends here”. Annotations of a text are kept
in an AnnotationSet, which holds them in insertion order. Clients which need
them ordered by position call AnnotationSet.Sorted.

When text is edited, annotation positions have to follow the edit.
AnnotationSet.ShiftPositions implements the rule for a single replacement of
a span of text; package replace applies it for each replacement of a
search-and-replace pass.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package styled

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cclip'
func tracer() tracing.Trace {
	return tracing.Select("cclip")
}
