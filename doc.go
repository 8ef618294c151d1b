/*
Package cclip copies text from standard input to the system clipboard, both as
plain Unicode text and as an HTML fragment.

Text Buffers

Input text is converted from its codepage to a buffer of UTF-16 code units,
type TextBuffer. Code units are the unit of every position in this module:
annotation positions, pattern matches and slice boundaries all count code units,
not bytes and not runes. A text buffer is immutable; every stage of the
pipeline which transforms text creates a new buffer.

Pipeline

Copying text as HTML is performed in three steps, each implemented in a
sub-package:

▪︎ styled: text buffers are paired with a set of annotations, i.e. zero-width
formatting markers (bold on, color off, …) attached to code unit positions.

▪︎ replace: an ordered list of search/replace patterns is applied to a text,
keeping the positions of its annotations consistent with the edits.

▪︎ styled/formatter: the annotated text is serialized into the “HTML Format”
clipboard layout, whose header contains byte offsets into the fragment itself.

Both the rewriter and the serializer measure their output before they write it,
and treat any disagreement between measured and written size as an error
(ErrSizeMismatch). No stage ever returns partial output.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package cclip

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ClipError is an error type for the cclip module.
type ClipError string

func (e ClipError) Error() string {
	return string(e)
}

// ErrAllocationFailed is flagged if an output buffer would exceed the limits
// of this module or of the operating system.
const ErrAllocationFailed = ClipError("allocation of output buffer failed")

// ErrSizeMismatch signals that the size of an output buffer, measured in advance,
// differs from the number of bytes or code units actually written. This is
// an internal inconsistency and is never tolerated.
const ErrSizeMismatch = ClipError("measured and written size differ")

// ErrUnsupportedGlyph is flagged for annotations which have no markup representation.
const ErrUnsupportedGlyph = ClipError("annotation has no markup glyph")

// ErrEncodingFailed is flagged if text cannot be re-encoded to the target encoding.
const ErrEncodingFailed = ClipError("text cannot be encoded")

// ErrIndexOutOfBounds is flagged whenever a text position is
// greater than the length of the text.
const ErrIndexOutOfBounds = ClipError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ClipError("illegal arguments")

// ErrTextCompleted signals that a text builder has already completed a text and
// it's illegal to further add code units.
const ErrTextCompleted = ClipError("forbidden to add code units; text has been completed")
