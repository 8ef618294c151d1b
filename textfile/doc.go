/*
Package textfile reads clipboard input and converts it to text buffers.

Input is read completely before any processing starts, growing the input buffer
in steps of a configurable size. Reading progress is broadcast to subscribers,
which is useful for large inputs piped in from slow producers.

Input bytes are decoded from a codepage, either given by a Windows codepage
number (e.g., "1252" or "cp850") or by an IANA name (e.g., "ISO-8859-1"). The
default is UTF-8. Byte order marks are honoured and removed.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cclip'
func tracer() tracing.Trace {
	return tracing.Select("cclip")
}
