/*
Package formatter serializes annotated text.

The main target is the “HTML Format” of the Windows clipboard (CF_HTML).
It consists of a textual header, followed by an HTML document which
contains the fragment to copy:

	Version:0.9
	StartHTML:0000000105
	EndHTML:0000000312
	StartFragment:0000000139
	EndFragment:0000000276
	<html><body>
	<!--StartFragment--><pre>…</pre><!--EndFragment-->
	</body>
	</html>

The numeric header fields are byte offsets into the clipboard data itself.
EndHTML and EndFragment depend on the length of the body, but are located
before it. Serialize therefore measures the complete output first, then
writes it into a buffer of exactly the measured size and finally patches the
two fields. A difference between measured and written size is reported as
cclip.ErrSizeMismatch and no fragment is returned.

Text is not escaped. Clients wanting HTML-safe output replace markup
characters with entities beforehand, e.g. with package replace.

Package formatter also contains a console formatter for previewing annotated
text in a terminal.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file in the repository root.

*/
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
