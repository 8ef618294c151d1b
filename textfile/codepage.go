package textfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/cclip"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownCodepage is returned for codepage names which cannot be resolved.
var ErrUnknownCodepage = errors.New("unknown codepage")

// windowsCodepages maps Windows codepage numbers to encodings.
var windowsCodepages = map[int]encoding.Encoding{
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	866:   charmap.CodePage866,
	1200:  unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	65001: unicode.UTF8,
}

// LookupCodepage finds an encoding for a codepage name. Names are either
// Windows codepage numbers, optionally prefixed by "cp", or IANA names.
// An empty name selects UTF-8.
func LookupCodepage(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return unicode.UTF8, nil
	}
	number := strings.TrimPrefix(strings.ToLower(name), "cp")
	if n, err := strconv.Atoi(number); err == nil {
		if enc, ok := windowsCodepages[n]; ok {
			return enc, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownCodepage, name)
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil { // known to IANA, but not supported
		tracer().Errorf("codepage %q cannot be resolved", name)
		return nil, fmt.Errorf("%w: %s", ErrUnknownCodepage, name)
	}
	return enc, nil
}

// Decode converts input bytes in a given encoding to a text buffer. If enc is
// nil, UTF-8 is assumed. A byte order mark overrides enc. Byte sequences
// which are invalid in enc are replaced by U+FFFD.
func Decode(raw []byte, enc encoding.Encoding) (cclip.TextBuffer, error) {
	if enc == nil {
		enc = unicode.UTF8
	}
	dec := unicode.BOMOverride(enc.NewDecoder())
	b, _, err := transform.Bytes(dec, raw)
	if err != nil {
		tracer().Errorf("decoding input: %v", err)
		return cclip.TextBuffer{}, fmt.Errorf("%w: %v", cclip.ErrEncodingFailed, err)
	}
	text := cclip.FromString(string(b))
	if text.Len() > cclip.MaxTextLen {
		return cclip.TextBuffer{}, fmt.Errorf("%w: text of %d code units", cclip.ErrAllocationFailed, text.Len())
	}
	tracer().Debugf("decoded %d bytes into %d code units", len(raw), text.Len())
	return text, nil
}
