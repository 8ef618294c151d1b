package clipboard

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/cclip"
	"github.com/npillmayer/cclip/styled/formatter"
)

// ErrClipboard is returned if the system clipboard cannot be written.
var ErrClipboard = errors.New("clipboard not accessible")

// ErrNoPayload is returned by sinks called without payloads.
var ErrNoPayload = errors.New("no clipboard payload")

// Format is a clipboard format.
type Format int

// Clipboard formats
const (
	UnicodeText Format = iota // plain text
	HTML                      // HTML fragment
)

func (f Format) String() string {
	switch f {
	case UnicodeText:
		return "text"
	case HTML:
		return "html"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromString finds a format by its name, as returned by Format.String.
func FormatFromString(name string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text":
		return UnicodeText, true
	case "html":
		return HTML, true
	}
	return 0, false
}

// Payload is clipboard data in a single format.
type Payload struct {
	Format Format
	Text   cclip.TextBuffer    // for UnicodeText
	HTML   *formatter.Fragment // for HTML
}

// TextPayload creates a plain text payload.
func TextPayload(text cclip.TextBuffer) Payload {
	return Payload{Format: UnicodeText, Text: text}
}

// HTMLPayload creates an HTML payload.
func HTMLPayload(fragment *formatter.Fragment) Payload {
	return Payload{Format: HTML, HTML: fragment}
}

// Sink receives clipboard payloads. All payloads of a call to Write replace
// the previous content of the sink together.
type Sink interface {
	Write(payloads ...Payload) error
}

// unicodeTextData returns the code units of a text as UTF-16LE bytes,
// followed by a terminating NUL.
func unicodeTextData(text cclip.TextBuffer) []byte {
	units := text.Units()
	b := make([]byte, 0, 2*len(units)+2)
	for _, u := range units {
		b = binary.LittleEndian.AppendUint16(b, u)
	}
	return binary.LittleEndian.AppendUint16(b, 0)
}

// utf8Data returns the payload as UTF-8 bytes. For HTML this is the HTML
// document, without the clipboard description.
func utf8Data(p Payload) ([]byte, error) {
	switch p.Format {
	case UnicodeText:
		return p.Text.Encode(0, p.Text.Len(), nil)
	case HTML:
		if p.HTML == nil {
			return nil, fmt.Errorf("%w: HTML payload without fragment", cclip.ErrIllegalArguments)
		}
		return p.HTML.HTML(), nil
	}
	return nil, fmt.Errorf("%w: unknown payload format %v", cclip.ErrIllegalArguments, p.Format)
}

// richest selects the payload with the richest format.
func richest(payloads []Payload) (Payload, error) {
	if len(payloads) == 0 {
		return Payload{}, ErrNoPayload
	}
	best := payloads[0]
	for _, p := range payloads[1:] {
		if p.Format > best.Format {
			best = p
		}
	}
	return best, nil
}

// --- Writer sink -----------------------------------------------------------

// Writer is a sink writing to an io.Writer instead of the system clipboard.
// Only the richest payload is written. For HTML, the complete clipboard data
// is written if Description is set, otherwise the HTML document only.
type Writer struct {
	Description bool
	w           io.Writer
}

// NewWriter creates a sink for w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes the richest of the payloads.
func (s *Writer) Write(payloads ...Payload) error {
	p, err := richest(payloads)
	if err != nil {
		return err
	}
	var data []byte
	if p.Format == HTML && s.Description && p.HTML != nil {
		data = p.HTML.Bytes()
	} else if data, err = utf8Data(p); err != nil {
		return err
	}
	tracer().Debugf("clipboard writer: %d bytes of %v", len(data), p.Format)
	_, err = s.w.Write(data)
	return err
}
