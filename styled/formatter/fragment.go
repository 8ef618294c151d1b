package formatter

import (
	"fmt"
	"math"

	"github.com/npillmayer/cclip"
	"github.com/npillmayer/cclip/styled"
	"golang.org/x/text/encoding"
)

// --- Layout ----------------------------------------------------------------

// fieldWidth is the number of decimal digits of a numeric header field.
const fieldWidth = 10

// maxFragmentSize is the largest offset representable in a header field.
const maxFragmentSize = 9_999_999_999

// layout describes the fixed parts of clipboard HTML data. All offsets are
// derived from the template text by makeLayout and have to be kept together:
// changing the template text changes every one of them.
type layout struct {
	header        string // description and HTML prologue, end fields zeroed
	footer        string // HTML epilogue, starting with the end-of-fragment marker
	startHTML     uint64 // offset of the HTML document
	startFragment uint64 // offset of the fragment body
	endHTMLAt     int    // byte offset of the EndHTML digits in header
	endFragmentAt int    // byte offset of the EndFragment digits in header
}

var cfhtml = makeLayout("0.9",
	"<html><body>\r\n<!--StartFragment-->",
	"<!--EndFragment-->\r\n</body>\r\n</html>",
)

func makeLayout(version, prologue, epilogue string) layout {
	desc := []byte("Version:" + version + "\r\n")
	var at [4]int
	for i, name := range [4]string{"StartHTML", "EndHTML", "StartFragment", "EndFragment"} {
		desc = append(desc, name+":"...)
		at[i] = len(desc)
		desc = fmt.Appendf(desc, "%0*d\r\n", fieldWidth, 0)
	}
	l := layout{
		footer:        epilogue,
		startHTML:     uint64(len(desc)),
		startFragment: uint64(len(desc) + len(prologue)),
		endHTMLAt:     at[1],
		endFragmentAt: at[3],
	}
	header := append(desc, prologue...)
	putField(header, at[0], l.startHTML)
	putField(header, at[2], l.startFragment)
	l.header = string(header)
	return l
}

// putField writes a zero-padded decimal number into a header field.
func putField(b []byte, at int, n uint64) {
	copy(b[at:at+fieldWidth], fmt.Sprintf("%0*d", fieldWidth, n))
}

// --- Options ---------------------------------------------------------------

// Option configures Serialize.
type Option func(*options)

type options struct {
	enc encoding.Encoding
}

// WithEncoding sets the target encoding for text. The default is UTF-8, which is
// what clipboard consumers expect. Runes not representable in the target
// encoding result in cclip.ErrEncodingFailed.
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *options) {
		o.enc = enc
	}
}

// --- Serializer ------------------------------------------------------------

// Serialize creates clipboard HTML data from a text and its annotations.
//
// The fragment body is the text, enclosed in an implicit Block, with the markup
// of the annotations inserted at their positions. Annotations are emitted
// in ascending order of positions; annotations sharing a position are emitted
// in the order of the annotation set. The implicit opening Block precedes all
// annotations at position 0, the implicit closing Block follows all annotations
// at the end of the text.
//
// Errors:
//
//   - cclip.ErrIndexOutOfBounds: an annotation is positioned beyond the text
//   - cclip.ErrUnsupportedGlyph: an annotation has no markup
//   - cclip.ErrEncodingFailed: the text contains lone surrogates, an annotation
//     splits a surrogate pair or a rune is not representable in the target encoding
//   - cclip.ErrAllocationFailed: the data would exceed the header field range
//   - cclip.ErrSizeMismatch: measured and written size differ
//
// All but the last are detected before the output buffer is allocated.
func Serialize(text cclip.TextBuffer, annotations styled.AnnotationSet, opts ...Option) (*Fragment, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	p, err := measure(text, annotations, o.enc)
	if err != nil {
		return nil, err
	}
	T().Debugf("fragment: %d annotations, measured %d bytes", len(p.marks), p.size)
	return emit(text, p, o.enc, cfhtml)
}

// SerializeText is a convenience wrapper around Serialize for styled texts.
func SerializeText(t *styled.Text, opts ...Option) (*Fragment, error) {
	if t == nil {
		return nil, cclip.ErrIllegalArguments
	}
	return Serialize(t.Raw(), t.Annotations(), opts...)
}

// mark is an annotation position together with its markup.
type mark struct {
	pos   uint64
	glyph string
}

// plan is the result of the measure pass.
type plan struct {
	marks []mark // in output order
	size  uint64 // total size of the clipboard data in bytes
}

// measure computes the size of the clipboard data, without allocating it.
func measure(text cclip.TextBuffer, annotations styled.AnnotationSet, enc encoding.Encoding) (plan, error) {
	if err := annotations.Validate(text.Len()); err != nil {
		return plan{}, err
	}
	working := styled.NewAnnotationSet(styled.Open(styled.Block, 0, 0))
	for _, a := range annotations.All() {
		working.Add(a)
	}
	working.Add(styled.Close(styled.Block, 0, text.Len()))
	sorted := working.Sorted()
	p := plan{marks: make([]mark, len(sorted))}
	for i, a := range sorted {
		g, err := GlyphFor(a)
		if err != nil {
			T().Errorf("fragment: no glyph for annotation %v", a)
			return plan{}, err
		}
		if text.SplitsSurrogate(a.Position) {
			T().Errorf("fragment: annotation %v splits a surrogate pair", a)
			return plan{}, fmt.Errorf("%w: annotation %v splits a surrogate pair", cclip.ErrEncodingFailed, a)
		}
		p.marks[i] = mark{pos: a.Position, glyph: g}
		p.size += uint64(len(g))
	}
	// Text is measured slice by slice, exactly as emit writes it. Stateful
	// encoders add bytes per slice, e.g. escape sequences or a BOM.
	var pos uint64
	for _, m := range p.marks {
		if m.pos > pos {
			n, err := text.EncodedLen(pos, m.pos, enc)
			if err != nil {
				return plan{}, err
			}
			p.size += n
			pos = m.pos
		}
	}
	n, err := text.EncodedLen(pos, text.Len(), enc)
	if err != nil {
		return plan{}, err
	}
	p.size += n + uint64(len(cfhtml.header)) + uint64(len(cfhtml.footer))
	if p.size > maxFragmentSize || p.size > math.MaxInt {
		T().Errorf("fragment: size %d exceeds header field range", p.size)
		return plan{}, fmt.Errorf("%w: fragment size %d", cclip.ErrAllocationFailed, p.size)
	}
	return p, nil
}

// emit writes clipboard data of the measured size and patches the end offsets
// into its header.
func emit(text cclip.TextBuffer, p plan, enc encoding.Encoding, l layout) (*Fragment, error) {
	w := &fragmentWriter{buf: make([]byte, p.size)}
	err := w.writeString(l.header)
	var pos uint64 // text position written so far
	for i := 0; err == nil && i < len(p.marks); {
		at := p.marks[i].pos
		if at > pos {
			err = w.writeText(text, pos, at, enc)
			pos = at
		}
		for ; err == nil && i < len(p.marks) && p.marks[i].pos == at; i++ {
			err = w.writeString(p.marks[i].glyph)
		}
	}
	if err == nil {
		err = w.writeText(text, pos, text.Len(), enc)
	}
	if err == nil {
		err = w.writeString(l.footer)
	}
	if err != nil {
		return nil, err
	}
	if uint64(w.n) != p.size {
		T().Errorf("fragment: measured %d bytes, wrote %d", p.size, w.n)
		return nil, fmt.Errorf("%w: measured %d bytes, wrote %d", cclip.ErrSizeMismatch, p.size, w.n)
	}
	putField(w.buf, l.endHTMLAt, p.size)
	putField(w.buf, l.endFragmentAt, p.size-uint64(len(l.footer)))
	return &Fragment{
		data: w.buf,
		header: Header{
			Version:       "0.9",
			StartHTML:     l.startHTML,
			EndHTML:       p.size,
			StartFragment: l.startFragment,
			EndFragment:   p.size - uint64(len(l.footer)),
		},
	}, nil
}

// fragmentWriter writes into a buffer of fixed size. Writing beyond the end of
// the buffer is an error, the buffer never grows.
type fragmentWriter struct {
	buf []byte
	n   int
}

func (w *fragmentWriter) write(b []byte) error {
	if len(b) > len(w.buf)-w.n {
		T().Errorf("fragment: write of %d bytes overflows buffer at %d/%d", len(b), w.n, len(w.buf))
		return fmt.Errorf("%w: write beyond %d bytes", cclip.ErrSizeMismatch, len(w.buf))
	}
	w.n += copy(w.buf[w.n:], b)
	return nil
}

func (w *fragmentWriter) writeString(s string) error {
	return w.write([]byte(s))
}

func (w *fragmentWriter) writeText(text cclip.TextBuffer, from, to uint64, enc encoding.Encoding) error {
	b, err := text.Encode(from, to, enc)
	if err != nil {
		return err
	}
	return w.write(b)
}
