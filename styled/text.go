package styled

import (
	"unicode/utf16"

	"github.com/npillmayer/cclip"
)

// --- Styled Text -----------------------------------------------------------

// Text is an annotated text. It pairs a text buffer with the set of
// annotations positioned in it.
type Text struct {
	text        cclip.TextBuffer
	annotations AnnotationSet
}

// TextFromString creates a stylable text from a string.
func TextFromString(s string) *Text {
	return &Text{text: cclip.FromString(s)}
}

// TextFromBuffer creates a stylable text from a text buffer.
func TextFromBuffer(text cclip.TextBuffer) *Text {
	return &Text{text: text}
}

// NewText creates a text from a text buffer and a set of annotations.
// All annotations have to be positioned within the text.
func NewText(text cclip.TextBuffer, annotations AnnotationSet) (*Text, error) {
	if err := annotations.Validate(text.Len()); err != nil {
		return nil, err
	}
	return &Text{text: text, annotations: annotations.Clone()}, nil
}

// Raw returns the text without any annotations.
func (t *Text) Raw() cclip.TextBuffer {
	return t.text
}

// Annotations returns a copy of the text's annotations.
func (t *Text) Annotations() AnnotationSet {
	return t.annotations.Clone()
}

// Style wraps a run of text [from…to) with an opening and a closing
// annotation of a given kind.
// Given range boundaries will silently be restricted to valid text positions without
// flagging an error.
func (t *Text) Style(kind Kind, param uint32, from, to uint64) *Text {
	if from > to {
		from, to = to, from
	}
	from, to = min(from, t.text.Len()), min(to, t.text.Len())
	t.annotations.Wrap(kind, param, from, to)
	return t
}

// Annotate adds a single annotation to the text.
func (t *Text) Annotate(a Annotation) error {
	if a.Position > t.text.Len() {
		return cclip.ErrIndexOutOfBounds
	}
	t.annotations.Add(a)
	return nil
}

// --- Text Builder ----------------------------------------------------------

// TextBuilder is for building annotated text from fragments of text and
// formatting boundaries between them.
type TextBuilder struct {
	units       []uint16
	annotations AnnotationSet
	done        bool
}

// NewTextBuilder creates a new and empty builder for styled.Text.
func NewTextBuilder() *TextBuilder {
	return &TextBuilder{}
}

// Len returns the current length of the text in code units.
func (b *TextBuilder) Len() uint64 {
	return uint64(len(b.units))
}

// AppendString appends a text fragment at the end of the text to build.
func (b *TextBuilder) AppendString(s string) error {
	if b.done {
		return cclip.ErrTextCompleted
	}
	if s == "" {
		return nil
	}
	b.units = append(b.units, utf16.Encode([]rune(s))...)
	return nil
}

// Open adds an annotation opening a formatting at the current end of the text.
func (b *TextBuilder) Open(kind Kind, param uint32) error {
	if b.done {
		return cclip.ErrTextCompleted
	}
	b.annotations.Add(Open(kind, param, b.Len()))
	return nil
}

// Close adds an annotation closing a formatting at the current end of the text.
func (b *TextBuilder) Close(kind Kind, param uint32) error {
	if b.done {
		return cclip.ErrTextCompleted
	}
	b.annotations.Add(Close(kind, param, b.Len()))
	return nil
}

// Text returns the styled text which this builder is holding up to now.
// It is illegal to continue adding fragments after `Text` has been called,
// but `Text` may be called multiple times.
func (b *TextBuilder) Text() *Text {
	b.done = true
	t := &Text{
		text:        cclip.FromUnits(b.units),
		annotations: b.annotations.Clone(),
	}
	if t.text.IsVoid() {
		tracer().Debugf("styled text builder: text is void")
	}
	return t
}
