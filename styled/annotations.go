package styled

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/cclip"
)

// Kind is the kind of formatting an annotation opens or closes.
type Kind uint8

// Kinds of annotations
const (
	Block     Kind = iota // block of pre-formatted text
	Bold                  // bold face
	Italic                // italic face
	Underline             // underlined text
	Color                 // foreground color; Parameter selects a palette entry
	kindCount
)

// Kinds returns all kinds of annotations known to this package.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Block; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k Kind) String() string {
	switch k {
	case Block:
		return "block"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	case Color:
		return "color"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// KindFromString finds a kind by its name, as returned by Kind.String.
func KindFromString(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// --- Annotations -----------------------------------------------------------

// Annotation is a zero-width formatting marker at a code unit position of a text.
// Position may equal the length of the text, denoting “after the last character”.
type Annotation struct {
	Position  uint64 // code unit offset
	Kind      Kind   // kind of formatting
	Parameter uint32 // kind-specific, e.g. palette index for Color
	Closing   bool   // does this annotation end a formatting?
}

// Open creates an annotation opening a formatting at pos.
func Open(kind Kind, param uint32, pos uint64) Annotation {
	return Annotation{Position: pos, Kind: kind, Parameter: param}
}

// Close creates an annotation closing a formatting at pos.
func Close(kind Kind, param uint32, pos uint64) Annotation {
	return Annotation{Position: pos, Kind: kind, Parameter: param, Closing: true}
}

func (a Annotation) String() string {
	slash := ""
	if a.Closing {
		slash = "/"
	}
	if a.Kind == Color {
		return fmt.Sprintf("<%s%s:%d>@%d", slash, a.Kind, a.Parameter, a.Position)
	}
	return fmt.Sprintf("<%s%s>@%d", slash, a.Kind, a.Position)
}

// AnnotationSet is a collection of annotations of a single text. Annotations are
// held in insertion order, which breaks ties between annotations at equal
// positions.
//
// The zero value is an empty set, ready to use.
type AnnotationSet struct {
	items []Annotation
}

// NewAnnotationSet creates a set from a list of annotations, keeping their order.
func NewAnnotationSet(annotations ...Annotation) AnnotationSet {
	return AnnotationSet{items: slices.Clone(annotations)}
}

// Len returns the number of annotations in the set.
func (s AnnotationSet) Len() int {
	return len(s.items)
}

// At returns the i-th annotation, in insertion order.
func (s AnnotationSet) At(i int) Annotation {
	return s.items[i]
}

// Add appends annotations to the set.
func (s *AnnotationSet) Add(annotations ...Annotation) {
	s.items = append(s.items, annotations...)
}

// Wrap adds a pair of annotations, opening a formatting at from and closing it at to.
func (s *AnnotationSet) Wrap(kind Kind, param uint32, from, to uint64) {
	if from > to {
		from, to = to, from
	}
	s.items = append(s.items, Open(kind, param, from), Close(kind, param, to))
}

// Clone returns an independent copy of the set.
func (s AnnotationSet) Clone() AnnotationSet {
	return AnnotationSet{items: slices.Clone(s.items)}
}

// All iterates over the annotations in insertion order.
func (s AnnotationSet) All() iter.Seq2[int, Annotation] {
	return func(yield func(int, Annotation) bool) {
		for i, a := range s.items {
			if !yield(i, a) {
				return
			}
		}
	}
}

// Sorted returns the annotations ordered by position. Annotations sharing a
// position keep their insertion order.
func (s AnnotationSet) Sorted() []Annotation {
	sorted := slices.Clone(s.items)
	slices.SortStableFunc(sorted, func(a, b Annotation) int {
		switch {
		case a.Position < b.Position:
			return -1
		case a.Position > b.Position:
			return 1
		}
		return 0
	})
	return sorted
}

// Validate checks that every annotation is positioned within a text of
// the given length.
func (s AnnotationSet) Validate(length uint64) error {
	for i, a := range s.items {
		if a.Position > length {
			tracer().Errorf("annotation #%d %v is beyond end of text (%d)", i, a, length)
			return fmt.Errorf("%w: annotation %v beyond text length %d", cclip.ErrIndexOutOfBounds,
				a, length)
		}
	}
	return nil
}

// ShiftPositions renormalizes annotation positions after the span
// [regionStart…regionStart+deletedLen) of a text has been replaced by
// insertedLen code units. For each annotation:
//
//   - at or before regionStart it stays where it is
//   - strictly inside the deleted span it collapses to regionStart
//   - at or after the end of the deleted span it moves by insertedLen-deletedLen
//
// ShiftPositions works in place. Clients wanting to keep the original set
// should operate on a Clone.
func (s *AnnotationSet) ShiftPositions(regionStart, deletedLen, insertedLen uint64) {
	regionEnd := regionStart + deletedLen
	for i := range s.items {
		a := &s.items[i]
		switch {
		case a.Position <= regionStart:
		case a.Position < regionEnd:
			a.Position = regionStart
		default:
			a.Position = a.Position - deletedLen + insertedLen
		}
	}
}

func (s AnnotationSet) String() string {
	return fmt.Sprintf("%v", s.items)
}
