package cclip

// TextBuilder collects code units into a buffer of fixed capacity and
// finalizes them into a TextBuffer.
//
// The capacity is set on creation and never grows. Appending beyond it is an
// error, as it signals that a previously measured size was wrong.
type TextBuilder struct {
	units []uint16
	done  bool
}

// NewTextBuilder creates a new and empty builder for texts of at most
// capacity code units.
func NewTextBuilder(capacity uint64) (*TextBuilder, error) {
	if capacity > MaxTextLen {
		T().Errorf("text builder: capacity %d exceeds maximum text length", capacity)
		return nil, ErrAllocationFailed
	}
	return &TextBuilder{units: make([]uint16, 0, capacity)}, nil
}

// Append appends code units to the text to build.
func (b *TextBuilder) Append(u []uint16) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTextCompleted
	}
	if len(b.units)+len(u) > cap(b.units) {
		T().Errorf("text builder: append of %d units overflows capacity %d", len(u), cap(b.units))
		return ErrSizeMismatch
	}
	b.units = append(b.units, u...)
	return nil
}

// AppendText appends a slice [from…to) of another text.
func (b *TextBuilder) AppendText(t TextBuffer, from, to uint64) error {
	if from > to || to > t.Len() {
		return ErrIndexOutOfBounds
	}
	return b.Append(t.units[from:to])
}

// Len returns the number of code units appended so far.
func (b *TextBuilder) Len() uint64 {
	if b == nil {
		return 0
	}
	return uint64(len(b.units))
}

// Cap returns the capacity of the builder.
func (b *TextBuilder) Cap() uint64 {
	if b == nil {
		return 0
	}
	return uint64(cap(b.units))
}

// Text returns the text built from all appended code units.
//
// It is illegal to continue appending after Text has been called, but
// Text may be called multiple times. The builder hands over its buffer
// without copying.
func (b *TextBuilder) Text() TextBuffer {
	if b == nil {
		return TextBuffer{}
	}
	b.done = true
	if len(b.units) == 0 {
		T().Debugf("text builder: text is void")
		return TextBuffer{}
	}
	return TextBuffer{units: b.units[:len(b.units):len(b.units)]}
}
