package cclip

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"unicode/utf16"
)

// MaxTextLen is the maximum length of a text buffer in code units.
const MaxTextLen = 1<<31 - 1

// TextBuffer is an immutable sequence of UTF-16 code units.
//
// A text buffer created by
//
//	TextBuffer{}
//
// is a valid object and behaves like the empty string.
//
// Methods that take or return positions use code unit offsets. A position
// equal to Len() is valid and denotes the position after the last code unit.
type TextBuffer struct {
	units []uint16
}

// FromString creates a text buffer from a Go string.
//
// Invalid UTF-8 sequences are converted to U+FFFD.
func FromString(s string) TextBuffer {
	return TextBuffer{units: utf16.Encode([]rune(s))}
}

// FromUnits creates a text buffer from a slice of code units. The units are
// copied, clients may re-use u.
//
// FromUnits does not check for well-formed surrogate pairs; lone surrogates
// will be flagged when the text is encoded.
func FromUnits(u []uint16) TextBuffer {
	if len(u) == 0 {
		return TextBuffer{}
	}
	units := make([]uint16, len(u))
	copy(units, u)
	return TextBuffer{units: units}
}

// Len returns the length of the text in code units.
func (t TextBuffer) Len() uint64 {
	return uint64(len(t.units))
}

// IsVoid reports whether the text has no code units.
func (t TextBuffer) IsVoid() bool {
	return len(t.units) == 0
}

// At returns the code unit at position i.
func (t TextBuffer) At(i uint64) (uint16, error) {
	if i >= t.Len() {
		return 0, ErrIndexOutOfBounds
	}
	return t.units[i], nil
}

// Units returns a copy of the code units of the text.
func (t TextBuffer) Units() []uint16 {
	u := make([]uint16, len(t.units))
	copy(u, t.units)
	return u
}

// Slice returns the sub-text [from…to).
func (t TextBuffer) Slice(from, to uint64) (TextBuffer, error) {
	if from > to || to > t.Len() {
		return TextBuffer{}, ErrIndexOutOfBounds
	}
	return TextBuffer{units: t.units[from:to:to]}, nil
}

// MatchesAt reports whether the code units of t starting at pos equal seq.
// A sequence reaching beyond the end of the text never matches. The empty
// sequence never matches.
func (t TextBuffer) MatchesAt(pos uint64, seq []uint16) bool {
	if len(seq) == 0 || pos > t.Len() || uint64(len(seq)) > t.Len()-pos {
		return false
	}
	for i, u := range seq {
		if t.units[pos+uint64(i)] != u {
			return false
		}
	}
	return true
}

// SplitsSurrogate reports whether position pos lies between the high and the
// low surrogate of a surrogate pair.
func (t TextBuffer) SplitsSurrogate(pos uint64) bool {
	if pos == 0 || pos >= t.Len() {
		return false
	}
	return isHighSurrogate(t.units[pos-1]) && isLowSurrogate(t.units[pos])
}

// String returns the text as a Go string. Lone surrogates are converted
// to U+FFFD.
func (t TextBuffer) String() string {
	return string(utf16.Decode(t.units))
}

func isHighSurrogate(u uint16) bool {
	return u >= 0xd800 && u < 0xdc00
}

func isLowSurrogate(u uint16) bool {
	return u >= 0xdc00 && u < 0xe000
}
