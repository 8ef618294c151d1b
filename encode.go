package cclip

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encode re-encodes the sub-text [from…to) into a target encoding. If enc is
// nil, UTF-8 is used.
//
// Lone surrogates, slice boundaries splitting a surrogate pair and runes
// which are not representable in the target encoding result in
// ErrEncodingFailed.
func (t TextBuffer) Encode(from, to uint64, enc encoding.Encoding) ([]byte, error) {
	s, err := t.decodeStrict(from, to)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return []byte{}, nil
	}
	b, err := targetEncoding(enc).NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodingFailed, err)
	}
	return b, nil
}

// EncodedLen returns the number of bytes Encode would produce for [from…to),
// without collecting the encoded bytes.
func (t TextBuffer) EncodedLen(from, to uint64, enc encoding.Encoding) (uint64, error) {
	s, err := t.decodeStrict(from, to)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	var cnt countingWriter
	w := transform.NewWriter(&cnt, targetEncoding(enc).NewEncoder())
	if _, err = w.Write([]byte(s)); err == nil {
		err = w.Close()
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEncodingFailed, err)
	}
	return cnt.n, nil
}

// decodeStrict converts code units to a Go string, refusing ill-formed UTF-16.
func (t TextBuffer) decodeStrict(from, to uint64) (string, error) {
	if from > to || to > t.Len() {
		return "", ErrIndexOutOfBounds
	}
	units := t.units[from:to]
	var sb strings.Builder
	sb.Grow(len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case isHighSurrogate(u):
			if i+1 == len(units) || !isLowSurrogate(units[i+1]) {
				return "", fmt.Errorf("%w: lone high surrogate at position %d", ErrEncodingFailed, from+uint64(i))
			}
			sb.WriteRune(utf16.DecodeRune(rune(u), rune(units[i+1])))
			i++
		case isLowSurrogate(u):
			return "", fmt.Errorf("%w: lone low surrogate at position %d", ErrEncodingFailed, from+uint64(i))
		default:
			sb.WriteRune(rune(u))
		}
	}
	return sb.String(), nil
}

func targetEncoding(enc encoding.Encoding) encoding.Encoding {
	if enc == nil {
		return unicode.UTF8
	}
	return enc
}

type countingWriter struct {
	n uint64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += uint64(len(p))
	return len(p), nil
}
