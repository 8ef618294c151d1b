package cclip

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/encoding/charmap"
)

func TestTextFromString(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	text := FromString("Hello World")
	if text.Len() != 11 {
		t.Errorf("expected text length of 11, is %d", text.Len())
	}
	if text.String() != "Hello World" {
		t.Errorf("expected text to be 'Hello World', is '%s'", text)
	}
	if u, err := text.At(6); err != nil || u != 'W' {
		t.Errorf("expected 'W' at position 6, have %q (%v)", rune(u), err)
	}
	if _, err := text.At(11); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected index error for position 11, have %v", err)
	}
	var void TextBuffer
	if !void.IsVoid() || void.String() != "" {
		t.Errorf("expected zero text buffer to be void")
	}
}

func TestTextSurrogates(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	text := FromString("a😀b") // emoji needs a surrogate pair
	if text.Len() != 4 {
		t.Fatalf("expected 4 code units, have %d", text.Len())
	}
	if !text.SplitsSurrogate(2) {
		t.Errorf("expected position 2 to split a surrogate pair")
	}
	for _, pos := range []uint64{0, 1, 3, 4} {
		if text.SplitsSurrogate(pos) {
			t.Errorf("expected position %d not to split a surrogate pair", pos)
		}
	}
}

func TestTextSlice(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	text := FromString("Hello World")
	sub, err := text.Slice(6, 11)
	if err != nil {
		t.Fatal(err.Error())
	}
	if sub.String() != "World" {
		t.Errorf("expected slice to be 'World', is '%s'", sub)
	}
	if _, err = text.Slice(6, 12); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected index error, have %v", err)
	}
	if _, err = text.Slice(7, 6); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected index error for reversed range, have %v", err)
	}
}

func TestTextMatchesAt(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	text := FromString("xaby")
	ab := FromString("ab").Units()
	if !text.MatchesAt(1, ab) {
		t.Errorf("expected 'ab' to match at 1")
	}
	if text.MatchesAt(2, ab) {
		t.Errorf("expected 'ab' not to match at 2")
	}
	if text.MatchesAt(3, FromString("yz").Units()) {
		t.Errorf("expected match reaching beyond the end to fail")
	}
	if text.MatchesAt(0, nil) {
		t.Errorf("expected empty sequence never to match")
	}
}

func TestUnitsAreCopied(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	u := []uint16{'a', 'b'}
	text := FromUnits(u)
	u[0] = 'x'
	if text.String() != "ab" {
		t.Errorf("expected text to be independent of input slice, is '%s'", text)
	}
	v := text.Units()
	v[1] = 'y'
	if text.String() != "ab" {
		t.Errorf("expected text to be independent of output slice, is '%s'", text)
	}
}

func TestEncode(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	text := FromString("Grüße 😀")
	b, err := text.Encode(0, text.Len(), nil)
	if err != nil {
		t.Fatal(err.Error())
	}
	if string(b) != "Grüße 😀" {
		t.Errorf("expected UTF-8 round trip, have %q", b)
	}
	n, err := text.EncodedLen(0, text.Len(), nil)
	if err != nil || n != uint64(len(b)) {
		t.Errorf("expected encoded length %d, have %d (%v)", len(b), n, err)
	}
	// split the surrogate pair
	if _, err = text.Encode(0, text.Len()-1, nil); !errors.Is(err, ErrEncodingFailed) {
		t.Errorf("expected encoding error for split surrogate, have %v", err)
	}
	if _, err = text.EncodedLen(text.Len()-1, text.Len(), nil); !errors.Is(err, ErrEncodingFailed) {
		t.Errorf("expected encoding error for lone low surrogate, have %v", err)
	}
}

func TestEncodeCodepage(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	text := FromString("Grüße")
	b, err := text.Encode(0, text.Len(), charmap.Windows1252)
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(b) != 5 {
		t.Errorf("expected 5 bytes in cp1252, have %d", len(b))
	}
	text = FromString("€ and ♥")
	if _, err = text.Encode(0, text.Len(), charmap.CodePage437); !errors.Is(err, ErrEncodingFailed) {
		t.Errorf("expected encoding error for unrepresentable rune, have %v", err)
	}
}

func TestTextBuilder(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	b, err := NewTextBuilder(5)
	if err != nil {
		t.Fatal(err.Error())
	}
	src := FromString("Hello World")
	if err = b.AppendText(src, 0, 3); err != nil {
		t.Fatal(err.Error())
	}
	if err = b.Append([]uint16{'l', 'o'}); err != nil {
		t.Fatal(err.Error())
	}
	if b.Len() != 5 || b.Cap() != 5 {
		t.Errorf("expected full builder of capacity 5, have %d/%d", b.Len(), b.Cap())
	}
	if err = b.Append([]uint16{'!'}); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected overflowing append to be a size mismatch, have %v", err)
	}
	text := b.Text()
	if text.String() != "Hello" {
		t.Errorf("expected 'Hello', have '%s'", text)
	}
	if err = b.Append(nil); !errors.Is(err, ErrTextCompleted) {
		t.Errorf("expected completed builder to refuse appends, have %v", err)
	}
	if _, err = NewTextBuilder(MaxTextLen + 1); !errors.Is(err, ErrAllocationFailed) {
		t.Errorf("expected oversized builder to fail allocation, have %v", err)
	}
}
