package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/cclip/styled"
	"github.com/npillmayer/uax/uax11"
)

func TestConsolePlain(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	text := styled.TextFromString("one two three")
	text.Style(styled.Bold, 0, 4, 7)
	buf := &bytes.Buffer{}
	c := NewConsole(0, uax11.LatinContext).Colorize(false)
	if err := c.Fprint(buf, text); err != nil {
		t.Fatal(err.Error())
	}
	if buf.String() != "one two three\n" {
		t.Errorf("unexpected preview %q", buf.String())
	}
}

func TestConsoleAttributes(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	text := styled.TextFromString("one two three")
	text.Style(styled.Bold, 0, 4, 7)
	text.Style(styled.Color, 9, 8, 13)
	buf := &bytes.Buffer{}
	c := NewConsole(0, uax11.LatinContext).Colorize(true)
	if err := c.Fprint(buf, text); err != nil {
		t.Fatal(err.Error())
	}
	out := buf.String()
	if !strings.HasPrefix(out, "one \x1b[1mtwo\x1b[0m ") {
		t.Errorf("expected bold 'two', have %q", out)
	}
	if !strings.Contains(out, "\x1b[91mthree\x1b[0m") {
		t.Errorf("expected bright red 'three', have %q", out)
	}
}

func TestConsoleWrapsLines(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	input := "the quick brown fox jumps over the lazy dog"
	text := styled.TextFromString(input)
	text.Style(styled.Underline, 0, 4, 19)
	buf := &bytes.Buffer{}
	c := NewConsole(12, uax11.LatinContext).Colorize(false)
	if err := c.Fprint(buf, text); err != nil {
		t.Fatal(err.Error())
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) < 4 {
		t.Errorf("expected text to be wrapped into at least 4 lines, have %q", lines)
	}
	for _, l := range lines {
		if len(strings.TrimRight(l, " ")) > 12 {
			t.Errorf("line %q exceeds line width", l)
		}
	}
	if strings.Join(lines, "") != input {
		t.Errorf("wrapping changed text: %q", lines)
	}
}

func TestByteOffsets(t *testing.T) {
	s, offsets := byteOffsets(styled.TextFromString("aü😀b"))
	if s != "aü😀b" {
		t.Errorf("unexpected string %q", s)
	}
	want := []int{0, 1, 3, 3, 7, 8}
	if len(offsets) != len(want) {
		t.Fatalf("expected offsets %v, have %v", want, offsets)
	}
	for i := range want {
		if offsets[i] != want[i] {
			t.Errorf("position %d: expected byte offset %d, have %d", i, want[i], offsets[i])
		}
	}
}
