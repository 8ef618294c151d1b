package highlight

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/npillmayer/cclip"
	"github.com/npillmayer/cclip/styled"
)

// Rule wraps every match of a regular expression with annotations of a
// given kind.
type Rule struct {
	Pattern   *regexp.Regexp
	Kind      styled.Kind
	Parameter uint32
}

// NewRule compiles a rule. Expressions matching the empty string are
// rejected, as they would produce empty spans at every position.
func NewRule(expr string, kind styled.Kind, param uint32) (Rule, error) {
	r, err := regexp.Compile(expr)
	if err != nil {
		tracer().Errorf("highlight rule: cannot compile regular expression input")
		return Rule{}, fmt.Errorf("illegal highlight pattern: %w", err)
	}
	if r.MatchString("") {
		tracer().Errorf("highlight rule: regular expression matches empty string")
		return Rule{}, fmt.Errorf("%w: highlight pattern %q matches empty string",
			cclip.ErrIllegalArguments, expr)
	}
	return Rule{Pattern: r, Kind: kind, Parameter: param}, nil
}

// Span is a run of text, in code units.
type Span struct {
	Pos uint64
	Len uint64
}

// Find returns the spans of text matched by rule r, in ascending order.
func (r Rule) Find(text cclip.TextBuffer) []Span {
	s, offsets := utf8View(text)
	locs := r.Pattern.FindAllStringIndex(s, -1)
	spans := make([]Span, 0, len(locs))
	for _, loc := range locs {
		from, to := offsets[loc[0]], offsets[loc[1]]
		if to > from {
			spans = append(spans, Span{Pos: from, Len: to - from})
		}
	}
	return spans
}

// Apply wraps all matches of all rules with annotations and adds them to
// text. Rules are applied in order, and for each rule the matches in
// ascending order.
func Apply(text *styled.Text, rules ...Rule) (int, error) {
	if text == nil {
		return 0, cclip.ErrIllegalArguments
	}
	cnt := 0
	for _, r := range rules {
		if r.Pattern == nil {
			return cnt, cclip.ErrIllegalArguments
		}
		spans := r.Find(text.Raw())
		for _, spn := range spans {
			text.Style(r.Kind, r.Parameter, spn.Pos, spn.Pos+spn.Len)
		}
		cnt += len(spans)
		tracer().Debugf("highlight: %d spans for %q", len(spans), r.Pattern.String())
	}
	return cnt, nil
}

// utf8View converts a text buffer to a Go string, together with a table which
// maps each byte offset at a rune boundary (and the end of the string) to a
// code unit position.
func utf8View(text cclip.TextBuffer) (string, []uint64) {
	runes := utf16.Decode(text.Units())
	var sb strings.Builder
	offsets := make([]uint64, 0, len(runes)+1)
	var pos uint64
	for _, r := range runes {
		start := sb.Len()
		sb.WriteRune(r)
		for i := start; i < sb.Len(); i++ {
			offsets = append(offsets, pos) // offsets inside a rune map to its start
		}
		if r > 0xffff {
			pos += 2
		} else {
			pos++
		}
	}
	offsets = append(offsets, pos)
	return sb.String(), offsets
}
