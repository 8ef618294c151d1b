package replace

import (
	"fmt"
	"unicode/utf16"

	"github.com/npillmayer/cclip"
)

// Pattern is a pair of a search sequence and its replacement, both given in
// code units.
type Pattern struct {
	Search  []uint16
	Replace []uint16
}

// NewPattern creates a pattern from a pair of strings. The search string must
// not be empty.
func NewPattern(search, replace string) (Pattern, error) {
	if search == "" {
		return Pattern{}, fmt.Errorf("%w: empty search pattern", cclip.ErrIllegalArguments)
	}
	return Pattern{
		Search:  utf16.Encode([]rune(search)),
		Replace: utf16.Encode([]rune(replace)),
	}, nil
}

func (p Pattern) String() string {
	return fmt.Sprintf("%q→%q", string(utf16.Decode(p.Search)), string(utf16.Decode(p.Replace)))
}

// PatternList is an ordered list of patterns. The order encodes priority:
// earlier patterns win over later ones matching at the same position.
type PatternList []Pattern

// NewPatternList creates a pattern list from (search, replace) string pairs,
// given as a flat list: search₁, replace₁, search₂, replace₂, …
func NewPatternList(pairs ...string) (PatternList, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of pattern strings", cclip.ErrIllegalArguments)
	}
	list := make(PatternList, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		p, err := NewPattern(pairs[i], pairs[i+1])
		if err != nil {
			return nil, fmt.Errorf("pattern #%d: %w", i/2, err)
		}
		list = append(list, p)
	}
	return list, nil
}

// Match is the result of a successful pattern search: the code unit offset of
// the match and the index of the matching pattern in the pattern list.
type Match struct {
	Offset  uint64
	Pattern int
}

// Find searches text, starting at position from, for the leftmost position at which
// any of the patterns matches. If more than one pattern matches at this position,
// the pattern with the lowest index wins. Patterns with empty search sequences
// never match.
//
// If no pattern matches in [from…text.Len()), Find returns false.
func Find(text cclip.TextBuffer, from uint64, patterns PatternList) (Match, bool) {
	if len(patterns) == 0 {
		return Match{}, false
	}
	for pos := from; pos < text.Len(); pos++ {
		for i, p := range patterns {
			if text.MatchesAt(pos, p.Search) {
				return Match{Offset: pos, Pattern: i}, true
			}
		}
	}
	return Match{}, false
}
