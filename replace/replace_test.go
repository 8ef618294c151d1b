package replace

import (
	"errors"
	"testing"

	"github.com/npillmayer/cclip"
	"github.com/npillmayer/cclip/styled"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFindLeftmostThenPriority(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cclip")
	defer teardown()
	//
	patterns := mustPatterns(t, "ab", "X", "a", "Y")
	m, ok := Find(cclip.FromString("xaby"), 0, patterns)
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.Offset != 1 || m.Pattern != 0 {
		t.Errorf("expected match {1,0}, have %+v", m)
	}
}

func TestFindEarlierOffsetBeatsPriority(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cclip")
	defer teardown()
	//
	patterns := mustPatterns(t, "cd", "", "b", "")
	m, ok := Find(cclip.FromString("abcd"), 0, patterns)
	if !ok || m.Offset != 1 || m.Pattern != 1 {
		t.Errorf("expected match {1,1}, have %+v (%v)", m, ok)
	}
}

func TestFindListOrderNotLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cclip")
	defer teardown()
	//
	patterns := mustPatterns(t, "a", "1", "abc", "2")
	m, ok := Find(cclip.FromString("abc"), 0, patterns)
	if !ok || m.Pattern != 0 {
		t.Errorf("expected shorter pattern listed first to win, have %+v", m)
	}
}

func TestFindFromOffsetAndNotFound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cclip")
	defer teardown()
	//
	text := cclip.FromString("a-a-a")
	patterns := mustPatterns(t, "a", "b")
	m, ok := Find(text, 1, patterns)
	if !ok || m.Offset != 2 {
		t.Errorf("expected match at 2, have %+v", m)
	}
	if _, ok = Find(text, 5, patterns); ok {
		t.Errorf("expected no match at end of text")
	}
	if _, ok = Find(text, 0, nil); ok {
		t.Errorf("expected no match for empty pattern list")
	}
	if _, ok = Find(cclip.FromString("xyz"), 0, patterns); ok {
		t.Errorf("expected no match in text without pattern")
	}
	empty := PatternList{{Search: nil, Replace: []uint16{'!'}}}
	if _, ok = Find(text, 0, empty); ok {
		t.Errorf("expected empty search sequence never to match")
	}
}

func TestNewPatternList(t *testing.T) {
	if _, err := NewPatternList("a"); !errors.Is(err, cclip.ErrIllegalArguments) {
		t.Errorf("expected odd pattern list to be rejected, have %v", err)
	}
	if _, err := NewPatternList("", "x"); !errors.Is(err, cclip.ErrIllegalArguments) {
		t.Errorf("expected empty search to be rejected, have %v", err)
	}
}

func TestRewriteLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cclip")
	defer teardown()
	//
	text := cclip.FromString("a<b>&c")
	patterns := mustPatterns(t, "&", "&amp;", "<", "&lt;", ">", "&gt;")
	out, _, err := Rewrite(text, styled.AnnotationSet{}, patterns)
	if err != nil {
		t.Fatal(err.Error())
	}
	if out.String() != "a&lt;b&gt;&amp;c" {
		t.Errorf("unexpected rewrite result '%s'", out)
	}
	// Σ gaps + Σ replacements: gaps "a","b","","c" = 3, replacements 4+4+5 = 13
	if out.Len() != 16 {
		t.Errorf("expected length 16, have %d", out.Len())
	}
}

func TestRewriteNonOverlapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cclip")
	defer teardown()
	//
	patterns := mustPatterns(t, "aa", "b")
	out, _, err := Rewrite(cclip.FromString("aaaaa"), styled.AnnotationSet{}, patterns)
	if err != nil {
		t.Fatal(err.Error())
	}
	if out.String() != "bba" {
		t.Errorf("expected 'bba', have '%s'", out)
	}
	// replacement text is never searched again
	patterns = mustPatterns(t, "a", "aa")
	out, _, err = Rewrite(cclip.FromString("aba"), styled.AnnotationSet{}, patterns)
	if err != nil {
		t.Fatal(err.Error())
	}
	if out.String() != "aabaa" {
		t.Errorf("expected 'aabaa', have '%s'", out)
	}
}

func TestRewriteShiftsAnnotations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cclip")
	defer teardown()
	//
	// "x<y>z", bold around "y" and italic around everything
	text := cclip.FromString("x<y>z")
	annotations := styled.NewAnnotationSet(
		styled.Open(styled.Italic, 0, 0),
		styled.Open(styled.Bold, 0, 2),
		styled.Close(styled.Bold, 0, 3),
		styled.Close(styled.Italic, 0, 5),
	)
	patterns := mustPatterns(t, "<", "&lt;", ">", "&gt;")
	out, shifted, err := Rewrite(text, annotations, patterns)
	if err != nil {
		t.Fatal(err.Error())
	}
	if out.String() != "x&lt;y&gt;z" {
		t.Fatalf("unexpected rewrite result '%s'", out)
	}
	expect := []uint64{0, 5, 6, 11}
	for i, pos := range expect {
		if shifted.At(i).Position != pos {
			t.Errorf("annotation #%d: expected position %d, have %v", i, pos, shifted.At(i))
		}
	}
	if annotations.At(3).Position != 5 {
		t.Errorf("expected input annotations to stay untouched, have %v", annotations)
	}
}

func TestRewriteClampsAnnotationInsideMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cclip")
	defer teardown()
	//
	text := cclip.FromString("a\r\nb")
	annotations := styled.NewAnnotationSet(styled.Open(styled.Bold, 0, 2)) // between \r and \n
	patterns := mustPatterns(t, "\r\n", "\n")
	out, shifted, err := Rewrite(text, annotations, patterns)
	if err != nil {
		t.Fatal(err.Error())
	}
	if out.String() != "a\nb" || shifted.At(0).Position != 1 {
		t.Errorf("expected annotation to collapse to 1 in 'a\\nb', have %v in %q", shifted, out)
	}
}

func TestRewriteWithoutMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cclip")
	defer teardown()
	//
	text := cclip.FromString("plain")
	out, _, err := Rewrite(text, styled.AnnotationSet{}, nil)
	if err != nil || out.String() != "plain" {
		t.Errorf("expected unchanged text, have '%s' (%v)", out, err)
	}
	empty, _, err := Rewrite(cclip.TextBuffer{}, styled.AnnotationSet{}, mustPatterns(t, "a", "b"))
	if err != nil || !empty.IsVoid() {
		t.Errorf("expected void text, have '%s' (%v)", empty, err)
	}
}

func TestRewriteRejectsInvalidAnnotations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cclip")
	defer teardown()
	//
	annotations := styled.NewAnnotationSet(styled.Open(styled.Bold, 0, 9))
	_, _, err := Rewrite(cclip.FromString("abc"), annotations, mustPatterns(t, "a", "b"))
	if !errors.Is(err, cclip.ErrIndexOutOfBounds) {
		t.Errorf("expected index error, have %v", err)
	}
}

func TestWriteDetectsSizeMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cclip")
	defer teardown()
	//
	text := cclip.FromString("a<b")
	patterns := mustPatterns(t, "<", "&lt;")
	size, _, err := measure(text, patterns)
	if err != nil {
		t.Fatal(err.Error())
	}
	if size != 6 {
		t.Errorf("expected measured size 6, have %d", size)
	}
	for _, wrong := range []uint64{size - 1, size + 1} {
		_, _, err = write(text, styled.AnnotationSet{}, patterns, wrong)
		if !errors.Is(err, cclip.ErrSizeMismatch) {
			t.Errorf("size %d: expected size mismatch, have %v", wrong, err)
		}
	}
}

func TestRewriteText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cclip")
	defer teardown()
	//
	text := styled.TextFromString("a&b").Style(styled.Underline, 0, 2, 3)
	rewritten, err := RewriteText(text, mustPatterns(t, "&", "&amp;"))
	if err != nil {
		t.Fatal(err.Error())
	}
	annotations := rewritten.Annotations()
	if annotations.At(0).Position != 6 || annotations.At(1).Position != 7 {
		t.Errorf("expected underline at [6,7), have %v", annotations)
	}
}

// --- Helpers ---------------------------------------------------------------

func mustPatterns(t *testing.T, pairs ...string) PatternList {
	t.Helper()
	list := make(PatternList, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		if pairs[i] == "" { // allow empty replacement, not empty search
			t.Fatalf("empty search pattern in test")
		}
		p, err := NewPattern(pairs[i], pairs[i+1])
		if err != nil {
			t.Fatal(err.Error())
		}
		list = append(list, p)
	}
	return list
}
