package replace

import (
	"fmt"

	"github.com/npillmayer/cclip"
	"github.com/npillmayer/cclip/styled"
)

// Rewrite replaces every non-overlapping match of a pattern list in a text and
// returns the new text together with a renormalized copy of its annotations.
// Neither text nor annotations are modified.
//
// Matches are found with Find, starting at position 0. After each match the
// search continues right after the matched search sequence, i.e., replacement
// text is never searched again and overlapping occurrences are never considered.
//
// Rewrite works in two passes: it first measures the length of the resulting
// text, then writes it into a buffer of exactly this size. For every match,
// annotations are shifted by styled.AnnotationSet.ShiftPositions in terms of
// the output text's positions, before the replacement is written.
//
// Possible errors are cclip.ErrIndexOutOfBounds for invalid annotations,
// cclip.ErrAllocationFailed if the result would exceed cclip.MaxTextLen,
// and cclip.ErrSizeMismatch if measuring and writing disagree.
func Rewrite(text cclip.TextBuffer, annotations styled.AnnotationSet, patterns PatternList) (
	cclip.TextBuffer, styled.AnnotationSet, error) {
	//
	if err := annotations.Validate(text.Len()); err != nil {
		return cclip.TextBuffer{}, styled.AnnotationSet{}, err
	}
	size, cnt, err := measure(text, patterns)
	if err != nil {
		return cclip.TextBuffer{}, styled.AnnotationSet{}, err
	}
	tracer().Debugf("rewrite: %d matches, text length %d → %d", cnt, text.Len(), size)
	if cnt == 0 {
		return text, annotations.Clone(), nil
	}
	return write(text, annotations, patterns, size)
}

// RewriteText is a convenience wrapper around Rewrite for styled texts.
func RewriteText(t *styled.Text, patterns PatternList) (*styled.Text, error) {
	if t == nil {
		return nil, cclip.ErrIllegalArguments
	}
	text, annotations, err := Rewrite(t.Raw(), t.Annotations(), patterns)
	if err != nil {
		return nil, err
	}
	return styled.NewText(text, annotations)
}

// measure computes the length of the rewritten text, together with the
// number of matches.
func measure(text cclip.TextBuffer, patterns PatternList) (uint64, int, error) {
	var size, pos uint64
	cnt := 0
	for {
		m, ok := Find(text, pos, patterns)
		if !ok {
			break
		}
		p := patterns[m.Pattern]
		size += m.Offset - pos         // unmatched gap
		size += uint64(len(p.Replace)) // replacement
		pos = m.Offset + uint64(len(p.Search))
		cnt++
		if size > cclip.MaxTextLen {
			tracer().Errorf("rewrite: text would exceed maximum length")
			return 0, cnt, cclip.ErrAllocationFailed
		}
	}
	size += text.Len() - pos // trailing gap
	if size > cclip.MaxTextLen {
		tracer().Errorf("rewrite: text would exceed maximum length")
		return 0, cnt, cclip.ErrAllocationFailed
	}
	return size, cnt, nil
}

// write replays the matches of measure and writes the rewritten text into a
// buffer of the measured size.
func write(text cclip.TextBuffer, annotations styled.AnnotationSet, patterns PatternList,
	size uint64) (cclip.TextBuffer, styled.AnnotationSet, error) {
	//
	out, err := cclip.NewTextBuilder(size)
	if err != nil {
		return cclip.TextBuffer{}, styled.AnnotationSet{}, err
	}
	working := annotations.Clone()
	var pos uint64 // input cursor; the output cursor is out.Len()
	for {
		m, ok := Find(text, pos, patterns)
		if !ok {
			break
		}
		p := patterns[m.Pattern]
		start := out.Len() + (m.Offset - pos) // match position in output text
		working.ShiftPositions(start, uint64(len(p.Search)), uint64(len(p.Replace)))
		if err = out.AppendText(text, pos, m.Offset); err == nil {
			err = out.Append(p.Replace)
		}
		if err != nil {
			return cclip.TextBuffer{}, styled.AnnotationSet{}, sizeError(err, size)
		}
		pos = m.Offset + uint64(len(p.Search))
	}
	if err = out.AppendText(text, pos, text.Len()); err != nil {
		return cclip.TextBuffer{}, styled.AnnotationSet{}, sizeError(err, size)
	}
	if out.Len() != out.Cap() {
		tracer().Errorf("rewrite: measured %d code units, wrote %d", size, out.Len())
		return cclip.TextBuffer{}, styled.AnnotationSet{},
			fmt.Errorf("%w: measured %d code units, wrote %d", cclip.ErrSizeMismatch, size, out.Len())
	}
	return out.Text(), working, nil
}

func sizeError(err error, size uint64) error {
	tracer().Errorf("rewrite: writing beyond measured size %d: %v", size, err)
	return fmt.Errorf("rewrite into %d code units: %w", size, err)
}
