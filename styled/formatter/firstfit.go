package formatter

import (
	"bufio"
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

var setupGraphemes sync.Once

/*
Wikipedia:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)

Words are the segments between UAX#14 line break opportunities, including
trailing spaces. Widths are measured in ‘en’s according to UAX#11.
*/
func firstFit(para string, linewidth int, context *uax11.Context) []int {
	if linewidth <= 0 || para == "" {
		return nil
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(para)))
	breaks := make([]int, 0, 8)
	spaceleft := linewidth
	pos, linestart := 0, 0
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		fraglen := uax11.StringWidth(grapheme.StringFromString(frag), context)
		if fraglen > spaceleft && pos > linestart {
			T().P("format", "console").Debugf("break @ %d", pos)
			breaks = append(breaks, pos)
			linestart = pos
			spaceleft = linewidth
		}
		spaceleft -= fraglen
		pos += len(frag)
	}
	return breaks
}
