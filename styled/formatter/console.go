package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"io"
	"os"
	"strings"
	"unicode/utf16"

	"github.com/fatih/color"
	"github.com/npillmayer/cclip/styled"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Console is a type for previewing annotated text on a console with
// a fixed width font. Bold, Italic and Underline are displayed with the
// respective terminal attributes, palette colors with the nearest of the 16
// standard terminal colors. Block annotations have no visual effect.
//
// Long lines are wrapped at line break opportunities (UAX#14), measuring
// character widths according to UAX#11. A LineWidth of 0 disables wrapping.
type Console struct {
	LineWidth int
	Context   *uax11.Context
	colorize  bool
}

// consoleColors maps palette entries to terminal colors.
var consoleColors = [len(styled.Palette)]color.Attribute{
	color.FgBlack, color.FgRed, color.FgGreen, color.FgYellow,
	color.FgBlue, color.FgMagenta, color.FgCyan, color.FgWhite,
	color.FgHiBlack, color.FgHiRed, color.FgHiGreen, color.FgHiYellow,
	color.FgHiBlue, color.FgHiMagenta, color.FgHiCyan, color.FgHiWhite,
}

// NewConsole creates a console previewer. If context is nil, a context
// will be created based on heuristics from the user environment.
// Colors and attributes are used if the output is a terminal.
func NewConsole(linewidth int, context *uax11.Context) *Console {
	if context == nil {
		context = uax11.ContextFromEnvironment()
	}
	return &Console{
		LineWidth: linewidth,
		Context:   context,
		colorize:  !color.NoColor,
	}
}

// Colorize switches the use of terminal attributes on or off.
func (c *Console) Colorize(on bool) *Console {
	c.colorize = on
	return c
}

// Fprint outputs annotated text to w.
func (c *Console) Fprint(w io.Writer, text *styled.Text) error {
	s, offsets := byteOffsets(text)
	set := text.Annotations()
	if err := set.Validate(text.Raw().Len()); err != nil {
		return err
	}
	breaks := make(map[int]bool)
	parastart := 0
	for _, para := range strings.SplitAfter(s, "\n") {
		for _, b := range firstFit(strings.TrimSuffix(para, "\n"), c.LineWidth, c.Context) {
			breaks[parastart+b] = true
		}
		parastart += len(para)
	}
	var st consoleStyle
	pos := 0
	for _, a := range set.Sorted() {
		at := offsets[a.Position]
		if err := c.printRun(w, s, pos, at, breaks, st); err != nil {
			return err
		}
		pos = max(pos, at)
		st.apply(a)
	}
	if err := c.printRun(w, s, pos, len(s), breaks, st); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// printRun outputs s[from:to], all in the same style, inserting newlines at
// line breaks.
func (c *Console) printRun(w io.Writer, s string, from, to int, breaks map[int]bool, st consoleStyle) error {
	if from >= to {
		return nil
	}
	start := from
	for i := from; i < to; i++ {
		if !breaks[i] {
			continue
		}
		if err := c.printStyled(w, s[start:i], st); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		start = i
	}
	return c.printStyled(w, s[start:to], st)
}

func (c *Console) printStyled(w io.Writer, s string, st consoleStyle) error {
	attrs := st.attributes()
	if s == "" || !c.colorize || len(attrs) == 0 {
		_, err := io.WriteString(w, s)
		return err
	}
	out := color.New(attrs...)
	out.EnableColor()
	_, err := out.Fprint(w, s)
	return err
}

// consoleStyle is the set of active formattings at a text position.
type consoleStyle struct {
	bold, italic, underline int
	colors                  []uint32 // stack of active colors
}

func (st *consoleStyle) apply(a styled.Annotation) {
	d := 1
	if a.Closing {
		d = -1
	}
	switch a.Kind {
	case styled.Bold:
		st.bold += d
	case styled.Italic:
		st.italic += d
	case styled.Underline:
		st.underline += d
	case styled.Color:
		if !a.Closing {
			st.colors = append(st.colors, a.Parameter)
		} else if len(st.colors) > 0 {
			st.colors = st.colors[:len(st.colors)-1]
		}
	}
}

func (st consoleStyle) attributes() []color.Attribute {
	var attrs []color.Attribute
	if st.bold > 0 {
		attrs = append(attrs, color.Bold)
	}
	if st.italic > 0 {
		attrs = append(attrs, color.Italic)
	}
	if st.underline > 0 {
		attrs = append(attrs, color.Underline)
	}
	if n := len(st.colors); n > 0 && int(st.colors[n-1]) < len(consoleColors) {
		attrs = append(attrs, consoleColors[st.colors[n-1]])
	}
	return attrs
}

// byteOffsets converts the text of t to a Go string, together with a table
// mapping each code unit position (and the end of the text) to a byte offset.
// A position inside a surrogate pair maps to the start of the pair.
func byteOffsets(t *styled.Text) (string, []int) {
	units := t.Raw().Units()
	var sb strings.Builder
	offsets := make([]int, 0, len(units)+1)
	for _, r := range utf16.Decode(units) {
		offsets = append(offsets, sb.Len())
		if r > 0xffff {
			offsets = append(offsets, sb.Len())
		}
		sb.WriteRune(r)
	}
	offsets = append(offsets, sb.Len())
	return sb.String(), offsets
}

// --- Line width for terminals ----------------------------------------------

// DefaultLineWidth is the line width for previews not written to a terminal.
const DefaultLineWidth = 65

// LineWidthFromTerminal is a simple helper for finding a line width for
// previews. It checks wether w is a terminal, and if so it reads the
// terminal's width and derives the line width from it.
func LineWidthFromTerminal(w io.Writer) int {
	linewidth := DefaultLineWidth
	f, ok := w.(*os.File)
	if !ok {
		return linewidth
	}
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil {
			if width > 65 {
				linewidth = width - 10
			} else if width > 30 {
				linewidth = width - 5
			} else if width > 10 {
				linewidth = width
			} else {
				linewidth = 10
			}
		}
	}
	T().P("format", "console").Infof("setting line length to %d en", linewidth)
	return linewidth
}
