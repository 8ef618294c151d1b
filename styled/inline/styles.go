/*
Package inline reads annotated text from inline HTML.

Only inline formatting is recognized:

	<b>, <strong>         → styled.Bold
	<i>, <em>             → styled.Italic
	<u>, <ins>            → styled.Underline
	<font color="…">      → styled.Color
	<span style="color:…">→ styled.Color
	<br>                  → newline

Colors have to match an entry of styled.Palette, by name or by #rrggbb notation.
Other elements contribute their text content only.
*/
package inline

import (
	"strings"

	"github.com/npillmayer/cclip/styled"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'cclip'.
func tracer() tracing.Trace {
	return tracing.Select("cclip")
}

var elementKinds = map[string]styled.Kind{
	"b":      styled.Bold,
	"strong": styled.Bold,
	"i":      styled.Italic,
	"em":     styled.Italic,
	"u":      styled.Underline,
	"ins":    styled.Underline,
}

// KindFromHTMLName returns the kind of formatting an HTML element stands for.
// Block is not returned for any element, as every text is a block already.
func KindFromHTMLName(name string) (styled.Kind, bool) {
	k, ok := elementKinds[strings.ToLower(name)]
	return k, ok
}

// HTMLName returns the name of the element used for a kind of formatting
// in HTML output.
func HTMLName(k styled.Kind) string {
	switch k {
	case styled.Block:
		return "pre"
	case styled.Bold:
		return "b"
	case styled.Italic:
		return "i"
	case styled.Underline:
		return "u"
	case styled.Color:
		return "span"
	}
	return ""
}

// colorOf finds a palette color set for an element, either by a `color`
// attribute or by a `color` property in a `style` attribute.
func colorOf(n *html.Node) (uint32, bool) {
	for _, attr := range n.Attr {
		switch strings.ToLower(attr.Key) {
		case "color":
			if strings.EqualFold(n.Data, "font") {
				return styled.ColorIndex(attr.Val)
			}
		case "style":
			for _, decl := range strings.Split(attr.Val, ";") {
				prop, val, ok := strings.Cut(decl, ":")
				if ok && strings.EqualFold(strings.TrimSpace(prop), "color") {
					if c, found := styled.ColorIndex(val); found {
						return c, true
					}
					tracer().Debugf("inline html: color %q not in palette", val)
				}
			}
		}
	}
	return 0, false
}
