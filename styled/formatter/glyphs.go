package formatter

import (
	"fmt"

	"github.com/npillmayer/cclip"
	"github.com/npillmayer/cclip/styled"
	"github.com/npillmayer/cclip/styled/inline"
)

// colorGlyphs holds the opening tags for the palette colors.
var colorGlyphs = func() [len(styled.Palette)]string {
	var g [len(styled.Palette)]string
	for i, c := range styled.Palette {
		g[i] = "<" + inline.HTMLName(styled.Color) + ` style="color:` + c.Hex + `">`
	}
	return g
}()

// GlyphFor returns the HTML markup for an annotation.
//
// Every kind of package styled has a markup representation, using the element
// names of package inline. Annotations of kind Color are supported for
// parameters selecting an entry of styled.Palette only.
// Unsupported annotations result in cclip.ErrUnsupportedGlyph; they are never
// silently dropped.
func GlyphFor(a styled.Annotation) (string, error) {
	name := inline.HTMLName(a.Kind)
	if name == "" {
		return "", fmt.Errorf("%w: %v", cclip.ErrUnsupportedGlyph, a.Kind)
	}
	if a.Kind == styled.Color && int(a.Parameter) >= len(colorGlyphs) {
		return "", fmt.Errorf("%w: color #%d not in palette", cclip.ErrUnsupportedGlyph, a.Parameter)
	}
	switch {
	case a.Closing:
		return "</" + name + ">", nil
	case a.Kind == styled.Color:
		return colorGlyphs[a.Parameter], nil
	}
	return "<" + name + ">", nil
}
