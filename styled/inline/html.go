package inline

import (
	"io"

	"github.com/npillmayer/cclip"
	"github.com/npillmayer/cclip/styled"
	"golang.org/x/net/html"
)

// InnerText creates a styled text for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that `InnerText` cannot respect CSS styling (including
// properties changing the visibility of the node's descendents).
// Therefore the resulting styled text is limited to inline formatting elements like
//
//	<strong> … </strong>
//	<i> … </i>
//
// etc. Clients should provide a paragraph-like element.
func InnerText(n *html.Node) (*styled.Text, error) {
	if n == nil {
		return nil, cclip.ErrIllegalArguments
	}
	b := styled.NewTextBuilder()
	if err := collectText(n, b); err != nil {
		return nil, err
	}
	return b.Text(), nil
}

// TextFromHTML creates a styled.Text from the textual content of an HTML fragment.
// The HTML fragment should reflect the content of a paragraph-like element.
func TextFromHTML(input io.Reader) (*styled.Text, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		tracer().Errorf("inline html: %v", err)
		return nil, err
	}
	b := styled.NewTextBuilder()
	for _, n := range nodes {
		if err = collectText(n, b); err != nil {
			return nil, err
		}
	}
	t := b.Text()
	tracer().Debugf("inline html: text of length %d with %d annotations", t.Raw().Len(), t.Annotations().Len())
	return t, nil
}

type formatting struct {
	kind  styled.Kind
	param uint32
}

func collectText(n *html.Node, b *styled.TextBuilder) error {
	var opened []formatting
	switch n.Type {
	case html.TextNode:
		return b.AppendString(n.Data)
	case html.ElementNode:
		switch n.Data {
		case "br":
			return b.AppendString("\n")
		case "script", "style", "head", "title":
			return nil
		}
		if k, ok := KindFromHTMLName(n.Data); ok {
			opened = append(opened, formatting{kind: k})
		}
		if c, ok := colorOf(n); ok {
			opened = append(opened, formatting{kind: styled.Color, param: c})
		}
		for _, f := range opened {
			if err := b.Open(f.kind, f.param); err != nil {
				return err
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectText(c, b); err != nil {
			return err
		}
	}
	for i := len(opened) - 1; i >= 0; i-- {
		if err := b.Close(opened[i].kind, opened[i].param); err != nil {
			return err
		}
	}
	return nil
}
