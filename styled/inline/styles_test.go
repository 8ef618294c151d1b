package inline

import (
	"testing"

	"github.com/npillmayer/cclip/styled"
	"golang.org/x/net/html"
)

func TestKindNames(t *testing.T) {
	for _, k := range styled.Kinds() {
		if HTMLName(k) == "" {
			t.Errorf("kind %v has no HTML name", k)
		}
	}
	if k, ok := KindFromHTMLName("STRONG"); !ok || k != styled.Bold {
		t.Errorf("expected <STRONG> to be bold, have %v", k)
	}
	if _, ok := KindFromHTMLName("pre"); ok {
		t.Errorf("expected <pre> not to be an inline formatting")
	}
}

func TestColorOf(t *testing.T) {
	tests := []struct {
		node  *html.Node
		color uint32
		ok    bool
	}{
		{&html.Node{Data: "font", Attr: []html.Attribute{{Key: "color", Val: "navy"}}}, 4, true},
		{&html.Node{Data: "span", Attr: []html.Attribute{{Key: "color", Val: "navy"}}}, 0, false},
		{&html.Node{Data: "span", Attr: []html.Attribute{{Key: "style", Val: "COLOR: Grey"}}}, 8, true},
		{&html.Node{Data: "b", Attr: []html.Attribute{{Key: "style", Val: "color:#123456"}}}, 0, false},
	}
	for i, test := range tests {
		c, ok := colorOf(test.node)
		if ok != test.ok || c != test.color {
			t.Errorf("test %d: expected color %d/%v, have %d/%v", i, test.color, test.ok, c, ok)
		}
	}
}
