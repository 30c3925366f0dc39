package vdom

import (
	"strings"
	"testing"
)

func TestMarkupNode(t *testing.T) {
	n := newElem("v1", "div",
		newElem("v2", "input"),
		NewText("hi"),
	)
	n.Attributes = []Attribute{
		Pair("class", "box"),
		Toggle("disabled", true),
		Toggle("hidden", false),
	}

	got := n.Markup()
	want := `<div id="v1" class="box" disabled><input id="v2"></input>hi</div>`
	if got != want {
		t.Errorf("Markup =\n  %q\nwant\n  %q", got, want)
	}
}

func TestMarkupSkipsExplicitID(t *testing.T) {
	n := newElem("v1", "div")
	n.Attributes = []Attribute{Pair("id", "other"), Pair("class", "x")}

	got := n.Markup()
	if strings.Count(got, "id=") != 1 {
		t.Errorf("Markup emitted the id attribute twice: %q", got)
	}
	if strings.Contains(got, "other") {
		t.Errorf("explicit id attribute leaked into markup: %q", got)
	}
}

func TestMarkupEscapes(t *testing.T) {
	n := newElem("v1", "div", NewText(`<script>"x"</script>`))
	n.Attributes = []Attribute{Pair("title", `a"b<c`)}

	got := n.Markup()
	if strings.Contains(got, "<script>") {
		t.Errorf("text content not escaped: %q", got)
	}
	if !strings.Contains(got, `title="a&quot;b&lt;c"`) {
		t.Errorf("attribute value not escaped: %q", got)
	}
}

func TestStyleRules(t *testing.T) {
	child := newElem("v2", "span")
	child.Styles = []Style{
		Decl("color", "#000"),
		PseudoClass("hover", Decl("color", "#999")),
	}
	root := newElem("v1", "div", child, newElem("v3", "span"))

	rules := root.StyleRules()
	want := []string{
		"#v2 {color: #000;}",
		"#v2:hover {color: #999;}",
	}
	if len(rules) != len(want) {
		t.Fatalf("rules = %v, want %v", rules, want)
	}
	for i := range want {
		if rules[i] != want[i] {
			t.Errorf("rules[%d] = %q, want %q", i, rules[i], want[i])
		}
	}
}
