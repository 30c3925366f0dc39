package surface

import (
	"testing"
)

func TestMemoryDocumentMount(t *testing.T) {
	doc := NewMemoryDocument()
	err := doc.Mount(`<div id="v1" class="box"><span id="v2">hello</span></div>`)
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}

	el, err := doc.Element("v2")
	if err != nil {
		t.Fatalf("Element(v2): %v", err)
	}
	mem := el.(*memElement)
	if mem.Tag() != "span" {
		t.Errorf("tag = %q, want span", mem.Tag())
	}
	if mem.Text() != "hello" {
		t.Errorf("text = %q, want hello", mem.Text())
	}

	if _, err := doc.Element("missing"); err == nil {
		t.Error("Element on unknown id must fail")
	}
}

func TestMemoryDocumentRemountRebuildsIndex(t *testing.T) {
	doc := NewMemoryDocument()
	if err := doc.Mount(`<div id="v1"></div>`); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if err := doc.Mount(`<div id="v2"></div>`); err != nil {
		t.Fatalf("Mount: %v", err)
	}

	if _, err := doc.Element("v1"); err == nil {
		t.Error("stale id survived remount")
	}
	if _, err := doc.Element("v2"); err != nil {
		t.Errorf("Element(v2): %v", err)
	}
}

func TestSetTextReplacesContent(t *testing.T) {
	doc := NewMemoryDocument()
	err := doc.Mount(`<div id="v1"><span id="v2">a</span>tail</div>`)
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}

	el, err := doc.Element("v1")
	if err != nil {
		t.Fatalf("Element: %v", err)
	}
	if err := el.SetText("replaced"); err != nil {
		t.Fatalf("SetText: %v", err)
	}

	mem := el.(*memElement)
	if mem.Text() != "replaced" {
		t.Errorf("text = %q, want replaced", mem.Text())
	}
	if mem.ChildCount() != 0 {
		t.Error("SetText must discard child elements")
	}
	// Discarded children drop out of the id index.
	if _, err := doc.Element("v2"); err == nil {
		t.Error("discarded child still resolvable by id")
	}
}

func TestRuleSurface(t *testing.T) {
	doc := NewMemoryDocument()
	rules := []string{
		"#v1 {color: #000;}",
		"#v1:hover {color: #999;}",
		"#v2 {display: flex;}",
	}
	for _, r := range rules {
		if err := doc.InsertRule(r); err != nil {
			t.Fatalf("InsertRule: %v", err)
		}
	}

	if err := doc.DeleteRules("v1"); err != nil {
		t.Fatalf("DeleteRules: %v", err)
	}
	got := doc.Rules()
	if len(got) != 1 || got[0] != "#v2 {display: flex;}" {
		t.Errorf("rules after delete = %v, want only the v2 rule", got)
	}
}

func TestDeleteRulesMatchesSelectorBoundary(t *testing.T) {
	doc := NewMemoryDocument()
	rules := []string{
		"#v1 {color: #000;}",
		"#v1:hover {color: #999;}",
		"#v11 {display: flex;}",
	}
	for _, r := range rules {
		if err := doc.InsertRule(r); err != nil {
			t.Fatalf("InsertRule: %v", err)
		}
	}

	// "v1" is a prefix of "v11"; only the v1 rules may go.
	if err := doc.DeleteRules("v1"); err != nil {
		t.Fatalf("DeleteRules: %v", err)
	}
	got := doc.Rules()
	if len(got) != 1 || got[0] != "#v11 {display: flex;}" {
		t.Errorf("rules after delete = %v, want only the v11 rule", got)
	}
}

func TestRuleScopedTo(t *testing.T) {
	cases := []struct {
		rule, id string
		want     bool
	}{
		{"#v1 {color: #000;}", "v1", true},
		{"#v1:hover {color: #999;}", "v1", true},
		{"#v1{color: #000;}", "v1", true},
		{"#v1", "v1", true},
		{"#v11 {display: flex;}", "v1", false},
		{"#v1 {display: flex;}", "v11", false},
		{".v1 {color: #000;}", "v1", false},
	}
	for _, c := range cases {
		if got := RuleScopedTo(c.rule, c.id); got != c.want {
			t.Errorf("RuleScopedTo(%q, %q) = %v, want %v", c.rule, c.id, got, c.want)
		}
	}
}

func TestFireEventWithoutListener(t *testing.T) {
	doc := NewMemoryDocument()
	if err := doc.Mount(`<div id="v1"></div>`); err != nil {
		t.Fatalf("Mount: %v", err)
	}

	// No listener registered: the event is dropped, not an error.
	if err := doc.FireEvent("v1", "click", nil); err != nil {
		t.Errorf("FireEvent: %v", err)
	}
	if err := doc.FireEvent("ghost", "click", nil); err == nil {
		t.Error("FireEvent on unknown element must fail")
	}
}

func TestListenerReplacement(t *testing.T) {
	doc := NewMemoryDocument()
	if err := doc.Mount(`<button id="v1"></button>`); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	el, err := doc.Element("v1")
	if err != nil {
		t.Fatalf("Element: %v", err)
	}

	var got []string
	el.AddEventListener("click", func(Event) { got = append(got, "first") })
	el.AddEventListener("click", func(Event) { got = append(got, "second") })

	if err := doc.FireEvent("v1", "click", nil); err != nil {
		t.Fatalf("FireEvent: %v", err)
	}
	if len(got) != 1 || got[0] != "second" {
		t.Errorf("delivered = %v, want [second] (one listener per name)", got)
	}
}
