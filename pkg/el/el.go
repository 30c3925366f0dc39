// Package el is the view-building DSL. Constructors accept a mixed variadic
// argument list: attributes, styles, event handlers, child nodes and text.
//
//	el.Div(
//	    el.Style("display", "flex"),
//	    el.H1(el.Text("Counter")),
//	    el.Button(el.OnClick(func() vdom.Msg { return Inc{} }), el.Text("+")),
//	)
//
// Construction errors are programming errors, so the builder panics rather
// than returning them.
package el

import (
	"fmt"

	"github.com/lumenui/lumen/pkg/surface"
	"github.com/lumenui/lumen/pkg/vdom"
)

// On binds an event handler when passed to a constructor.
type On struct {
	Name string
	Fn   vdom.HandlerFunc
}

// El builds an element node from mixed arguments. Recognized argument
// types: vdom.Attribute, vdom.Style, On, *vdom.VNode, string (appended as a
// text child), []any (flattened). Anything else panics.
func El(tag string, args ...any) *vdom.VNode {
	n := vdom.NewNode(tag)
	apply(n, args)
	return n
}

func apply(n *vdom.VNode, args []any) {
	for _, arg := range args {
		var err error
		switch v := arg.(type) {
		case nil:
			// Skipped, so callers can pass optional parts.
		case vdom.Attribute:
			err = n.AddAttribute(v)
		case vdom.Style:
			err = n.AddStyle(v)
		case On:
			err = n.AddEventHandler(v.Name, v.Fn)
		case *vdom.VNode:
			err = n.AddChild(v)
		case string:
			err = n.AddChild(vdom.NewText(v))
		case []any:
			apply(n, v)
		default:
			panic(fmt.Sprintf("el: unsupported argument type %T for <%s>", arg, n.Tag))
		}
		if err != nil {
			panic(fmt.Sprintf("el: building <%s>: %v", n.Tag, err))
		}
	}
}

// Text creates a text node.
func Text(value string) *vdom.VNode {
	return vdom.NewText(value)
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *vdom.VNode {
	return vdom.NewText(fmt.Sprintf(format, args...))
}

// Attr creates a key/value attribute.
func Attr(key, value string) vdom.Attribute {
	return vdom.Pair(key, value)
}

// Toggle creates a present boolean attribute, e.g. "disabled".
func Toggle(key string) vdom.Attribute {
	return vdom.Toggle(key, true)
}

// ToggleIf creates a boolean attribute that renders only when present.
func ToggleIf(key string, present bool) vdom.Attribute {
	return vdom.Toggle(key, present)
}

// Style creates a scoped style declaration.
func Style(property, value string) vdom.Style {
	return vdom.Decl(property, value)
}

// Pseudo creates a pseudo-class style block, e.g. Pseudo("hover", ...).
func Pseudo(name string, body ...vdom.Style) vdom.Style {
	return vdom.PseudoClass(name, body...)
}

// Handler binds fn to the named event.
func Handler(name string, fn vdom.HandlerFunc) On {
	return On{Name: name, Fn: fn}
}

// Msg0 lifts a no-argument message constructor into a handler that ignores
// the platform event.
func Msg0(name string, fn func() vdom.Msg) On {
	return On{Name: name, Fn: func(surface.Event) vdom.Msg { return fn() }}
}
