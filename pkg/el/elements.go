// Element constructors, one per common tag.
package el

import "github.com/lumenui/lumen/pkg/vdom"

func Div(args ...any) *vdom.VNode {
	return El("div", args...)
}
func Span(args ...any) *vdom.VNode {
	return El("span", args...)
}
func P(args ...any) *vdom.VNode {
	return El("p", args...)
}
func H1(args ...any) *vdom.VNode {
	return El("h1", args...)
}
func H2(args ...any) *vdom.VNode {
	return El("h2", args...)
}
func H3(args ...any) *vdom.VNode {
	return El("h3", args...)
}
func Button(args ...any) *vdom.VNode {
	return El("button", args...)
}
func Input(args ...any) *vdom.VNode {
	return El("input", args...)
}
func Label(args ...any) *vdom.VNode {
	return El("label", args...)
}
func Form(args ...any) *vdom.VNode {
	return El("form", args...)
}
func Ul(args ...any) *vdom.VNode {
	return El("ul", args...)
}
func Ol(args ...any) *vdom.VNode {
	return El("ol", args...)
}
func Li(args ...any) *vdom.VNode {
	return El("li", args...)
}
func A(args ...any) *vdom.VNode {
	return El("a", args...)
}
func Img(args ...any) *vdom.VNode {
	return El("img", args...)
}
func Header(args ...any) *vdom.VNode {
	return El("header", args...)
}
func Footer(args ...any) *vdom.VNode {
	return El("footer", args...)
}
func Main(args ...any) *vdom.VNode {
	return El("main", args...)
}
func Nav(args ...any) *vdom.VNode {
	return El("nav", args...)
}
func Section(args ...any) *vdom.VNode {
	return El("section", args...)
}
func Pre(args ...any) *vdom.VNode {
	return El("pre", args...)
}
func Code(args ...any) *vdom.VNode {
	return El("code", args...)
}
