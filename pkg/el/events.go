// Event handler shorthands.
package el

import "github.com/lumenui/lumen/pkg/vdom"

func OnClick(fn func() vdom.Msg) On {
	return Msg0("click", fn)
}
func OnInput(fn vdom.HandlerFunc) On {
	return Handler("input", fn)
}
func OnChange(fn vdom.HandlerFunc) On {
	return Handler("change", fn)
}
func OnSubmit(fn func() vdom.Msg) On {
	return Msg0("submit", fn)
}
func OnKeyDown(fn vdom.HandlerFunc) On {
	return Handler("keydown", fn)
}
func OnBlur(fn func() vdom.Msg) On {
	return Msg0("blur", fn)
}
func OnFocus(fn func() vdom.Msg) On {
	return Msg0("focus", fn)
}
func OnMouseEnter(fn func() vdom.Msg) On {
	return Msg0("mouseenter", fn)
}
func OnMouseLeave(fn func() vdom.Msg) On {
	return Msg0("mouseleave", fn)
}
