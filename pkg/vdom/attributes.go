package vdom

// AttrKind discriminates attribute variants.
type AttrKind uint8

const (
	AttrPair   AttrKind = iota // key="value"
	AttrToggle                 // bare key, emitted iff Present
)

// Attribute is a single element attribute: either a key/value pair or a
// boolean toggle. Attributes are immutable once added to a node.
type Attribute struct {
	Kind    AttrKind
	Key     string
	Value   string // AttrPair only
	Present bool   // AttrToggle only
}

// Pair creates a key="value" attribute.
func Pair(key, value string) Attribute {
	return Attribute{Kind: AttrPair, Key: key, Value: value}
}

// Toggle creates a boolean attribute rendered as a bare key iff present.
func Toggle(key string, present bool) Attribute {
	return Attribute{Kind: AttrToggle, Key: key, Present: present}
}

// IsPair returns true for key/value attributes.
func (a Attribute) IsPair() bool {
	return a.Kind == AttrPair
}
