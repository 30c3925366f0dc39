// Package routepath models URL paths as segment lists and matches them
// against patterns. Matching is positional: a pattern matches a path only
// when both have the same number of segments.
package routepath

import "strings"

// SegmentKind discriminates pattern segments.
type SegmentKind uint8

const (
	// Static matches exactly its literal value.
	Static SegmentKind = iota
	// Wildcard matches any single segment.
	Wildcard
	// Binder matches any single segment and captures its value.
	Binder
)

// Segment is one path or pattern segment.
type Segment struct {
	Kind  SegmentKind
	Value string // Literal for Static, name for Binder
}

// Path is a parsed URL path.
type Path []Segment

// Parse splits a concrete URL path into static segments. The query string
// is stripped and empty segments are dropped, so "/", "" and "//" all parse
// to the index path.
func Parse(raw string) Path {
	raw, _, _ = strings.Cut(raw, "?")
	var p Path
	for _, seg := range strings.Split(raw, "/") {
		if seg == "" {
			continue
		}
		p = append(p, Segment{Kind: Static, Value: seg})
	}
	return p
}

// ParsePattern parses a route pattern. Segments starting with ":" bind,
// "*" matches anything, everything else is literal.
//
//	ParsePattern("/users/:id/posts/*")
func ParsePattern(raw string) Path {
	raw, _, _ = strings.Cut(raw, "?")
	var p Path
	for _, seg := range strings.Split(raw, "/") {
		switch {
		case seg == "":
		case seg == "*":
			p = append(p, Segment{Kind: Wildcard})
		case strings.HasPrefix(seg, ":"):
			p = append(p, Segment{Kind: Binder, Value: seg[1:]})
		default:
			p = append(p, Segment{Kind: Static, Value: seg})
		}
	}
	return p
}

// IsIndex reports whether the path has no segments.
func (p Path) IsIndex() bool { return len(p) == 0 }

// String renders the path with a leading slash.
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, seg := range p {
		b.WriteByte('/')
		switch seg.Kind {
		case Wildcard:
			b.WriteByte('*')
		case Binder:
			b.WriteByte(':')
			b.WriteString(seg.Value)
		default:
			b.WriteString(seg.Value)
		}
	}
	return b.String()
}

// Matches reports whether path satisfies pattern. Lengths must be equal;
// static segments compare literally and wildcard or binder segments accept
// anything.
func Matches(pattern, path Path) bool {
	if len(pattern) != len(path) {
		return false
	}
	for i, ps := range pattern {
		if ps.Kind == Static && path[i].Kind == Static && ps.Value != path[i].Value {
			return false
		}
	}
	return true
}

// Bind matches and extracts binder captures by name. The second return is
// false when the pattern does not match.
func Bind(pattern, path Path) (map[string]string, bool) {
	if !Matches(pattern, path) {
		return nil, false
	}
	binds := make(map[string]string)
	for i, ps := range pattern {
		if ps.Kind == Binder {
			binds[ps.Value] = path[i].Value
		}
	}
	return binds, true
}
