package routepath

import (
	"errors"
	"strings"
)

// Sanitization errors.
var (
	ErrBackslashInPath      = errors.New("path contains backslash")
	ErrNullByteInPath       = errors.New("path contains null byte")
	ErrInvalidPercentEscape = errors.New("invalid percent escape sequence")
	ErrPathEscapesRoot      = errors.New("path escapes root via ..")
)

// Canonicalize normalizes a raw URL path: multiple slashes collapse, "."
// segments drop, ".." segments resolve, and the trailing slash goes (except
// for root). Backslashes, NUL bytes, malformed percent escapes and ".."
// escaping the root are rejected. The query string is preserved untouched.
func Canonicalize(input string) (string, error) {
	path, query, hasQuery := strings.Cut(input, "?")

	if strings.Contains(path, "\\") {
		return "", ErrBackslashInPath
	}
	if strings.Contains(path, "\x00") || strings.Contains(strings.ToUpper(path), "%00") {
		return "", ErrNullByteInPath
	}
	if strings.Contains(path, "%") {
		if err := validatePercentEscapes(path); err != nil {
			return "", err
		}
	}

	var kept []string
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(kept) == 0 {
				return "", ErrPathEscapesRoot
			}
			kept = kept[:len(kept)-1]
		default:
			kept = append(kept, seg)
		}
	}

	out := "/" + strings.Join(kept, "/")
	if hasQuery {
		out += "?" + query
	}
	return out, nil
}

// ParseStrict canonicalizes and parses a raw path, rejecting what
// Canonicalize rejects. Parse is the lenient variant.
func ParseStrict(raw string) (Path, error) {
	clean, err := Canonicalize(raw)
	if err != nil {
		return nil, err
	}
	return Parse(clean), nil
}

// validatePercentEscapes checks that every "%" starts a valid %XX escape.
func validatePercentEscapes(path string) error {
	for i := 0; i < len(path); {
		if path[i] != '%' {
			i++
			continue
		}
		if i+2 >= len(path) || !isHexDigit(path[i+1]) || !isHexDigit(path[i+2]) {
			return ErrInvalidPercentEscape
		}
		i += 3
	}
	return nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
