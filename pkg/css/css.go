// Package css provides value constructors for style declarations.
package css

import "fmt"

// Rgb formats an rgb() color.
func Rgb(r, g, b uint8) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

// Rgba formats an rgba() color.
func Rgba(r, g, b uint8, a float64) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", r, g, b, a)
}

// Hex passes a hex color literal through, e.g. "#0f172a".
func Hex(x string) string { return x }

// Px formats a pixel length.
func Px(n int) string { return fmt.Sprintf("%dpx", n) }

// Em formats an em length.
func Em(n float64) string { return fmt.Sprintf("%gem", n) }

// Percent formats a percentage.
func Percent(n float64) string { return fmt.Sprintf("%g%%", n) }
