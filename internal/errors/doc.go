// Package errors provides structured, coded error messages for Lumen.
//
// Errors carry a stable code, a category, an optional fix suggestion and a
// documentation link, and format nicely for terminal output.
package errors
