// Package errors provides structured, coded errors for the facet CLI and
// configuration layer.
//
// Every error carries a stable code ("F101"), a category, and optional
// extras: file location with surrounding context, a fix suggestion, an
// example, and a documentation link. The formatter renders these as a
// readable terminal message, a compact single line, or JSON.
//
// Usage:
//
//	return errors.New("F101").
//		WithLocation(path, line, 0).
//		WithSuggestion(`set "port" to a number between 1 and 65535`)
package errors
