package errors

import (
	"bufio"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryTheme    Category = "theme"
	CategoryGallery  Category = "gallery"
	CategoryPublish  Category = "publish"
	CategoryCLI      Category = "cli"
	CategoryInternal Category = "internal"
)

// Location represents a position in a configuration or palette file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	if l.Line > 0 {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return l.File
}

// FacetError is a structured error with a stable code, optional file
// location, and fix guidance.
type FacetError struct {
	// Code is a unique error identifier (e.g. "F101").
	Code string

	// Category is the error type (config, theme, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the file position where the error occurred.
	Location *Location

	// Context contains surrounding file lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example shows the correct form.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *FacetError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *FacetError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a file location to the error and captures the
// surrounding lines when the file is readable.
func (e *FacetError) WithLocation(file string, line, column int) *FacetError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *FacetError) WithSuggestion(s string) *FacetError {
	e.Suggestion = s
	return e
}

// WithExample adds an example to the error.
func (e *FacetError) WithExample(ex string) *FacetError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *FacetError) WithDetail(d string) *FacetError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *FacetError) Wrap(err error) *FacetError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a FacetError from a registered error code.
func New(code string) *FacetError {
	template, ok := registry[code]
	if !ok {
		return &FacetError{
			Code:     code,
			Category: CategoryInternal,
			Message:  "Unknown error",
		}
	}
	return &FacetError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new FacetError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *FacetError {
	return &FacetError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a FacetError.
func FromError(err error, code string) *FacetError {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*FacetError); ok {
		return fe
	}
	return New(code).Wrap(err)
}
