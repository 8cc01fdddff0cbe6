package errors

import (
	"bufio"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryRuntime  Category = "runtime"
	CategoryManifest Category = "manifest"
	CategoryConfig   Category = "config"
	CategoryCLI      Category = "cli"
)

// Location represents a source location.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column,omitempty"`
}

// String returns the location as "file:line[:column]".
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// ArborError is a structured error with an optional source location.
type ArborError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is where the error occurred, when known.
	Location *Location

	// Context contains the surrounding source lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *ArborError) Error() string {
	msg := e.Message
	if e.Location != nil {
		msg = e.Location.String() + ": " + msg
	}
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ArborError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a source location and reads the surrounding lines.
func (e *ArborError) WithLocation(file string, line, column int) *ArborError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion.
func (e *ArborError) WithSuggestion(s string) *ArborError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the detailed explanation.
func (e *ArborError) WithDetail(d string) *ArborError {
	e.Detail = d
	return e
}

// WithContext sets the context lines explicitly.
func (e *ArborError) WithContext(lines []string) *ArborError {
	e.Context = lines
	return e
}

// Wrap records err as the cause.
func (e *ArborError) Wrap(err error) *ArborError {
	e.Wrapped = err
	return e
}

// readContextLines reads up to contextSize lines centered on targetLine.
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

// New creates an ArborError from a registered code.
func New(code string) *ArborError {
	template, ok := registry[code]
	if !ok {
		return &ArborError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &ArborError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates an uncoded ArborError with a formatted message.
func Newf(category Category, format string, args ...any) *ArborError {
	return &ArborError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps err under code unless it already is an ArborError.
func FromError(err error, code string) *ArborError {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*ArborError); ok {
		return ae
	}
	return New(code).Wrap(err)
}
