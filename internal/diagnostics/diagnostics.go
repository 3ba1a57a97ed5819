// Package diagnostics carries position-tagged errors for the parser. This
// grammar has exactly one class of structural error (a parse failure), so
// the error-code registry is a single constant; a second class (e.g. a lex
// error) can be added later without changing call sites.
package diagnostics

import "fmt"

// Code identifies the class of a diagnostic. Only one exists today; the type
// exists so a second class (e.g. a lex error) can be added without changing
// every call site.
type Code string

// ErrParse is the only diagnostic code this engine emits directly; type
// errors and undefined names are reported by internal/infer, not through
// this package.
const ErrParse Code = "P001"

// Error is a position-tagged diagnostic.
type Error struct {
	Code    Code
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// New constructs a parse-error diagnostic at the given source position.
func New(line, column int, format string, args ...any) *Error {
	return &Error{Code: ErrParse, Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}
