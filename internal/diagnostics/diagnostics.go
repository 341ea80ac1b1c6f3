// Package diagnostics holds the coded errors raised by pipeline stages.
//
// The compiler core itself never fails: its findings are plain strings on
// ast.Module.Errors. DiagnosticError covers everything around it, such as an
// unreadable interchange file or a block the parser rejected.
package diagnostics

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrD001 ErrorCode = "D001" // interchange decode
	ErrD002 ErrorCode = "D002" // unknown block
	ErrD003 ErrorCode = "D003" // name collision
	ErrD004 ErrorCode = "D004" // unresolved name
	ErrD005 ErrorCode = "D005" // configuration
)

// DiagnosticError is a located, coded error. Line is one-based; 0 means
// the location is unknown.
type DiagnosticError struct {
	Code    ErrorCode
	Message string
	File    string
	Line    int
	Err     error
}

func (e *DiagnosticError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	switch {
	case e.File != "" && e.Line > 0:
		msg = fmt.Sprintf("%s:%d: %s", e.File, e.Line, msg)
	case e.File != "":
		msg = fmt.Sprintf("%s: %s", e.File, msg)
	case e.Line > 0:
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *DiagnosticError) Unwrap() error {
	return e.Err
}

// WithFile returns a copy located in file.
func (e *DiagnosticError) WithFile(file string) *DiagnosticError {
	next := *e
	next.File = file
	return &next
}

func New(code ErrorCode, line int, msg string) *DiagnosticError {
	return &DiagnosticError{Code: code, Message: msg, Line: line}
}

func Newf(code ErrorCode, line int, format string, args ...any) *DiagnosticError {
	return New(code, line, fmt.Sprintf(format, args...))
}

func Wrap(err error, code ErrorCode, msg string) *DiagnosticError {
	return &DiagnosticError{Code: code, Message: msg, Err: err}
}

// IsCode checks if an error has a specific error code.
func IsCode(err error, code ErrorCode) bool {
	var de *DiagnosticError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
