package diagnostics

import (
	"fmt"

	"github.com/nanolang/nano/internal/token"
)

type ErrorCode string

const (
	// Lexer errors
	ErrL001 ErrorCode = "L001" // illegal character

	// Parser errors
	ErrP000 ErrorCode = "P000" // internal: missing pipeline input
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // unsupported expression
	ErrP003 ErrorCode = "P003" // recursion depth exceeded
)

// DiagnosticError is a positioned error produced by the lexer or parser.
type DiagnosticError struct {
	Code    ErrorCode
	Message string
	Line    int
	Column  int
	File    string
}

func NewError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Message: message,
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

func (e *DiagnosticError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s:%d:%d: %s", e.Code, e.File, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %d:%d: %s", e.Code, e.Line, e.Column, e.Message)
}
