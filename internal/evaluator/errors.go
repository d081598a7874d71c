package evaluator

import "fmt"

// ErrorKind classifies an evaluation failure. The interpreter coarsens all of
// these to a single statement-level exception, but callers that talk to the
// evaluator directly (and tests) get the precise kind.
type ErrorKind int

const (
	UndefinedVariable ErrorKind = iota
	UnsupportedExpression
	SyntaxError
)

func (k ErrorKind) String() string {
	switch k {
	case UndefinedVariable:
		return "UndefinedVariable"
	case UnsupportedExpression:
		return "UnsupportedExpression"
	case SyntaxError:
		return "SyntaxError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

type EvalError struct {
	Kind    ErrorKind
	Message string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, format string, a ...interface{}) *EvalError {
	return &EvalError{Kind: kind, Message: fmt.Sprintf(format, a...)}
}
