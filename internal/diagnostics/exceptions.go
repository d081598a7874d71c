package diagnostics

import "fmt"

// ExceptionKind is the closed set of statement-level failures a program run
// can report. Evaluator errors are deliberately coarsened to InvalidSyntax by
// the interpreter, so no finer-grained kinds appear here.
type ExceptionKind int

const (
	UnknownCommand ExceptionKind = iota
	InvalidSyntax
	IllegalStatement
	MissingOpeningBrace
)

func (k ExceptionKind) String() string {
	switch k {
	case UnknownCommand:
		return "Unknown command"
	case InvalidSyntax:
		return "Invalid syntax"
	case IllegalStatement:
		return "Illegal statement"
	case MissingOpeningBrace:
		return "Missing opening brace '{'"
	default:
		return fmt.Sprintf("ExceptionKind(%d)", int(k))
	}
}

// Record is one logged exception: what went wrong, where, and the offending
// source line. Line numbers are 1-based.
type Record struct {
	Kind   ExceptionKind
	Line   int
	Source string
}

func (r Record) String() string {
	return fmt.Sprintf("%s: Line %d: %s", r.Kind, r.Line, r.Source)
}

// Log is the ordered, append-only exception log of a single run.
type Log struct {
	records []Record
}

func (l *Log) Append(kind ExceptionKind, line int, source string) {
	l.records = append(l.records, Record{Kind: kind, Line: line, Source: source})
}

func (l *Log) Records() []Record {
	return l.records
}

func (l *Log) Count() int {
	return len(l.records)
}
