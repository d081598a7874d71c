package parser_test

import (
	"strings"
	"testing"

	"github.com/nanolang/nano/internal/diagnostics"
	"github.com/nanolang/nano/internal/lexer"
	"github.com/nanolang/nano/internal/parser"
	"github.com/nanolang/nano/internal/pipeline"
)

// parseWithErrors runs the lexer+parser and returns the final context.
func parseWithErrors(input string) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(input)
	lp := &lexer.LexerProcessor{}
	ctx = lp.Process(ctx)
	pp := &parser.ParserProcessor{}
	ctx = pp.Process(ctx)
	return ctx
}

// expectError asserts at least one error with the given code.
func expectError(t *testing.T, input string, code diagnostics.ErrorCode) *diagnostics.DiagnosticError {
	t.Helper()
	ctx := parseWithErrors(input)
	if len(ctx.Errors) == 0 {
		t.Fatalf("expected error %s, but got none\ninput: %s", code, input)
	}
	for _, e := range ctx.Errors {
		if e.Code == code {
			return e
		}
	}
	var msgs []string
	for _, e := range ctx.Errors {
		msgs = append(msgs, e.Error())
	}
	t.Fatalf("expected error %s, got:\n%s\ninput: %s", code, strings.Join(msgs, "\n"), input)
	return nil
}

// expectAST asserts parsing succeeds and the AST renders as want.
func expectAST(t *testing.T, input, want string) {
	t.Helper()
	ctx := parseWithErrors(input)
	if len(ctx.Errors) > 0 {
		var msgs []string
		for _, e := range ctx.Errors {
			msgs = append(msgs, e.Error())
		}
		t.Fatalf("expected no errors, got:\n%s\ninput: %s", strings.Join(msgs, "\n"), input)
	}
	if ctx.AstRoot == nil {
		t.Fatalf("nil AST for input: %s", input)
	}
	if got := ctx.AstRoot.String(); got != want {
		t.Errorf("AST mismatch: got %s, want %s\ninput: %s", got, want, input)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"10 / 2 - 3", "((10 / 2) - 3)"},
		{"a % 2 == 0", "((a % 2) == 0)"},
		{"1 + 2 < 3 + 4", "((1 + 2) < (3 + 4))"},
		{"x <= y", "(x <= y)"},
		{"x >= y", "(x >= y)"},
		{"a != b", "(a != b)"},
		{"-x + 3", "((-x) + 3)"},
		{"+x * -y", "((+x) * (-y))"},
		{"-7 % 3", "((-7) % 3)"},
	}
	for _, tt := range tests {
		expectAST(t, tt.input, tt.want)
	}
}

func TestLiterals(t *testing.T) {
	expectAST(t, "42", "42")
	expectAST(t, "3.5", "3.5")
	expectAST(t, "true", "true")
	expectAST(t, "false", "false")
	expectAST(t, `"hello"`, `"hello"`)
	expectAST(t, "x", "x")
}

func TestUnexpectedToken(t *testing.T) {
	expectError(t, "1 +", diagnostics.ErrP001)
	expectError(t, "* 2", diagnostics.ErrP001)
	expectError(t, "1 2", diagnostics.ErrP001)
	expectError(t, "(1 + 2", diagnostics.ErrP001)
	expectError(t, "", diagnostics.ErrP001)
	expectError(t, "!x", diagnostics.ErrP001)
}

func TestUnsupportedExpressions(t *testing.T) {
	tests := []struct {
		input    string
		category string
	}{
		{"x and y", "boolean operator"},
		{"x or y", "boolean operator"},
		{"not x", "boolean operator"},
		{"f(x)", "function call"},
		{"a[0]", "index expression"},
		{"a.b", "attribute access"},
		{"x = 5", "assignment"},
	}
	for _, tt := range tests {
		err := expectError(t, tt.input, diagnostics.ErrP002)
		if !strings.Contains(err.Message, tt.category) {
			t.Errorf("error for %q should name category %q, got: %s", tt.input, tt.category, err.Message)
		}
	}
}

func TestIllegalCharacter(t *testing.T) {
	expectError(t, "1 @ 2", diagnostics.ErrL001)
}

func TestRecursionDepthLimit(t *testing.T) {
	input := strings.Repeat("(", parser.MaxRecursionDepth+20) + "1" +
		strings.Repeat(")", parser.MaxRecursionDepth+20)
	expectError(t, input, diagnostics.ErrP003)
}
