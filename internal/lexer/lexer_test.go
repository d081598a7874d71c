package lexer

import (
	"testing"

	"github.com/nanolang/nano/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `x + y - 2 * 3.5 / 10 % 4 <= >= < > == != = ( ) true false and or not "hi" 'there'`

	tests := []struct {
		expectedType   token.TokenType
		expectedLexeme string
	}{
		{token.IDENT, "x"},
		{token.PLUS, "+"},
		{token.IDENT, "y"},
		{token.MINUS, "-"},
		{token.INT, "2"},
		{token.ASTERISK, "*"},
		{token.FLOAT, "3.5"},
		{token.SLASH, "/"},
		{token.INT, "10"},
		{token.PERCENT, "%"},
		{token.INT, "4"},
		{token.LT_EQ, "<="},
		{token.GT_EQ, ">="},
		{token.LT, "<"},
		{token.GT, ">"},
		{token.EQ, "=="},
		{token.NOT_EQ, "!="},
		{token.ASSIGN, "="},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.TRUE, "true"},
		{token.FALSE, "false"},
		{token.AND, "and"},
		{token.OR, "or"},
		{token.NOT, "not"},
		{token.STRING, "hi"},
		{token.STRING, "there"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong token type. expected=%q, got=%q (%q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - wrong lexeme. expected=%q, got=%q",
				i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	l := New("42 3.14 0 0.5")

	tok := l.NextToken()
	if tok.Type != token.INT || tok.Literal.(int64) != 42 {
		t.Errorf("expected INT 42, got %s %v", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != token.FLOAT || tok.Literal.(float64) != 3.14 {
		t.Errorf("expected FLOAT 3.14, got %s %v", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != token.INT || tok.Literal.(int64) != 0 {
		t.Errorf("expected INT 0, got %s %v", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != token.FLOAT || tok.Literal.(float64) != 0.5 {
		t.Errorf("expected FLOAT 0.5, got %s %v", tok.Type, tok.Literal)
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"a\nb\tc\"d"`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	if got := tok.Literal.(string); got != "a\nb\tc\"d" {
		t.Errorf("wrong literal: %q", got)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"abc`)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for unterminated string, got %s", tok.Type)
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("1 @ 2")
	l.NextToken() // 1
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s (%q)", tok.Type, tok.Lexeme)
	}
}

func TestTokenPositions(t *testing.T) {
	l := New("a + b")
	a := l.NextToken()
	plus := l.NextToken()
	b := l.NextToken()

	if a.Line != 1 || a.Column != 1 {
		t.Errorf("a position = %d:%d, want 1:1", a.Line, a.Column)
	}
	if plus.Column != 3 {
		t.Errorf("plus column = %d, want 3", plus.Column)
	}
	if b.Column != 5 {
		t.Errorf("b column = %d, want 5", b.Column)
	}
}
