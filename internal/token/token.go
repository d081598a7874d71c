package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers and literals
	IDENT  = "IDENT"
	INT    = "INT"
	FLOAT  = "FLOAT"
	STRING = "STRING"

	// Arithmetic operators
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	PERCENT  = "%"

	// Comparison operators
	LT     = "<"
	GT     = ">"
	EQ     = "=="
	NOT_EQ = "!="
	LT_EQ  = "<="
	GT_EQ  = ">="

	// Delimiters
	LPAREN = "("
	RPAREN = ")"

	// Tokens outside the evaluable subset. The lexer still produces them so
	// the parser can report what category of construct was rejected.
	ASSIGN   = "="
	BANG     = "!"
	LBRACKET = "["
	RBRACKET = "]"
	COMMA    = ","
	DOT      = "."

	// Keywords
	TRUE  = "TRUE"
	FALSE = "FALSE"
	AND   = "AND"
	OR    = "OR"
	NOT   = "NOT"
)

type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}

var keywords = map[string]TokenType{
	"true":  TRUE,
	"false": FALSE,
	"and":   AND,
	"or":    OR,
	"not":   NOT,
}

// LookupIdent returns the keyword token type for ident, or IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
