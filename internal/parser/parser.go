package parser

import (
	"fmt"

	"github.com/nanolang/nano/internal/ast"
	"github.com/nanolang/nano/internal/diagnostics"
	"github.com/nanolang/nano/internal/pipeline"
	"github.com/nanolang/nano/internal/token"
)

// MaxRecursionDepth bounds expression nesting to keep malicious input from
// exhausting the stack.
const MaxRecursionDepth = 100

const (
	_ int = iota
	LOWEST
	BOOL    // and, or (recognized only to be rejected)
	COMPARE // > < == != >= <=
	SUM     // + -
	PRODUCT // * / %
	PREFIX  // -x, +x
	CALL    // f(x), a[0], a.b (recognized only to be rejected)
)

var precedences = map[token.TokenType]int{
	token.ASSIGN:   LOWEST + 1,
	token.AND:      BOOL,
	token.OR:       BOOL,
	token.EQ:       COMPARE,
	token.NOT_EQ:   COMPARE,
	token.LT:       COMPARE,
	token.GT:       COMPARE,
	token.LT_EQ:    COMPARE,
	token.GT_EQ:    COMPARE,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: CALL,
	token.DOT:      CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	stream *token.Stream
	ctx    *pipeline.PipelineContext

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn

	depth int
}

func New(stream *token.Stream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.IDENT:  p.parseIdentifier,
		token.INT:    p.parseIntegerLiteral,
		token.FLOAT:  p.parseFloatLiteral,
		token.STRING: p.parseStringLiteral,
		token.TRUE:   p.parseBooleanLiteral,
		token.FALSE:  p.parseBooleanLiteral,
		token.MINUS:  p.parsePrefixExpression,
		token.PLUS:   p.parsePrefixExpression,
		token.LPAREN: p.parseGroupedExpression,
		token.NOT:    p.unsupportedPrefix("boolean operator"),
	}

	p.infixParseFns = map[token.TokenType]infixParseFn{
		token.PLUS:     p.parseInfixExpression,
		token.MINUS:    p.parseInfixExpression,
		token.ASTERISK: p.parseInfixExpression,
		token.SLASH:    p.parseInfixExpression,
		token.PERCENT:  p.parseInfixExpression,
		token.EQ:       p.parseInfixExpression,
		token.NOT_EQ:   p.parseInfixExpression,
		token.LT:       p.parseInfixExpression,
		token.GT:       p.parseInfixExpression,
		token.LT_EQ:    p.parseInfixExpression,
		token.GT_EQ:    p.parseInfixExpression,
		token.AND:      p.unsupportedInfix("boolean operator"),
		token.OR:       p.unsupportedInfix("boolean operator"),
		token.ASSIGN:   p.unsupportedInfix("assignment"),
		token.LPAREN:   p.unsupportedInfix("function call"),
		token.LBRACKET: p.unsupportedInfix("index expression"),
		token.DOT:      p.unsupportedInfix("attribute access"),
	}

	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.Next()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// ParseExpression parses the whole token stream as a single expression and
// reports trailing tokens as errors.
func (p *Parser) ParseExpression() ast.Expression {
	root := p.parseExpression(LOWEST)
	if root == nil {
		return nil
	}
	if !p.peekTokenIs(token.EOF) {
		p.errorf(diagnostics.ErrP001, p.peekToken, "unexpected token %q after expression", p.peekToken.Lexeme)
		return nil
	}
	return root
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.errorf(diagnostics.ErrP003, p.curToken, "expression too complex: recursion depth limit exceeded")
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()
	if leftExp == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		nextExp := infix(leftExp)
		if nextExp == nil {
			return nil
		}
		leftExp = nextExp
	}

	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, ok := p.curToken.Literal.(int64)
	if !ok {
		p.errorf(diagnostics.ErrP001, p.curToken, "could not parse %q as integer", p.curToken.Lexeme)
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	value, ok := p.curToken.Literal.(float64)
	if !ok {
		p.errorf(diagnostics.ErrP001, p.curToken, "could not parse %q as float", p.curToken.Lexeme)
		return nil
	}
	return &ast.FloatLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal.(string)}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
	}
	p.nextToken()
	expression.Right = p.parseExpression(PREFIX)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}
	if !p.peekTokenIs(token.RPAREN) {
		p.errorf(diagnostics.ErrP001, p.peekToken, "expected ')', got %q", p.peekToken.Lexeme)
		return nil
	}
	p.nextToken()
	return exp
}

// unsupportedPrefix rejects a construct the lexer recognizes but the
// language's whitelist does not admit, naming its category.
func (p *Parser) unsupportedPrefix(category string) prefixParseFn {
	return func() ast.Expression {
		p.errorf(diagnostics.ErrP002, p.curToken, "unsupported expression: %s", category)
		return nil
	}
}

func (p *Parser) unsupportedInfix(category string) infixParseFn {
	return func(ast.Expression) ast.Expression {
		p.errorf(diagnostics.ErrP002, p.curToken, "unsupported expression: %s", category)
		return nil
	}
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	if tok.Type == token.EOF {
		p.errorf(diagnostics.ErrP001, tok, "unexpected end of expression")
		return
	}
	p.errorf(diagnostics.ErrP001, tok, "unexpected token %q", tok.Lexeme)
}

func (p *Parser) errorf(code diagnostics.ErrorCode, tok token.Token, format string, args ...interface{}) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(code, tok, fmt.Sprintf(format, args...)))
}
