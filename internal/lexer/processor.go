package lexer

import (
	"fmt"

	"github.com/nanolang/nano/internal/diagnostics"
	"github.com/nanolang/nano/internal/pipeline"
	"github.com/nanolang/nano/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)

	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			ctx.Errors = append(ctx.Errors, diagnostics.NewError(
				diagnostics.ErrL001,
				tok,
				fmt.Sprintf("illegal character %q", tok.Lexeme),
			))
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	ctx.TokenStream = token.NewStream(tokens)
	return ctx
}
